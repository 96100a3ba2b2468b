package scan

import "testing"

func TestNextLine_SkipsBlanksAndStripsComments(t *testing.T) {
	lines := []string{"", "   ", "x = 1  # trailing", "y = 2"}

	line, next, ok := nextLine(lines, 0)
	if !ok {
		t.Fatal("expected a line")
	}
	if line != "x = 1" {
		t.Errorf("expected %q, got %q", "x = 1", line)
	}
	if next != 3 {
		t.Errorf("expected next index 3, got %d", next)
	}

	line, next, ok = nextLine(lines, next)
	if !ok || line != "y = 2" {
		t.Fatalf("expected y = 2, got %q ok=%v", line, ok)
	}
	if next != 4 {
		t.Errorf("expected next index 4, got %d", next)
	}

	if _, _, ok = nextLine(lines, next); ok {
		t.Error("expected end of input")
	}
}

func TestNextLine_PreservesIndentation(t *testing.T) {
	lines := []string{"    return 1"}
	line, _, ok := nextLine(lines, 0)
	if !ok {
		t.Fatal("expected a line")
	}
	if line != "    return 1" {
		t.Errorf("indentation lost: %q", line)
	}
}

func TestNextLine_WholeLineComment(t *testing.T) {
	lines := []string{"# only a comment", "x = 1"}
	line, next, ok := nextLine(lines, 0)
	if !ok || line != "x = 1" || next != 2 {
		t.Fatalf("expected comment line skipped, got %q next=%d ok=%v", line, next, ok)
	}
}

func TestStripComment_IgnoresHashInsideStrings(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`x = "#" # real comment`, `x = "#" `},
		{`x = '#'`, `x = '#'`},
		{`x = 1 # c`, `x = 1 `},
		{`x = "a\"#b"`, `x = "a\"#b"`},
		{`plain`, `plain`},
	}
	for _, tc := range cases {
		if got := stripComment(tc.in); got != tc.want {
			t.Errorf("stripComment(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIndentOf(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"x", 0},
		{"    x", 4},
		{"  ", 2},
		{"", 0},
		{"\tx", 0},
		{"  \tx", 2},
	}
	for _, tc := range cases {
		if got := indentOf(tc.in); got != tc.want {
			t.Errorf("indentOf(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
