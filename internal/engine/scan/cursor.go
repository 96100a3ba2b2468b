package scan

import "strings"

// nextLine returns the next line at or after index j that is non-blank once
// trailing comments and whitespace are stripped. Indentation is preserved so
// callers can measure it. next is the index immediately after the returned
// line; ok is false once the end of input is reached.
func nextLine(lines []string, j int) (line string, next int, ok bool) {
	for ; j < len(lines); j++ {
		line = strings.TrimRight(stripComment(lines[j]), " \t\r")
		if strings.TrimSpace(line) != "" {
			return line, j + 1, true
		}
	}
	return "", j, false
}

// stripComment removes everything from the first '#' that is not inside a
// quoted string. Single and double quotes are tracked; a backslash escapes
// the following character inside a string.
func stripComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '#':
			return line[:i]
		}
	}
	return line
}

// indentOf counts the leading space characters of a raw line. A tab or any
// other character ends the count; tabs are not a supported indent unit.
func indentOf(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' {
			return i
		}
	}
	return len(line)
}

// sliceFrom returns line[from:] guarded against short lines.
func sliceFrom(line string, from int) string {
	if from >= len(line) {
		return ""
	}
	return line[from:]
}
