package scan

import "strings"

// docstring reads a triple-quoted block at exactly the given indentation.
// When skipFirst is true the candidate line is lines[j]; otherwise lines[j-1]
// is re-examined, which supports "the header consumer already advanced past
// the candidate". The closing sequence must use the same quote style as the
// opening one. If no opening is found the empty string and the unchanged
// index are returned; docstrings are optional everywhere they may appear.
// An unterminated block yields the partial text with next at end of input.
func docstring(lines []string, j, indent int, skipFirst bool) (string, int, bool) {
	start := j
	if !skipFirst {
		if start > 0 {
			start--
		}
	}
	if start >= len(lines) {
		return "", j, false
	}

	line := strings.TrimRight(lines[start], " \t\r")
	open, rest, found := openingQuote(line, indent)
	if !found {
		return "", j, false
	}

	// Opening and closing sequences on the same line.
	if len(rest) >= 3 && strings.HasSuffix(rest, open) {
		return strings.TrimSpace(rest[:len(rest)-3]), start + 1, true
	}

	out := rest
	for k := start + 1; k < len(lines); k++ {
		line = strings.TrimRight(lines[k], " \t\r")
		if strings.HasSuffix(line, open) {
			inner := strings.TrimSuffix(sliceFrom(line, indent), open)
			if inner != "" {
				out += "\n" + inner
			}
			return strings.TrimSpace(out), k + 1, true
		}
		out += "\n" + sliceFrom(line, indent)
	}
	return strings.TrimSpace(out), len(lines), true
}

// openingQuote reports whether line carries a triple quote of either style
// after exactly indent spaces, returning the quote sequence and the text that
// follows it on the same line.
func openingQuote(line string, indent int) (quote, rest string, ok bool) {
	if indentOf(line) != indent {
		return "", "", false
	}
	body := sliceFrom(line, indent)
	for _, q := range []string{`"""`, "'''"} {
		if strings.HasPrefix(body, q) {
			return q, body[3:], true
		}
	}
	return "", "", false
}
