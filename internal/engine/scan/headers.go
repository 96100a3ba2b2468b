package scan

import "strings"

// getFunction recognizes a "def NAME(PARAMS):" header at exactly the given
// indentation, with the parameter list possibly spanning physical lines. The
// body docstring is captured at the inferred body indentation and the body is
// consumed, so functions nested inside it are never promoted to the caller.
// start is the index of the candidate header line; next is the index of the
// first line the caller should examine afterwards.
func getFunction(lines []string, start, indent int) (FunctionDoc, int, bool) {
	var fn FunctionDoc
	if start >= len(lines) {
		return fn, start, false
	}
	line := strings.TrimRight(stripComment(lines[start]), " \t\r")
	if indentOf(line) != indent {
		return fn, start, false
	}
	body := sliceFrom(line, indent)
	m := defRe.FindStringSubmatch(body)
	if m == nil {
		return fn, start, false
	}
	fn.Name = m[1]

	open := strings.Index(body, "(")
	params, j, ok := balanceParens(lines, start+1, body[open+1:])
	if !ok {
		return FunctionDoc{}, start, false
	}
	classifyParams(splitParams(params), &fn)

	// Peek the first body line to learn the body indentation, then read the
	// docstring there and consume the rest of the body, collecting raise
	// targets along the way.
	first, nj, ok := nextLine(lines, j)
	if !ok {
		return fn, len(lines), true
	}
	bodyIndent := indentOf(first)
	if bodyIndent <= indent {
		// No indented body (single-line def or malformed source); leave the
		// line for the caller.
		return fn, nj - 1, true
	}
	doc, j, found := docstring(lines, nj, bodyIndent, false)
	fn.Docstring = doc
	if !found {
		// No docstring; the peeked line is still part of the body and must
		// be examined by the loop below.
		j = nj - 1
	}

	for {
		line, nj, ok := nextLine(lines, j)
		if !ok {
			return fn, len(lines), true
		}
		if indentOf(line) < bodyIndent {
			return fn, nj - 1, true
		}
		if exc, ok := raiseTarget(line); ok {
			fn.Exceptions = append(fn.Exceptions, exc)
		}
		j = nj
	}
}

// getClass recognizes "class NAME(BASES):" or "class NAME:" at exactly the
// given indentation, then collects the docstring and the members declared at
// the child indentation: imports, assignments and methods, first match wins
// per line. Lines nested deeper than one step belong to a member's own body
// and are skipped. The loop stops at the first significant line at or below
// the class's indentation.
func getClass(lines []string, start, indent int) (ClassDoc, int, bool) {
	var cls ClassDoc
	if start >= len(lines) {
		return cls, start, false
	}
	line := strings.TrimRight(stripComment(lines[start]), " \t\r")
	if indentOf(line) != indent {
		return cls, start, false
	}
	body := sliceFrom(line, indent)
	m := classRe.FindStringSubmatch(body)
	if m == nil {
		return cls, start, false
	}
	cls.Name = m[1]

	j := start + 1
	if m[2] == "(" {
		open := strings.Index(body, "(")
		bases, nj, ok := balanceParens(lines, start+1, body[open+1:])
		if !ok {
			return ClassDoc{}, start, false
		}
		cls.Inheritance = strings.TrimSpace(bases)
		j = nj
	} else if strings.TrimSpace(body[strings.Index(body, ":")+1:]) != "" {
		// "class Name: pass" style one-liners carry no member block.
		return cls, j, true
	}
	cls.IsException = looksLikeException(cls.Inheritance)

	first, nj, ok := nextLine(lines, j)
	if !ok {
		return cls, len(lines), true
	}
	childIndent := indentOf(first)
	if childIndent <= indent {
		return cls, nj - 1, true
	}
	doc, j, found := docstring(lines, nj, childIndent, false)
	cls.Docstring = doc
	if !found {
		// No docstring; the peeked line is the first member candidate.
		j = nj - 1
	}

	for {
		line, nj, ok := nextLine(lines, j)
		if !ok {
			return cls, len(lines), true
		}
		ind := indentOf(line)
		if ind <= indent {
			return cls, nj - 1, true
		}
		if ind != childIndent {
			j = nj
			continue
		}
		if name, ok := getImport(line, childIndent); ok {
			cls.Modules = append(cls.Modules, name)
			j = nj
			continue
		}
		if v, ok := getVariable(line, childIndent); ok {
			cls.Variables = append(cls.Variables, v)
			j = nj
			continue
		}
		if fn, nf, ok := getFunction(lines, nj-1, childIndent); ok {
			cls.Functions = append(cls.Functions, fn)
			j = nf
			continue
		}
		j = nj
	}
}

// looksLikeException reports whether a base-class list denotes an error-like
// base. Tagging only; extraction is unchanged for such classes.
func looksLikeException(inheritance string) bool {
	for _, base := range strings.Split(inheritance, ",") {
		base = strings.TrimSpace(base)
		if i := strings.LastIndex(base, "."); i >= 0 {
			base = base[i+1:]
		}
		if strings.HasSuffix(base, "Exception") || strings.HasSuffix(base, "Error") {
			return true
		}
	}
	return false
}
