package scan

import (
	"regexp"
	"strings"
)

const identPat = `[_A-Za-z][_A-Za-z0-9]*`

var (
	importRe   = regexp.MustCompile(`^import +(` + identPat + `)(?:\.` + identPat + `)* *(?:as +` + identPat + ` *)?$`)
	fromRe     = regexp.MustCompile(`^from +(` + identPat + `)(?:\.` + identPat + `)* +import +.+$`)
	versionRe  = regexp.MustCompile(`^__version__ *= *(['"])(.*)(['"]) *$`)
	variableRe = regexp.MustCompile(`^(` + identPat + `) *= *(.+)$`)
	defRe      = regexp.MustCompile(`^def +(` + identPat + `) *\(`)
	classRe    = regexp.MustCompile(`^class +(` + identPat + `) *([(:])`)
	bareArgRe  = regexp.MustCompile(`^\*{0,2}` + identPat + `$`)
	keywordRe  = regexp.MustCompile(`^(` + identPat + `) *= *(.*)$`)
	raiseRe    = regexp.MustCompile(`^ *raise +(` + identPat + `(?:\.` + identPat + `)*) *\(.*\) *$`)
)

// headerKeywords are identifiers that introduce a construct of their own and
// must not be mistaken for an assignment target.
var headerKeywords = map[string]bool{
	"def":    true,
	"class":  true,
	"import": true,
	"from":   true,
}

// getImport recognizes "import NAME" and "from NAME import ..." at exactly
// the given indentation and returns the first module path token. Aliases and
// sub-imports are not resolved; this is a documentation index.
func getImport(line string, indent int) (string, bool) {
	if indentOf(line) != indent {
		return "", false
	}
	body := sliceFrom(line, indent)
	if m := importRe.FindStringSubmatch(body); m != nil {
		return m[1], true
	}
	if m := fromRe.FindStringSubmatch(body); m != nil {
		return m[1], true
	}
	return "", false
}

// getVersion matches the module version marker and returns its value with
// the surrounding quotes stripped.
func getVersion(line string, indent int) (string, bool) {
	if indentOf(line) != indent {
		return "", false
	}
	m := versionRe.FindStringSubmatch(sliceFrom(line, indent))
	if m == nil || m[1] != m[3] {
		return "", false
	}
	return m[2], true
}

// getVariable recognizes "IDENT = EXPR" at exactly the given indentation.
// The right-hand side is kept as raw text, never evaluated.
func getVariable(line string, indent int) (VariableDoc, bool) {
	if indentOf(line) != indent {
		return VariableDoc{}, false
	}
	m := variableRe.FindStringSubmatch(sliceFrom(line, indent))
	if m == nil || headerKeywords[m[1]] {
		return VariableDoc{}, false
	}
	// Reject "==" comparisons, which the assignment shape would otherwise
	// swallow.
	if strings.HasPrefix(m[2], "=") {
		return VariableDoc{}, false
	}
	return VariableDoc{Name: m[1], Value: strings.TrimSpace(m[2])}, true
}

// raiseTarget extracts the exception name from a "raise Name(...)" line.
func raiseTarget(line string) (string, bool) {
	m := raiseRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// balanceParens concatenates physical lines starting at lines[start], whose
// text begins right after an opening parenthesis, until the parenthesis depth
// returns to zero and the header's trailing colon is found. It returns the
// enclosed text, the index after the last consumed line, and whether the
// header closed before end of input. firstRest is the remainder of the header
// line after the opening parenthesis.
func balanceParens(lines []string, start int, firstRest string) (inner string, next int, ok bool) {
	depth := 1
	var b strings.Builder
	rest := firstRest
	j := start
	for {
		closed, idx := consumeDepth(rest, &depth)
		if closed {
			b.WriteString(rest[:idx])
			tail := strings.TrimSpace(rest[idx+1:])
			if !strings.HasPrefix(tail, ":") {
				// A header must close with "):"; anything else is not a
				// signature and the caller absorbs it as unrecognized.
				return "", j, false
			}
			return b.String(), j, true
		}
		b.WriteString(rest)
		if j >= len(lines) {
			return "", len(lines), false
		}
		rest = strings.TrimLeft(strings.TrimRight(stripComment(lines[j]), " \t\r"), " ")
		j++
	}
}

// consumeDepth scans s updating depth for parentheses, reporting the index of
// the parenthesis that closes the header when depth reaches zero. Quoted
// strings are skipped so defaults like ")(" cannot unbalance the scan.
func consumeDepth(s string, depth *int) (closed bool, idx int) {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(':
			*depth++
		case c == ')':
			*depth--
			if *depth == 0 {
				return true, i
			}
		}
	}
	return false, len(s)
}

// splitParams splits a parameter list on top-level commas. Commas nested in
// parentheses, brackets, braces or quoted strings do not split.
func splitParams(params string) []string {
	var out []string
	depth := 0
	var quote byte
	last := 0
	for i := 0; i < len(params); i++ {
		c := params[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == ',' && depth == 0:
			out = append(out, params[last:i])
			last = i + 1
		}
	}
	out = append(out, params[last:])
	return out
}

// classifyParams distributes raw parameters into positional arguments and
// keyword/default pairs, preserving order. Variadic markers stay verbatim in
// the positional list.
func classifyParams(params []string, fn *FunctionDoc) {
	for _, p := range params {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if bareArgRe.MatchString(p) {
			fn.Args = append(fn.Args, p)
			continue
		}
		if m := keywordRe.FindStringSubmatch(p); m != nil {
			fn.Keywords = append(fn.Keywords, m[1])
			fn.Defaults = append(fn.Defaults, strings.TrimSpace(m[2]))
		}
	}
}
