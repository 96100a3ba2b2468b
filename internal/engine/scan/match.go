package scan

import "strings"

// matchKind tags the outcome of trying the header readers against one line.
// The assembler dispatches on the tag instead of inspecting sentinel values.
type matchKind int

const (
	matchNone matchKind = iota
	matchImport
	matchVersion
	matchVariable
	matchFunction
	matchClass
)

// match carries the reader result for the line at lines[idx] together with
// the index of the first line left unconsumed.
type match struct {
	kind     matchKind
	module   string
	version  string
	variable VariableDoc
	function FunctionDoc
	class    ClassDoc
	next     int
}

// matchTop tries the top-level readers against lines[idx], first match wins:
// import, version, assignment, function, class. after is the cursor position
// with the line already consumed, used when a single-line reader matches.
func matchTop(lines []string, idx, after, indent int) match {
	line := strings.TrimRight(stripComment(lines[idx]), " \t\r")

	if name, ok := getImport(line, indent); ok {
		return match{kind: matchImport, module: name, next: after}
	}
	if v, ok := getVersion(line, indent); ok {
		return match{kind: matchVersion, version: v, next: after}
	}
	if v, ok := getVariable(line, indent); ok {
		return match{kind: matchVariable, variable: v, next: after}
	}
	if fn, next, ok := getFunction(lines, idx, indent); ok {
		return match{kind: matchFunction, function: fn, next: next}
	}
	if cls, next, ok := getClass(lines, idx, indent); ok {
		return match{kind: matchClass, class: cls, next: next}
	}
	return match{kind: matchNone, next: after}
}
