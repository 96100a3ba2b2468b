package scan

// ModuleDocument is the complete structural extraction result for one source
// file. All fields are populated in first-occurrence order during a single
// forward pass and never mutated afterwards.
type ModuleDocument struct {
	Name        string
	Description string
	Version     string
	Modules     []string
	Variables   []VariableDoc
	Functions   []FunctionDoc
	Classes     []ClassDoc
}

// VariableDoc records a top-level or class-level assignment. Value is the raw
// right-hand-side text as written in the source; it is never evaluated.
type VariableDoc struct {
	Name  string
	Value string
}

// FunctionDoc records a def header plus the body docstring. Keywords and
// Defaults are aligned by position: Defaults[i] is the raw default text for
// Keywords[i]. Exceptions lists the targets of raise statements seen in the
// body.
type FunctionDoc struct {
	Name       string
	Args       []string
	Keywords   []string
	Defaults   []string
	Docstring  string
	Exceptions []string
}

// ClassDoc records a class header and the members declared at exactly one
// indent step below it. Inheritance is the raw text of the parenthesized base
// list, empty for a bare "class Name:". IsException marks classes whose base
// list names an error-like base; extraction is otherwise identical.
type ClassDoc struct {
	Name        string
	Inheritance string
	Docstring   string
	Modules     []string
	Variables   []VariableDoc
	Functions   []FunctionDoc
	IsException bool
}
