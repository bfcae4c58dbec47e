package reduction

import "strings"

// Path is a sequence of problem names, each consecutive pair joined by at
// least one rule. It says nothing about variants; see ResolvePath.
type Path struct {
	Names []string
}

// Len returns the number of hops.
func (p Path) Len() int {
	if len(p.Names) == 0 {
		return 0
	}

	return len(p.Names) - 1
}

// IsEmpty reports whether p has no names at all.
func (p Path) IsEmpty() bool { return len(p.Names) == 0 }

// Source returns the first name, or "".
func (p Path) Source() string {
	if p.IsEmpty() {
		return ""
	}

	return p.Names[0]
}

// Target returns the last name, or "".
func (p Path) Target() string {
	if p.IsEmpty() {
		return ""
	}

	return p.Names[len(p.Names)-1]
}

// String renders "A -> B -> C".
func (p Path) String() string { return strings.Join(p.Names, " -> ") }
