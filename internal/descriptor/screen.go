package descriptor

import "strings"

// Argument is one marked field on a screen, normalized for generation. The
// transport operation for its type is resolved by the type mapper at
// generation time; an Argument itself never changes after construction.
type Argument struct {
	Name     string
	Type     *Type
	Required bool
	Pos      string
}

// Screen aggregates the arguments of one marked class. It is created on first
// discovery of the class through either marker path, grows as fields are
// discovered, and is consumed exactly once by the emitter.
type Screen struct {
	Element  *Element
	required []*Argument
	optional []*Argument
}

// NewScreen wraps a validated type element.
func NewScreen(el *Element) *Screen {
	return &Screen{Element: el}
}

// AddArgument appends an argument, keeping required and optional sets in
// declaration order. Field names are unique within a class by construction,
// so no collision handling is needed.
func (s *Screen) AddArgument(a *Argument) {
	if a.Required {
		s.required = append(s.required, a)
	} else {
		s.optional = append(s.optional, a)
	}
}

// Required returns the required arguments in declaration order.
func (s *Screen) Required() []*Argument {
	return s.required
}

// Optional returns the optional arguments in declaration order.
func (s *Screen) Optional() []*Argument {
	return s.optional
}

// HasArguments reports whether any argument was discovered; screens without
// arguments get no Inject function.
func (s *Screen) HasArguments() bool {
	return len(s.required)+len(s.optional) > 0
}

// GeneratedName is the name of the companion type: the screen's simple name
// plus the configured suffix. A trailing "Activity" is trimmed first so the
// default suffix does not double it: ProfileActivity and Profile both become
// ProfileActivityScreen.
func (s *Screen) GeneratedName(suffix string) string {
	return strings.TrimSuffix(s.Element.Name, "Activity") + suffix
}
