package app

// Intent is a navigation request targeting a screen type, carrying an Extras
// container with the packed arguments.
type Intent struct {
	target string
	extras *Extras
}

// NewIntent builds an Intent aimed at target, the qualified name of the
// destination screen type. ctx is accepted for parity with host frameworks
// whose intent construction needs an originating context; the reference
// runtime does not use it.
func NewIntent(_ Context, target string) *Intent {
	return &Intent{target: target, extras: NewExtras()}
}

// Target returns the qualified name of the destination screen type.
func (in *Intent) Target() string {
	return in.target
}

// Extras returns the intent's transport container.
func (in *Intent) Extras() *Extras {
	if in == nil {
		return nil
	}
	return in.extras
}
