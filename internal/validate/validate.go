// Package validate enforces the structural eligibility rules for screen
// candidates and their argument fields. Rejections are reported to the
// diagnostics sink and the offender is excluded; the caller decides whether
// the round keeps going.
package validate

import (
	"github.com/screengen/screengen/internal/descriptor"
	"github.com/screengen/screengen/internal/diag"
)

// Validator gates candidate elements. It holds no state beyond the sink.
type Validator struct {
	Sink diag.Sink
}

func New(sink diag.Sink) *Validator {
	return &Validator{Sink: sink}
}

// Class checks a type element against the screen rules, in order, first
// failure wins: exported, not generic, not an interface, embeds the activity
// base type. On failure a diagnostic is reported against the element and
// false is returned.
func (v *Validator) Class(el *descriptor.Element) bool {
	if !el.Modifiers.Has(descriptor.ModExported) {
		v.Sink.Report(diag.Error, el, "type %s is not exported", el.QualifiedName())
		return false
	}
	if el.Modifiers.Has(descriptor.ModGeneric) {
		v.Sink.Report(diag.Error, el, "type %s is generic; generic types cannot be screens", el.QualifiedName())
		return false
	}
	if el.Modifiers.Has(descriptor.ModInterface) {
		v.Sink.Report(diag.Error, el, "%s is an interface; interfaces cannot be screens", el.QualifiedName())
		return false
	}
	if !el.EmbedsActivity {
		v.Sink.Report(diag.Error, el, "screens can only be activities, but %s does not embed app.Activity", el.QualifiedName())
		return false
	}
	return true
}

// Field checks an argument field's modifiers. A field passes unless it is
// unexported, embedded, blank and tag-omitted all at once; this matches the
// original processor's check, which combined the four conditions the same
// way, and is pinned by a regression test. Callers report the diagnostic.
func (v *Validator) Field(el *descriptor.Element) bool {
	return !el.Modifiers.Has(descriptor.ModUnexported) ||
		!el.Modifiers.Has(descriptor.ModEmbedded) ||
		!el.Modifiers.Has(descriptor.ModBlank) ||
		!el.Modifiers.Has(descriptor.ModOmitted)
}
