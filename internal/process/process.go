// Package process coordinates one generation round: it pulls marked elements
// from a Discoverer, gates them through validation, aggregates arguments per
// screen class and hands completed descriptors to the generator.
package process

import (
	charmlog "github.com/charmbracelet/log"

	"github.com/screengen/screengen/internal/descriptor"
	"github.com/screengen/screengen/internal/diag"
	"github.com/screengen/screengen/internal/validate"
)

// Generator renders one screen's companion type.
type Generator interface {
	GenerateScreen(s *descriptor.Screen) error
}

// Processor owns the per-round state: the class-identity map that
// deduplicates screens discovered through both marker paths.
type Processor struct {
	disc      descriptor.Discoverer
	sink      diag.Sink
	validator *validate.Validator
	gen       Generator
	log       *charmlog.Logger

	screens map[string]*descriptor.Screen
	order   []string
}

func New(disc descriptor.Discoverer, sink diag.Sink, gen Generator, log *charmlog.Logger) *Processor {
	return &Processor{
		disc:      disc,
		sink:      sink,
		validator: validate.New(sink),
		gen:       gen,
		log:       log,
		screens:   make(map[string]*descriptor.Screen),
	}
}

// Reset clears the class-identity map. Run calls it at the start of every
// round; it is exported so embedders driving rounds manually can do the same.
func (p *Processor) Reset() {
	p.screens = make(map[string]*descriptor.Screen)
	p.order = nil
}

// Run executes one round: the arg pass, the screen pass, then generation.
// It returns true when the round must abort — a screengen marker on the
// wrong kind of element poisons the whole round, while every other rejection
// only excludes its candidate.
func (p *Processor) Run() bool {
	p.Reset()

	argElems, err := p.disc.FindMarked(descriptor.MarkerArg)
	if err != nil {
		p.sink.Report(diag.Error, nil, "discovery failed: %v", err)
		return true
	}
	for _, el := range argElems {
		if el.Kind != descriptor.KindField {
			p.sink.Report(diag.Error, el, "only fields can carry //screengen:arg, found it on a %s", el.Kind)
			return true
		}
		p.collectArg(el)
	}

	screenElems, err := p.disc.FindMarked(descriptor.MarkerScreen)
	if err != nil {
		p.sink.Report(diag.Error, nil, "discovery failed: %v", err)
		return true
	}
	for _, el := range screenElems {
		if el.Kind != descriptor.KindType {
			p.sink.Report(diag.Error, el, "only types can carry //screengen:screen, found it on a %s", el.Kind)
			return true
		}
		p.collectScreen(el)
	}

	p.generate()
	return false
}

// collectArg handles one marked field: registers its enclosing class on
// first sight, validates the field and appends the argument.
func (p *Processor) collectArg(el *descriptor.Element) {
	encl := el.Enclosing
	if encl == nil {
		p.sink.Report(diag.Error, el, "//screengen:arg field %s has no enclosing type", el.Name)
		return
	}
	key := encl.QualifiedName()

	scr, seen := p.screens[key]
	if !seen {
		if !encl.HasScreenMark {
			p.sink.Report(diag.Error, el,
				"//screengen:arg can only be used on fields of a //screengen:screen type (%s.%s)",
				key, el.Name)
			return
		}
		if !p.validator.Class(encl) {
			return
		}
		scr = descriptor.NewScreen(encl)
		p.screens[key] = scr
		p.order = append(p.order, key)
	}

	if !p.validator.Field(el) {
		p.sink.Report(diag.Error, el,
			"argument fields must not be unexported, embedded, blank or omitted (%s.%s)",
			key, el.Name)
		return
	}
	scr.AddArgument(classify(el))
}

// collectScreen handles one marked type, deduplicating against classes the
// arg pass already registered.
func (p *Processor) collectScreen(el *descriptor.Element) {
	key := el.QualifiedName()
	if _, seen := p.screens[key]; seen {
		return
	}
	if !p.validator.Class(el) {
		return
	}
	p.screens[key] = descriptor.NewScreen(el)
	p.order = append(p.order, key)
}

// generate renders every aggregated screen in discovery order. A failure —
// unsupported argument type or emission error — is reported and skips to the
// next screen; files already written stay written.
func (p *Processor) generate() {
	for _, key := range p.order {
		scr := p.screens[key]
		if err := p.gen.GenerateScreen(scr); err != nil {
			p.sink.Report(diag.Error, nil, "%v", err)
			continue
		}
		if p.log != nil {
			p.log.Debug("processed screen", "screen", key,
				"required", len(scr.Required()), "optional", len(scr.Optional()))
		}
	}
}

// classify normalizes a validated field element into an argument descriptor.
// Required status comes from the absence of the optional flag on the marker;
// the transport operation stays a pure function of the type, resolved at
// generation time.
func classify(el *descriptor.Element) *descriptor.Argument {
	return &descriptor.Argument{
		Name:     el.Name,
		Type:     el.Type,
		Required: !el.Optional,
		Pos:      el.Pos,
	}
}
