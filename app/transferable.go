package app

// Transferable marks a type as safe to carry through an Extras container as a
// single structured value. Implementations provide the marker method with an
// empty body:
//
//	func (p Photo) Transferable() {}
//
// Value types implement it with a value receiver so that both Photo and
// []Photo arguments classify as transferable; pointer receivers restrict the
// capability to *Photo.
type Transferable interface {
	Transferable()
}
