package app

// Context is the host-side launch surface. The host framework (or a test
// double) decides what starting an activity means.
type Context interface {
	StartActivity(in *Intent)
	StartActivityForResult(in *Intent, requestCode int)
}

// Activity is the base type every screen struct embeds. It holds the Intent
// the screen was launched with; generated Inject functions read the packed
// arguments back out of it.
type Activity struct {
	intent *Intent
}

// SetIntent attaches the launching intent. Hosts call this before handing the
// activity to generated Inject code.
func (a *Activity) SetIntent(in *Intent) {
	a.intent = in
}

// Intent returns the launching intent, nil if the activity was never launched
// through one.
func (a *Activity) Intent() *Intent {
	return a.intent
}

// Extras returns the transport container of the launching intent, nil when
// the activity was reached without one.
func (a *Activity) Extras() *Extras {
	return a.intent.Extras()
}
