package app

// RecorderContext is a Context that records launch calls. It backs tests and
// dry runs of generated Open/OpenForResult methods.
type RecorderContext struct {
	Started []*Intent
	Results []ResultRequest
}

// ResultRequest is one recorded StartActivityForResult call.
type ResultRequest struct {
	Intent      *Intent
	RequestCode int
}

func (r *RecorderContext) StartActivity(in *Intent) {
	r.Started = append(r.Started, in)
}

func (r *RecorderContext) StartActivityForResult(in *Intent, requestCode int) {
	r.Results = append(r.Results, ResultRequest{Intent: in, RequestCode: requestCode})
}
