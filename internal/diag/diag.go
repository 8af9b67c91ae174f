// Package diag is the build diagnostics sink. The processing core writes
// rejection and failure reports here and never reads them back; what happens
// to a report (terminal output, test capture) is the sink's business.
package diag

import (
	"fmt"

	charmlog "github.com/charmbracelet/log"

	"github.com/screengen/screengen/internal/descriptor"
)

// Severity of a report. Everything the generator reports today is an error;
// the level exists so sinks can route future warnings differently.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Sink accepts diagnostics. el may be nil for reports with no offending
// source element, such as emission failures.
type Sink interface {
	Report(sev Severity, el *descriptor.Element, format string, args ...any)
}

// LogSink writes diagnostics through a charm logger, tagging each with the
// offending element's position so build output links back to the source.
type LogSink struct {
	Log *charmlog.Logger
}

func (s *LogSink) Report(sev Severity, el *descriptor.Element, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	kv := []any{}
	if el != nil {
		kv = append(kv, "element", el.QualifiedName(), "pos", el.Pos)
	}
	if sev == Warning {
		s.Log.Warn(msg, kv...)
		return
	}
	s.Log.Error(msg, kv...)
}

// Record is one captured diagnostic.
type Record struct {
	Severity Severity
	Element  *descriptor.Element
	Message  string
}

// Recorder captures diagnostics for assertions in tests.
type Recorder struct {
	Records []Record
}

func (r *Recorder) Report(sev Severity, el *descriptor.Element, format string, args ...any) {
	r.Records = append(r.Records, Record{
		Severity: sev,
		Element:  el,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Errors returns the messages of all error-severity records.
func (r *Recorder) Errors() []string {
	var out []string
	for _, rec := range r.Records {
		if rec.Severity == Error {
			out = append(out, rec.Message)
		}
	}
	return out
}
