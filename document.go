package wfgraph

import (
	"errors"
	"fmt"
)

// ErrDecode marks input that is not a well-formed workflow document.
var ErrDecode = errors.New("wfgraph: document could not be decoded")

// DecodeError reports a decode failure for Source (a path or upload name).
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("wfgraph: decode: %v", e.Err)
	}
	return fmt.Sprintf("wfgraph: decode %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrDecode) match any DecodeError.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// Document is a decoded export.
type Document interface {
	// Records returns every record with the given tag, at any depth, in
	// document order.
	Records(tag string) []Record
}

// Record is one element of a Document.
// Lookups that find nothing return "".
type Record interface {
	// ChildText returns the trimmed text of the first descendant with tag.
	ChildText(tag string) string
	// ChildAttr returns attribute attr of the first descendant with tag.
	ChildAttr(tag, attr string) string
}

// Record tags and field names of the export format.
const (
	TagVersion    = "wf_workflow_version"
	TagStage      = "wf_stage"
	TagActivity   = "wf_activity"
	TagCondition  = "wf_condition"
	TagTransition = "wf_transition"

	// AttrDisplayValue carries the resolved identifier of a reference field.
	AttrDisplayValue = "display_value"
)
