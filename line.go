package wfgraph

import (
	"iter"
	"strings"
)

// LineKind classifies a rendered traversal line.
type LineKind int

const (
	LineActivity  LineKind = iota // path: an activity on the current path
	LineCondition                 // path: an outgoing transition label
	LineEnd                       // path: activity without outgoing transitions
	LineMaxDepth                  // path: depth budget exhausted
	LineCycle                     // both: activity already visited
	LineUnknown                   // both: reference to a missing activity
	LineArrow                     // diagram: flow arrow
	LineNode                      // diagram: bracketed activity name
	LineBranch                    // diagram: one of several outgoing transitions
	LineNoStart                   // diagram: start activity missing
)

var lineKindNames = [...]string{
	LineActivity:  "activity",
	LineCondition: "condition",
	LineEnd:       "end",
	LineMaxDepth:  "max_depth",
	LineCycle:     "cycle",
	LineUnknown:   "unknown",
	LineArrow:     "arrow",
	LineNode:      "node",
	LineBranch:    "branch",
	LineNoStart:   "no_start",
}

func (k LineKind) String() string {
	if k < 0 || int(k) >= len(lineKindNames) {
		return "invalid"
	}
	return lineKindNames[k]
}

// MarshalText encodes the kind by name.
func (k LineKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Line is one rendering event of a traversal.
type Line struct {
	Kind LineKind `json:"kind" yaml:"kind"`
	// Depth is the traversal level; Indent is the column the text starts at.
	Depth      int    `json:"depth" yaml:"depth"`
	Indent     int    `json:"indent" yaml:"indent"`
	ActivityID string `json:"activity_id,omitempty" yaml:"activity_id,omitempty"`
	Text       string `json:"text" yaml:"text"`
	// Last marks the final branch of a fork.
	Last bool `json:"last,omitempty" yaml:"last,omitempty"`
	// Revisit marks a branch whose target was already expanded.
	Revisit bool `json:"revisit,omitempty" yaml:"revisit,omitempty"`
}

const (
	pathIndent = 4
	vizIndent  = 2
)

// UnknownLabel is shown for a reference that does not resolve.
const UnknownLabel = "unknown"

// UnknownActivity labels an activity id that does not resolve.
func UnknownActivity(id string) string {
	if id == "" {
		return UnknownLabel + " activity"
	}
	return UnknownLabel + " activity " + id
}

// String formats the line with its indentation.
func (l Line) String() string {
	text := l.Text
	if l.Kind == LineActivity {
		text = "Activity: " + text
	}
	return strings.Repeat(" ", l.Indent) + text
}

// Render formats a traversal as newline-terminated text.
func Render(seq iter.Seq[Line]) string {
	var b strings.Builder
	for l := range seq {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return b.String()
}
