package wfgraph

// Snapshot is the plain, serializable view of a Workflow.
// Version is the zero value when the document had none.
type Snapshot struct {
	Version     Version                 `json:"workflow_version" yaml:"workflow_version"`
	Activities  map[string]Activity     `json:"activities" yaml:"activities"`
	Stages      map[string]Stage        `json:"stages" yaml:"stages"`
	Conditions  map[string]Condition    `json:"conditions" yaml:"conditions"`
	Transitions map[string][]Transition `json:"transitions" yaml:"transitions"`
	Summary     Summary                 `json:"summary" yaml:"summary"`
}

// Snapshot copies w into plain maps.
func (w *Workflow) Snapshot() Snapshot {
	s := Snapshot{
		Activities:  w.Activities.Map(),
		Stages:      w.Stages.Map(),
		Conditions:  w.Conditions.Map(),
		Transitions: w.Transitions.Map(),
		Summary:     Summarize(w),
	}
	if w.Version != nil {
		s.Version = *w.Version
	}
	return s
}
