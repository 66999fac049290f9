package wfgraph

// Summarize derives the aggregate view of w.
// Without a version record every field is left at its zero value.
func Summarize(w *Workflow) Summary {
	s := Summary{StageActivities: map[string][]string{}}
	if w == nil || w.Version == nil {
		return s
	}

	s.Name = w.Version.Name
	s.Table = w.Version.Table
	s.Description = w.Version.Description
	if name, ok := w.activityName(w.Version.StartActivityID); ok {
		s.StartActivity = name
	}

	s.StageCount = w.Stages.Len()
	s.ActivityCount = w.Activities.Len()

	// Activities without a stage are left out rather than grouped under "".
	for _, a := range w.Activities.All() {
		if a.StageID == "" {
			continue
		}
		s.StageActivities[a.StageID] = append(s.StageActivities[a.StageID], a.Name)
	}

	return s
}

// Summary is shorthand for Summarize(w).
func (w *Workflow) Summary() Summary {
	return Summarize(w)
}

// EdgeDescription names one transition by its target and condition.
type EdgeDescription struct {
	To        string `json:"to" yaml:"to"`
	Condition string `json:"condition" yaml:"condition"`
}

// SourceDescription lists the transitions leaving one activity.
type SourceDescription struct {
	From  string            `json:"from" yaml:"from"`
	Edges []EdgeDescription `json:"edges" yaml:"edges"`
}

// DescribeTransitions lists the adjacency index with activity and
// condition names, falling back to the raw identifier when a reference
// does not resolve.
func (w *Workflow) DescribeTransitions() []SourceDescription {
	var out []SourceDescription
	for _, from := range w.Transitions.Sources() {
		d := SourceDescription{From: w.activityLabelOr(from)}
		for _, t := range w.Transitions.Outgoing(from) {
			cond, ok := w.conditionName(t.ConditionID)
			if !ok {
				cond = t.ConditionID
			}
			d.Edges = append(d.Edges, EdgeDescription{
				To:        w.activityLabelOr(t.ToActivityID),
				Condition: cond,
			})
		}
		out = append(out, d)
	}
	return out
}

func (w *Workflow) activityLabelOr(id string) string {
	if name, ok := w.activityName(id); ok {
		return name
	}
	return id
}
