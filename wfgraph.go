// Package wfgraph reconstructs a workflow definition export into an
// in-memory directed graph of activities joined by transitions, and
// renders it as a summary, a path listing or a branch diagram.
package wfgraph

// Version is the workflow version record. StartActivityID references an Activity.
type Version struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	Table           string `json:"table" yaml:"table"`
	Active          bool   `json:"active" yaml:"active"`
	Description     string `json:"description" yaml:"description"`
	StartActivityID string `json:"start_activity_id" yaml:"start_activity_id"`
}

// Stage groups activities. Order is kept as exported, it is not always numeric.
type Stage struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
	Order string `json:"order" yaml:"order"`
}

// Activity is a node of the workflow graph.
// StageID is empty when the activity belongs to no stage.
type Activity struct {
	ID                 string `json:"id" yaml:"id"`
	Name               string `json:"name" yaml:"name"`
	ActivityDefinition string `json:"activity_definition" yaml:"activity_definition"`
	StageID            string `json:"stage_id" yaml:"stage_id"`
	X                  string `json:"x" yaml:"x"`
	Y                  string `json:"y" yaml:"y"`
}

// Condition labels a transition. The guard expression is never evaluated.
type Condition struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	ActivityID string `json:"activity_id" yaml:"activity_id"`
	Condition  string `json:"condition" yaml:"condition"`
	Order      string `json:"order" yaml:"order"`
}

// Transition is a directed edge FromActivityID → ToActivityID labelled by ConditionID.
type Transition struct {
	ID             string `json:"id" yaml:"id"`
	ConditionID    string `json:"condition_id" yaml:"condition_id"`
	FromActivityID string `json:"from_activity_id" yaml:"from_activity_id"`
	ToActivityID   string `json:"to_activity_id" yaml:"to_activity_id"`
}

// Summary is the aggregate view derived from a Workflow.
type Summary struct {
	Name            string              `json:"name" yaml:"name"`
	Table           string              `json:"table" yaml:"table"`
	Description     string              `json:"description" yaml:"description"`
	StartActivity   string              `json:"start_activity" yaml:"start_activity"`
	StageCount      int                 `json:"stage_count" yaml:"stage_count"`
	ActivityCount   int                 `json:"activity_count" yaml:"activity_count"`
	StageActivities map[string][]string `json:"stage_activities" yaml:"stage_activities"`
}

// Workflow is the entity model produced by one extraction.
// It is not modified after Extract returns and is safe for concurrent reads.
type Workflow struct {
	// Version is nil when the document carries no version record.
	Version     *Version
	Stages      *Collection[Stage]
	Activities  *Collection[Activity]
	Conditions  *Collection[Condition]
	Transitions *Adjacency
}

// StartActivityID returns the start pointer of the version, or "" without one.
func (w *Workflow) StartActivityID() string {
	if w.Version == nil {
		return ""
	}
	return w.Version.StartActivityID
}

// activityName resolves an activity id to its name.
func (w *Workflow) activityName(id string) (string, bool) {
	a, ok := w.Activities.Get(id)
	if !ok {
		return "", false
	}
	return a.Name, true
}

// conditionName resolves a condition id to its name.
func (w *Workflow) conditionName(id string) (string, bool) {
	c, ok := w.Conditions.Get(id)
	if !ok {
		return "", false
	}
	return c.Name, true
}
