package wfgraph

// Extract builds the entity model from a decoded document.
// Reference fields are read from their display_value attribute and are
// never re-resolved. Missing fields become "". A document without a
// version record yields a Workflow whose Version is nil.
func Extract(doc Document) *Workflow {
	w := &Workflow{
		Stages:      NewCollection[Stage](),
		Activities:  NewCollection[Activity](),
		Conditions:  NewCollection[Condition](),
		Transitions: NewAdjacency(),
	}

	if versions := doc.Records(TagVersion); len(versions) > 0 {
		r := versions[0]
		w.Version = &Version{
			ID:              r.ChildText("sys_id"),
			Name:            r.ChildText("name"),
			Table:           r.ChildText("table"),
			Active:          r.ChildText("active") == "true",
			Description:     r.ChildText("description"),
			StartActivityID: r.ChildAttr("start", AttrDisplayValue),
		}
	}

	for _, r := range doc.Records(TagStage) {
		s := Stage{
			ID:    r.ChildText("sys_id"),
			Name:  r.ChildText("name"),
			Value: r.ChildText("value"),
			Order: r.ChildText("order"),
		}
		w.Stages.Put(s.ID, s)
	}

	for _, r := range doc.Records(TagActivity) {
		a := Activity{
			ID:                 r.ChildText("sys_id"),
			Name:               r.ChildText("name"),
			ActivityDefinition: r.ChildAttr("activity_definition", AttrDisplayValue),
			StageID:            r.ChildAttr("stage", AttrDisplayValue),
			X:                  r.ChildText("x"),
			Y:                  r.ChildText("y"),
		}
		w.Activities.Put(a.ID, a)
	}

	for _, r := range doc.Records(TagCondition) {
		c := Condition{
			ID:         r.ChildText("sys_id"),
			Name:       r.ChildText("name"),
			ActivityID: r.ChildAttr("activity", AttrDisplayValue),
			Condition:  r.ChildText("condition"),
			Order:      r.ChildText("order"),
		}
		w.Conditions.Put(c.ID, c)
	}

	for _, r := range doc.Records(TagTransition) {
		w.Transitions.Add(Transition{
			ID:             r.ChildText("sys_id"),
			ConditionID:    r.ChildAttr("condition", AttrDisplayValue),
			FromActivityID: r.ChildAttr("from", AttrDisplayValue),
			ToActivityID:   r.ChildAttr("to", AttrDisplayValue),
		})
	}

	return w
}
