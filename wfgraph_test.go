package wfgraph

// memDoc is an in-memory Document for tests.
type memDoc map[string][]Record

func (d memDoc) Records(tag string) []Record { return d[tag] }

// memRecord holds child text and display_value references.
type memRecord struct {
	text map[string]string
	refs map[string]string
}

func (r memRecord) ChildText(tag string) string { return r.text[tag] }

func (r memRecord) ChildAttr(tag, attr string) string {
	if attr != AttrDisplayValue {
		return ""
	}
	return r.refs[tag]
}

// graphBuilder assembles a memDoc fluently.
type graphBuilder struct {
	doc memDoc
}

func newGraph() *graphBuilder {
	return &graphBuilder{doc: memDoc{}}
}

func (b *graphBuilder) add(tag string, text, refs map[string]string) *graphBuilder {
	b.doc[tag] = append(b.doc[tag], memRecord{text: text, refs: refs})
	return b
}

func (b *graphBuilder) version(name, start string) *graphBuilder {
	return b.add(TagVersion,
		map[string]string{"sys_id": "V1", "name": name, "table": "sc_req_item", "active": "true", "description": "demo"},
		map[string]string{"start": start})
}

func (b *graphBuilder) stage(id, name string) *graphBuilder {
	return b.add(TagStage, map[string]string{"sys_id": id, "name": name, "value": name, "order": "100"}, nil)
}

func (b *graphBuilder) activity(id, name, stage string) *graphBuilder {
	return b.add(TagActivity,
		map[string]string{"sys_id": id, "name": name, "x": "10", "y": "20"},
		map[string]string{"stage": stage, "activity_definition": "Approval - User"})
}

func (b *graphBuilder) condition(id, name string) *graphBuilder {
	return b.add(TagCondition,
		map[string]string{"sys_id": id, "name": name, "condition": "activity.result=='" + name + "'"},
		nil)
}

func (b *graphBuilder) transition(id, from, to, cond string) *graphBuilder {
	return b.add(TagTransition,
		map[string]string{"sys_id": id},
		map[string]string{"from": from, "to": to, "condition": cond})
}

func (b *graphBuilder) build() *Workflow {
	return Extract(b.doc)
}

// approvalFlow is Start -[Approved]-> Approve.
func approvalFlow() *graphBuilder {
	return newGraph().
		version("Approval", "A1").
		activity("A1", "Start", "").
		activity("A2", "Approve", "").
		condition("C1", "Approved").
		transition("T1", "A1", "A2", "C1")
}

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}
