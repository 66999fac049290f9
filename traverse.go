package wfgraph

import (
	"iter"
	"slices"
)

// DefaultMaxDepth bounds how many transitions deep EnumeratePaths follows
// a single path before it stops with a max-depth marker.
const DefaultMaxDepth = 10

// EnumeratePaths walks every path from startID depth first and yields
// its rendering. Cycle detection is per path: an activity may appear on
// sibling branches but never twice on one path. The walk also stops after
// maxDepth transitions (DefaultMaxDepth when maxDepth <= 0).
//
// The sequence is finite for any graph and may be iterated repeatedly.
func (w *Workflow) EnumeratePaths(startID string, maxDepth int) iter.Seq[Line] {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return func(yield func(Line) bool) {
		w.walkPath(yield, startID, 0, maxDepth, nil)
	}
}

// walkPath returns false once the consumer stops iterating.
func (w *Workflow) walkPath(yield func(Line) bool, id string, depth, maxDepth int, visited []string) bool {
	indent := depth * pathIndent
	if slices.Contains(visited, id) {
		return yield(Line{Kind: LineCycle, Depth: depth, Indent: indent, ActivityID: id,
			Text: "... (cycle detected, already visited " + id + ")"})
	}
	// Each branch gets its own copy so siblings do not see each other.
	visited = append(slices.Clip(visited), id)

	name, ok := w.activityName(id)
	if !ok {
		return yield(Line{Kind: LineUnknown, Depth: depth, Indent: indent, ActivityID: id,
			Text: UnknownActivity(id)})
	}
	if !yield(Line{Kind: LineActivity, Depth: depth, Indent: indent, ActivityID: id, Text: name}) {
		return false
	}

	out := w.Transitions.Outgoing(id)
	if len(out) == 0 {
		return yield(Line{Kind: LineEnd, Depth: depth, Indent: indent + 2, ActivityID: id,
			Text: "(end of path)"})
	}

	for _, t := range out {
		cond, ok := w.conditionName(t.ConditionID)
		if !ok {
			cond = UnknownLabel
		}
		if !yield(Line{Kind: LineCondition, Depth: depth, Indent: indent + 2, ActivityID: id,
			Text: "→ [" + cond + "]"}) {
			return false
		}
		if depth < maxDepth {
			if !w.walkPath(yield, t.ToActivityID, depth+1, maxDepth, visited) {
				return false
			}
			continue
		}
		if !yield(Line{Kind: LineMaxDepth, Depth: depth, Indent: indent + pathIndent, ActivityID: t.ToActivityID,
			Text: "... (path continues, max depth reached)"}) {
			return false
		}
	}
	return true
}

// Paths enumerates paths from the version's start activity.
func (w *Workflow) Paths(maxDepth int) iter.Seq[Line] {
	return w.EnumeratePaths(w.StartActivityID(), maxDepth)
}

// Visualize draws the graph reachable from startID as an ASCII tree.
// Unlike EnumeratePaths a single visited set is shared by the whole walk:
// each activity is expanded at most once, later branches that reach it
// only draw the branch arrow. An unknown startID yields a single
// LineNoStart line.
func (w *Workflow) Visualize(startID string) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		if _, ok := w.Activities.Get(startID); !ok {
			yield(Line{Kind: LineNoStart, ActivityID: startID, Text: "Could not find start activity"})
			return
		}
		v := &visualizer{w: w, yield: yield, visited: make(map[string]bool)}
		v.visit(startID, 0)
	}
}

// Diagram visualizes from the version's start activity.
func (w *Workflow) Diagram() iter.Seq[Line] {
	return w.Visualize(w.StartActivityID())
}

type visualizer struct {
	w       *Workflow
	yield   func(Line) bool
	visited map[string]bool
}

func (v *visualizer) emit(kind LineKind, depth int, id, text string) bool {
	return v.yield(Line{Kind: kind, Depth: depth, Indent: depth * vizIndent, ActivityID: id, Text: text})
}

// visit returns false once the consumer stops iterating.
func (v *visualizer) visit(id string, depth int) bool {
	if v.visited[id] {
		return v.emit(LineArrow, depth, id, "↓") &&
			v.emit(LineCycle, depth, id, "(cycle detected)")
	}
	v.visited[id] = true

	name, ok := v.w.activityName(id)
	if !ok {
		return v.emit(LineArrow, depth, id, "↓") &&
			v.emit(LineUnknown, depth, id, "["+UnknownActivity(id)+"]")
	}
	if !v.emit(LineArrow, depth, id, "↓") || !v.emit(LineNode, depth, id, "["+name+"]") {
		return false
	}

	out := v.w.Transitions.Outgoing(id)
	switch len(out) {
	case 0:
		return true
	case 1:
		return v.visit(out[0].ToActivityID, depth)
	}

	for i, t := range out {
		glyph := "├"
		if i == len(out)-1 {
			glyph = "└"
		}
		to := t.ToActivityID
		target, ok := v.w.activityName(to)
		if !ok {
			target = UnknownActivity(to)
		}
		seen := v.visited[to]
		if !v.yield(Line{Kind: LineBranch, Depth: depth, Indent: depth * vizIndent, ActivityID: to,
			Text: glyph + "→ " + target, Last: i == len(out)-1, Revisit: seen}) {
			return false
		}
		if !ok || seen {
			continue
		}
		if !v.visit(to, depth+2) {
			return false
		}
	}
	return true
}
