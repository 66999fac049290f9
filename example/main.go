package main

import (
	"encoding/json"
	"fmt"
	"log"
	"slices"

	"github.com/meikuraledutech/wfgraph"
	"github.com/meikuraledutech/wfgraph/xmldoc"
)

// onboarding forks on the employee type and loops back when paperwork is incomplete.
const onboarding = `<?xml version="1.0" encoding="UTF-8"?>
<unload>
  <wf_workflow_version>
    <sys_id>v1</sys_id>
    <name>Employee Onboarding</name>
    <table>hr_case</table>
    <active>true</active>
    <start display_value="q1">q1</start>
  </wf_workflow_version>
  <wf_stage><sys_id>s1</sys_id><name>Intake</name><value>intake</value><order>1</order></wf_stage>
  <wf_activity><sys_id>q1</sys_id><name>Collect Role</name><stage display_value="s1">s1</stage></wf_activity>
  <wf_activity><sys_id>q2</sys_id><name>Provision Laptop</name></wf_activity>
  <wf_activity><sys_id>q3</sys_id><name>Order Tablet</name></wf_activity>
  <wf_activity><sys_id>q4</sys_id><name>Check Paperwork</name><stage display_value="s1">s1</stage></wf_activity>
  <wf_condition><sys_id>c1</sys_id><name>Developer</name></wf_condition>
  <wf_condition><sys_id>c2</sys_id><name>Designer</name></wf_condition>
  <wf_condition><sys_id>c3</sys_id><name>Always</name></wf_condition>
  <wf_condition><sys_id>c4</sys_id><name>Incomplete</name></wf_condition>
  <wf_transition><sys_id>t1</sys_id><from display_value="q1"/><to display_value="q2"/><condition display_value="c1"/></wf_transition>
  <wf_transition><sys_id>t2</sys_id><from display_value="q1"/><to display_value="q3"/><condition display_value="c2"/></wf_transition>
  <wf_transition><sys_id>t3</sys_id><from display_value="q2"/><to display_value="q4"/><condition display_value="c3"/></wf_transition>
  <wf_transition><sys_id>t4</sys_id><from display_value="q3"/><to display_value="q4"/><condition display_value="c3"/></wf_transition>
  <wf_transition><sys_id>t5</sys_id><from display_value="q4"/><to display_value="q1"/><condition display_value="c4"/></wf_transition>
</unload>`

func main() {
	p := xmldoc.NewParser(nil)

	// ── Parse ─────────────────────────────────────────────────────────
	w, err := p.Parse("onboarding.xml", []byte(onboarding))
	if err != nil {
		log.Fatalf("parse: %v", err)
	}
	fmt.Println("workflow parsed")

	// ── Summary ───────────────────────────────────────────────────────
	fmt.Println("\nsummary:")
	printJSON(w.Summary())

	// ── Paths: cycle detection is per path ────────────────────────────
	fmt.Println("\npaths:")
	fmt.Print(wfgraph.Render(w.Paths(wfgraph.DefaultMaxDepth)))

	// ── Diagram: each activity is expanded once ───────────────────────
	fmt.Println("\ndiagram:")
	fmt.Print(wfgraph.Render(w.Diagram()))

	// ── Lines are plain values, usable without rendering ──────────────
	cycles := 0
	for _, l := range slices.Collect(w.Paths(0)) {
		if l.Kind == wfgraph.LineCycle {
			cycles++
		}
	}
	fmt.Printf("\ncycles reported on %d path(s)\n", cycles)

	// ── Decode failures are typed ─────────────────────────────────────
	if _, err := p.Parse("broken.xml", []byte("<<<")); err != nil {
		fmt.Printf("\nbroken input rejected: %v\n", err)
	}
}

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}
