package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meikuraledutech/wfgraph"
	"github.com/meikuraledutech/wfgraph/internal/config"
	"github.com/meikuraledutech/wfgraph/internal/export"
	"github.com/meikuraledutech/wfgraph/internal/logging"
	"github.com/meikuraledutech/wfgraph/xmldoc"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

type rootOptions struct {
	configPath string
	jsonPath   string
	yamlPath   string
	details    bool
	path       bool
	visualize  bool
	maxDepth   int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "wfgraph <file>",
		Short: "Analyze and visualize workflow XML exports",
		Long: `wfgraph parses a workflow XML export into its version, stages,
activities, conditions and transitions.

It prints a short summary and can additionally list every path from the
start activity, draw a branch diagram, or export the parsed model.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	f.StringVar(&opts.jsonPath, "json", "", "export the parsed workflow as JSON to `FILE`")
	f.StringVar(&opts.yamlPath, "yaml", "", "export the parsed workflow as YAML to `FILE`")
	f.BoolVar(&opts.details, "details", false, "list every parsed entity")
	f.BoolVar(&opts.path, "path", false, "print every path from the start activity")
	f.BoolVar(&opts.visualize, "visualize", false, "draw the branch diagram")
	f.IntVar(&opts.maxDepth, "max-depth", 0, "path depth budget (overrides configuration)")
	return cmd
}

func runRoot(cmd *cobra.Command, opts *rootOptions, file string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-depth") {
		if opts.maxDepth <= 0 {
			return fmt.Errorf("--max-depth must be positive, got %d", opts.maxDepth)
		}
		cfg.Traversal.MaxDepth = opts.maxDepth
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync fails on some terminals

	w, err := xmldoc.NewParser(logger).ParseFile(file)
	if err != nil {
		return fmt.Errorf("processing workflow: %w", err)
	}
	logger.Info("Parsed workflow", zap.String("file", file), zap.Int("activities", w.Activities.Len()))

	out := cmd.OutOrStdout()
	summary := w.Summary()
	fmt.Fprintf(out, "Workflow: %s\n", summary.Name)
	fmt.Fprintf(out, "Table: %s\n", summary.Table)
	fmt.Fprintf(out, "Activities: %d\n", summary.ActivityCount)
	fmt.Fprintf(out, "Stages: %d\n", summary.StageCount)

	if opts.details {
		printDetails(out, w, summary)
	}

	exports := []struct {
		path   string
		format export.Format
	}{
		{opts.jsonPath, export.JSON},
		{opts.yamlPath, export.YAML},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := export.WriteFileAs(e.path, w.Snapshot(), e.format); err != nil {
			return fmt.Errorf("exporting workflow: %w", err)
		}
		fmt.Fprintf(out, "Workflow data exported to %s\n", e.path)
	}

	if opts.visualize {
		printDiagram(out, w, summary.Name)
	}

	if opts.path {
		fmt.Fprintf(out, "\n%s\n", headingStyle.Render("===== Workflow Path ====="))
		fmt.Fprint(out, wfgraph.Render(w.Paths(cfg.Traversal.MaxDepth)))
	}

	return nil
}

func printDiagram(out io.Writer, w *wfgraph.Workflow, name string) {
	lines := slices.Collect(w.Diagram())
	if len(lines) == 1 && lines[0].Kind == wfgraph.LineNoStart {
		fmt.Fprintln(out, lines[0].Text)
		return
	}
	fmt.Fprintf(out, "\n%s\n\n", headingStyle.Render("Workflow: "+name))
	fmt.Fprintln(out, "Start")
	fmt.Fprintln(out, "  ↓")
	fmt.Fprint(out, wfgraph.Render(slices.Values(lines)))
}

func printDetails(out io.Writer, w *wfgraph.Workflow, s wfgraph.Summary) {
	section := func(title string) {
		fmt.Fprintf(out, "\n%s\n", headingStyle.Render("===== "+title+" ====="))
	}

	section("Workflow Summary")
	fmt.Fprintf(out, "Name: %s\n", s.Name)
	fmt.Fprintf(out, "Table: %s\n", s.Table)
	fmt.Fprintf(out, "Description: %s\n", orNA(s.Description))
	fmt.Fprintf(out, "Start Activity: %s\n", s.StartActivity)
	fmt.Fprintf(out, "Stages: %d\n", s.StageCount)
	fmt.Fprintf(out, "Activities: %d\n", s.ActivityCount)

	section("Workflow Version")
	if w.Version != nil {
		fmt.Fprintf(out, "%+v\n", *w.Version)
	} else {
		fmt.Fprintln(out, dimStyle.Render("N/A"))
	}

	section("Activities")
	for _, a := range w.Activities.All() {
		fmt.Fprintf(out, "%+v\n", a)
	}

	section("Stages")
	for _, st := range w.Stages.All() {
		fmt.Fprintf(out, "%+v\n", st)
	}

	section("Conditions")
	for _, c := range w.Conditions.All() {
		fmt.Fprintf(out, "%+v\n", c)
	}

	section("Transitions")
	for _, src := range w.DescribeTransitions() {
		fmt.Fprintf(out, "From: %s\n", src.From)
		for _, e := range src.Edges {
			fmt.Fprintf(out, "  To: %s | Condition: %s\n", e.To, e.Condition)
		}
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
