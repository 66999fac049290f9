package xmldoc

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/meikuraledutech/wfgraph"
)

// Parser decodes XML exports into workflows.
type Parser struct {
	logger *zap.Logger
}

// NewParser returns a Parser. A nil logger disables logging.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// Parse decodes data and extracts its workflow. source names the input
// in errors and logs.
func (p *Parser) Parse(source string, data []byte) (*wfgraph.Workflow, error) {
	doc, err := Decode(source, data)
	if err != nil {
		p.logger.Warn("Failed to decode workflow document",
			zap.String("source", source),
			zap.Int("bytes", len(data)),
			zap.Error(err))
		return nil, err
	}

	w := wfgraph.Extract(doc)
	p.logger.Debug("Extracted workflow",
		zap.String("source", source),
		zap.Bool("has_version", w.Version != nil),
		zap.Int("stages", w.Stages.Len()),
		zap.Int("activities", w.Activities.Len()),
		zap.Int("conditions", w.Conditions.Len()),
		zap.Int("transitions", w.Transitions.Len()))
	return w, nil
}

// ParseFile reads and parses the export at path.
func (p *Parser) ParseFile(path string) (*wfgraph.Workflow, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the caller
	if err != nil {
		return nil, fmt.Errorf("wfgraph: read %s: %w", path, err)
	}
	return p.Parse(path, data)
}
