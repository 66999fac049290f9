// Package export writes workflow snapshots as JSON or YAML.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/meikuraledutech/wfgraph"
)

// Format is a snapshot encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension; anything other
// than .yaml or .yml is JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Write encodes snap to w.
func Write(w io.Writer, snap wfgraph.Snapshot, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}

// Read decodes a snapshot previously produced by Write.
func Read(r io.Reader, f Format) (wfgraph.Snapshot, error) {
	var snap wfgraph.Snapshot
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(&snap)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&snap)
	default:
		err = fmt.Errorf("unsupported export format %q", f)
	}
	return snap, err
}

// WriteFile writes snap to path in the format implied by its extension.
func WriteFile(path string, snap wfgraph.Snapshot) error {
	return WriteFileAs(path, snap, FormatFromPath(path))
}

// WriteFileAs writes snap to path in format, whatever the extension.
func WriteFileAs(path string, snap wfgraph.Snapshot, format Format) error {
	f, err := os.Create(path) //nolint:gosec // path is chosen by the caller
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, snap, format); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
