// Package importer reads goal plans from JSON or YAML files so a journey
// can be set up in one step instead of one command per milestone.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/journey/internal/filestore"
)

// PlanFile is the top-level structure of an import file.
type PlanFile struct {
	Goals []GoalImport `json:"goals" yaml:"goals"`
}

type GoalImport struct {
	Title          string            `json:"title" yaml:"title"`
	Description    string            `json:"description,omitempty" yaml:"description,omitempty"`
	Deadline       string            `json:"deadline" yaml:"deadline"`
	EstimatedHours *float64          `json:"estimated_hours,omitempty" yaml:"estimated_hours,omitempty"`
	Tags           []string          `json:"tags,omitempty" yaml:"tags,omitempty"`
	Milestones     []MilestoneImport `json:"milestones,omitempty" yaml:"milestones,omitempty"`
}

type MilestoneImport struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Link        string `json:"link,omitempty" yaml:"link,omitempty"`
}

// LoadPlan reads a plan file. The format follows the extension: .yaml and
// .yml are YAML, anything else is JSON.
func LoadPlan(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePlan(data, formatFor(path))
}

// ParsePlan decodes data in the given format ("json" or "yaml").
func ParsePlan(data []byte, format string) (*PlanFile, error) {
	codec, err := filestore.CodecFor(format)
	if err != nil {
		return nil, err
	}
	var plan PlanFile
	if err := codec.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &plan, nil
}

func formatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
