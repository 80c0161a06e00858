package datasync

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/memorizer/internal/eventlog"
)

const (
	ReviewEventsFile     = "review_events.yml"
	LabelAssignmentsFile = "label_assignments.yml"
)

// WriteYAML writes the export into dir, one file per record type.
func WriteYAML(dir string, data *ExportData) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}
	if err := writeYAMLFile(filepath.Join(dir, ReviewEventsFile), data.ReviewEvents); err != nil {
		return err
	}
	return writeYAMLFile(filepath.Join(dir, LabelAssignmentsFile), data.LabelAssignments)
}

func writeYAMLFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("yaml.Encode(%s) > %w", path, err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("yaml.Close(%s) > %w", path, err)
	}
	return nil
}

// ReadEvents reads review events from a YAML file written by WriteYAML.
func ReadEvents(path string) ([]eventlog.ReviewEvent, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	var events []eventlog.ReviewEvent
	if err := yaml.Unmarshal(content, &events); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
	}
	return events, nil
}
