package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/inputfix/internal/model"
)

// ReportStore persists and retrieves scan reports.
type ReportStore interface {
	// SaveText writes the human-readable report.
	SaveText(path m.Path, text string) error
	// SaveReport writes the report data so it can be viewed later.
	SaveReport(path m.Path, report m.ScanReport) error
	// LoadReport reads report data written by SaveReport.
	LoadReport(path m.Path) (m.ScanReport, error)
}

type reportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (rs *reportStore) SaveText(path m.Path, text string) error {
	if err := ensureParent(path); err != nil {
		return err
	}

	if err := os.WriteFile(string(path), []byte(text), 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

func (rs *reportStore) SaveReport(path m.Path, report m.ScanReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := ensureParent(path); err != nil {
		return err
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write report data %s: %w", path, err)
	}

	return nil
}

func (rs *reportStore) LoadReport(path m.Path) (m.ScanReport, error) {
	// #nosec G304 - the report path comes from the user's own configuration
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.ScanReport{}, fmt.Errorf("read report data %s: %w", path, err)
	}

	var report m.ScanReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.ScanReport{}, fmt.Errorf("decode report data %s: %w", path, err)
	}

	return report, nil
}

func ensureParent(path m.Path) error {
	dir := filepath.Dir(string(path))
	if dir == "." || dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create report directory %s: %w", dir, err)
	}

	return nil
}
