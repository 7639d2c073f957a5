package file

import (
	"fmt"
	"os"
	"path/filepath"
)

// Export writes the blueprint document and its markdown report side
// by side under dir, named after the scenario. It returns both paths.
func Export(dir, name string, blueprint []byte, report string) (string, string, error) {
	if name == "" {
		return "", "", fmt.Errorf("export name cannot be empty")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to ensure output directory: %w", err)
	}

	blueprintPath := filepath.Join(dir, name+".blueprint.json")
	if err := os.WriteFile(blueprintPath, blueprint, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write blueprint: %w", err)
	}

	reportPath := filepath.Join(dir, name+".report.md")
	if err := os.WriteFile(reportPath, []byte(report), 0644); err != nil {
		return "", "", fmt.Errorf("failed to write report: %w", err)
	}

	return blueprintPath, reportPath, nil
}
