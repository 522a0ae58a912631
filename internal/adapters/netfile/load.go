package netfile

import (
	"bytes"
	"fmt"
	"mail-train-service/internal/domain"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile reads a network description, choosing the format by extension:
// ".hcl" for HCL, anything else for the text format. The scenario is named
// after the file without its extension.
func LoadFile(path string) (*domain.Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load network file: %w", err)
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	if strings.EqualFold(ext, ".hcl") {
		return ParseHCL(src, path, name)
	}
	return ParseText(bytes.NewReader(src), name)
}
