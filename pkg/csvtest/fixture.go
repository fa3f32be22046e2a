package csvtest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteFile creates dir/name holding the given lines, one per row, and
// returns its path.
func WriteFile(dir, name string, lines ...string) (string, error) {
	path := filepath.Join(dir, name)

	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("os.WriteFile: %w", err)
	}

	return path, nil
}

// ZipsHeader and PlansHeader match the layout of the real input files.
const (
	ZipsHeader    = "zipcode,state,county_code,name,rate_area"
	PlansHeader   = "plan_id,state,metal_level,rate,rate_area"
	QueriesHeader = "zipcode,rate"
)
