// Package export serializes the project collection to portable JSON and CSV
// documents and merges or replaces it from an externally supplied file.
package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/achaendus12-spec/my-project-manager/internal/model"
)

// CSVHeader is the fixed column set of CSV exports
const CSVHeader = "id,name,category,description,deadline,priority,status,progress"

// ToJSON serializes the full collection verbatim as a pretty-printed document
func ToJSON(projects []model.Project) ([]byte, error) {
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return data, nil
}

// ToCSV serializes the fixed column set. The free-text description field is
// quoted RFC4180-style; the remaining fields are written as-is.
func ToCSV(projects []model.Project) []byte {
	var b strings.Builder
	b.WriteString(CSVHeader)
	b.WriteByte('\n')

	for _, p := range projects {
		b.WriteString(strings.Join([]string{
			p.ID,
			p.Name,
			p.Category,
			quote(p.Description),
			p.Deadline,
			p.Priority,
			p.Status,
			strconv.Itoa(p.Progress()),
		}, ","))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// quote wraps v in double quotes, doubling any embedded quotes
func quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
