package export

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/achaendus12-spec/my-project-manager/internal/model"
)

// StructuralError reports a malformed import document. No changes are
// applied when it is returned.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("invalid import file: %s", e.Reason)
}

// Parse validates and decodes an import document. The document must be a
// JSON array in which every element carries an id and a string name;
// anything else fails with a StructuralError. Numeric ids from legacy
// exports are coerced to strings.
func Parse(data []byte) ([]model.Project, error) {
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &StructuralError{Reason: "not a JSON array of objects"}
	}

	projects := make([]model.Project, 0, len(raw))
	for i, obj := range raw {
		id, ok := obj["id"]
		if !ok || string(id) == "null" {
			return nil, &StructuralError{Reason: fmt.Sprintf("element %d has no id", i)}
		}
		var name string
		if err := json.Unmarshal(obj["name"], &name); err != nil {
			return nil, &StructuralError{Reason: fmt.Sprintf("element %d has no string name", i)}
		}

		// legacy exports carry numeric ids
		var numeric float64
		if json.Unmarshal(id, &numeric) == nil {
			obj["id"] = json.RawMessage(strconv.Quote(strconv.FormatFloat(numeric, 'f', -1, 64)))
		}

		element, err := json.Marshal(obj)
		if err != nil {
			return nil, &StructuralError{Reason: fmt.Sprintf("element %d: %v", i, err)}
		}
		var p model.Project
		if err := json.Unmarshal(element, &p); err != nil {
			return nil, &StructuralError{Reason: fmt.Sprintf("element %d is not project-shaped: %v", i, err)}
		}
		projects = append(projects, p)
	}
	return projects, nil
}
