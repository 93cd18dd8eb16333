package export

import (
	"fmt"

	"github.com/achaendus12-spec/my-project-manager/internal/store"
	"github.com/achaendus12-spec/my-project-manager/internal/ui"
)

// ImportFile parses the document, offers the replace/merge choice through
// the interaction channel, and applies the chosen action to the store's
// local collection. Nothing is written to the remote service. Returns true
// when the collection changed.
func ImportFile(data []byte, st *store.Store, surface ui.Surface) (bool, error) {
	projects, err := Parse(data)
	if err != nil {
		surface.Toast(ui.ToastError, err.Error())
		return false, err
	}

	switch surface.ChooseImportMode(len(projects)) {
	case ui.ImportReplace:
		st.ImportReplace(projects)
		surface.Toast(ui.ToastSuccess, fmt.Sprintf("Imported %d projects (replace).", len(projects)))
		return true, nil
	case ui.ImportMerge:
		added := st.ImportMerge(projects)
		surface.Toast(ui.ToastSuccess, fmt.Sprintf("Merged %d new projects.", added))
		return true, nil
	default:
		return false, nil
	}
}
