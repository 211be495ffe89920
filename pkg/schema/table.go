package schema

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ModelTable shows a list of models as a table, marking the current model
type ModelTable struct {
	Models       []Model
	CurrentModel string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	currentMarker = "*"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (t ModelTable) Header() []string {
	return []string{"", "Name", "Kind", "Owner", "Created"}
}

func (t ModelTable) Len() int {
	return len(t.Models)
}

func (t ModelTable) Row(i int) []any {
	model := t.Models[i]
	var current string
	if t.CurrentModel != "" && model.Name == t.CurrentModel {
		current = currentMarker
	}
	kind, _ := model.Meta["kind"].(string)
	return []any{current, model.Name, kind, model.OwnedBy, model.Created}
}
