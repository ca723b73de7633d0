package docs

import (
	"encoding/json"
	"testing"
)

// The update body is a partial: todo_status moves through its own endpoint
// and must not be advertised here.
func TestUpdateNoteDefinition(t *testing.T) {
	var doc struct {
		Definitions map[string]struct {
			Properties map[string]json.RawMessage `json:"properties"`
		} `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("Test TestUpdateNoteDefinition: Should be able to unmarshal the doc template : %v", err)
	}

	def, ok := doc.Definitions["note.UpdateNote"]
	if !ok {
		t.Fatalf("Test TestUpdateNoteDefinition: Should have a note.UpdateNote definition")
	}
	if _, ok := def.Properties["todo_status"]; ok {
		t.Fatalf("Test TestUpdateNoteDefinition: Should not advertise todo_status on the update body")
	}
	for _, field := range []string{"title", "content", "priority", "due_date", "is_archived", "category_ids"} {
		if _, ok := def.Properties[field]; !ok {
			t.Fatalf("Test TestUpdateNoteDefinition: Should advertise %s on the update body", field)
		}
	}
}
