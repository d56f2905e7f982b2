package model

// Purpose is a goal (passport application, bank account, ...) with the
// documents it requires.
type Purpose struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Requirements []ChecklistItem `json:"requirements"`
}

// ChecklistItem is one requirement of a purpose.
type ChecklistItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Required     bool   `json:"required"`
	DocumentType string `json:"document_type"`
	Status       string `json:"status"`
}

// Checklist item statuses.
const (
	ChecklistCompleted = "completed"
	ChecklistMissing   = "missing"
)

// Checklist is a purpose evaluated against a user's documents.
type Checklist struct {
	Purpose   string          `json:"purpose"`
	Name      string          `json:"name"`
	Items     []ChecklistItem `json:"items"`
	Completed int             `json:"completed"`
	Total     int             `json:"total"`
}
