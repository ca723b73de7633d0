// Package note implements the note and todo business operations.
package note

import (
	"encoding/json"
	"time"

	"github.com/ribgsilva/notes-manager/business/v1/category"
)

type Note struct {
	Id         uint64              `json:"id" example:"1"`
	Title      string              `json:"title" example:"Pay bills"`
	Content    string              `json:"content" example:"due monthly"`
	NoteType   string              `json:"note_type" example:"todo"`
	TodoStatus string              `json:"todo_status" example:"pending"`
	Priority   string              `json:"priority" example:"high"`
	DueDate    *time.Time          `json:"due_date"`
	IsArchived bool                `json:"is_archived" example:"false"`
	CreatedAt  time.Time           `json:"created_at" example:"2006-01-02T15:04:05Z"`
	UpdatedAt  time.Time           `json:"updated_at" example:"2006-01-02T15:04:05Z"`
	Categories []category.Category `json:"categories"`
}

// Page is the envelope of every paginated listing.
type Page struct {
	Items      []Note `json:"items"`
	Total      int64  `json:"total" example:"42"`
	Page       int    `json:"page" example:"1"`
	PageSize   int    `json:"page_size" example:"10"`
	TotalPages int64  `json:"total_pages" example:"5"`
}

type NewNote struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Content     string     `json:"content" binding:"required"`
	NoteType    string     `json:"note_type" binding:"omitempty,oneof=note todo"`
	TodoStatus  string     `json:"todo_status" binding:"omitempty,oneof=pending in_progress completed"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
	CategoryIds []uint64   `json:"category_ids"`
}

// UpdateNote carries a partial update. A nil CategoryIds means the field was
// omitted; an empty slice clears every association.
type UpdateNote struct {
	Title       *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Content     *string    `json:"content" binding:"omitempty,min=1"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
	IsArchived  *bool      `json:"is_archived"`
	CategoryIds *[]uint64  `json:"category_ids"`
}

// Event is the message shape the messaging consumer receives.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const noteKey = "notes.%d"
