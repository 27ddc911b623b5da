package model

// Note represents a row in the `notes` table. Every note belongs to
// exactly one user; all queries against this table filter on UserID so a
// note is only ever visible to its owner. The JSON tags follow the wire
// format used by the API (id_note, id_user).
type Note struct {
	ID      uint64 `json:"id_note"`           // notes.id_note
	Title   string `json:"title"`             // notes.title
	Content string `json:"content"`           // notes.content
	UserID  uint64 `json:"id_user,omitempty"` // notes.id_user (owner)
}
