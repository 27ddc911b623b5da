package repository

import (
	"context"
	"database/sql"

	"securenotes/internal/model"
)

// NoteRepo wraps queries against the `notes` table. Every statement that
// reads or mutates a note filters on id_user in the same statement, so
// ownership is enforced by the query itself rather than by a separate
// check.
type NoteRepo struct{ DB *sql.DB }

func NewNoteRepo(db *sql.DB) *NoteRepo { return &NoteRepo{DB: db} }

// Create inserts a note for the given owner and returns the stored row.
func (r *NoteRepo) Create(ctx context.Context, ownerID uint64, title, content string) (model.Note, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO notes (title, content, id_user) VALUES (?,?,?)",
		title, content, ownerID)
	if err != nil {
		return model.Note{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Note{}, err
	}
	return model.Note{ID: uint64(id), Title: title, Content: content, UserID: ownerID}, nil
}

// ListByOwner returns all notes belonging to the given user, in store
// order. An owner with no notes gets an empty slice, not an error.
func (r *NoteRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Note, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT title, content, id_note FROM notes WHERE id_user=?",
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.Title, &n.Content, &n.ID); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// UpdateOwned updates a note matching both id_note and id_user in a single
// statement. Zero rows affected is reported as sql.ErrNoRows, whether the
// note does not exist or belongs to someone else; callers must not
// distinguish the two. The pool's DSN enables clientFoundRows, so an
// update that matches an owned row but changes nothing still counts as
// one affected row.
func (r *NoteRepo) UpdateOwned(ctx context.Context, noteID, ownerID uint64, title, content string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE notes SET title=?, content=? WHERE id_note=? AND id_user=?",
		title, content, noteID, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteOwned removes a note matching both id_note and id_user. Zero rows
// affected is reported as sql.ErrNoRows, same as UpdateOwned.
func (r *NoteRepo) DeleteOwned(ctx context.Context, noteID, ownerID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM notes WHERE id_note=? AND id_user=?",
		noteID, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
