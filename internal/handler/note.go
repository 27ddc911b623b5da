package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"securenotes/internal/middleware"
	"securenotes/internal/queue"
	"securenotes/internal/repository"
	"securenotes/internal/utils"
)

// EventPublisher pushes note activity events to the message broker.
// Publishing is best-effort: implementations log their own failures and
// handlers never surface them to the client.
type EventPublisher interface {
	PublishNoteEvent(ctx context.Context, ev queue.NoteEvent) error
}

// NoteHandler bundles dependencies for the notes endpoints. All handlers
// assume the session guard already ran and attached the caller's user id
// to the request context.
type NoteHandler struct {
	Notes  *repository.NoteRepo
	Users  *repository.UserRepo
	Events EventPublisher
	Log    *zap.Logger
}

func NewNoteHandler(n *repository.NoteRepo, u *repository.UserRepo, ev EventPublisher, log *zap.Logger) *NoteHandler {
	return &NoteHandler{Notes: n, Users: u, Events: ev, Log: log}
}

// ----- DTOs -----

type createNoteReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
type updateNoteReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	NoteID  uint64 `json:"id_note"`
}
type deleteNoteReq struct {
	Password string `json:"password"`
	NoteID   uint64 `json:"id_note"`
}

// Create handles POST /notes. The owner is always the authenticated
// caller; the client cannot create a note for anyone else.
func (h *NoteHandler) Create(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "access denied"})
	}
	var req createNoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	note, err := h.Notes.Create(ctx, uid, req.Title, req.Content)
	if err != nil {
		h.Log.Error("note create failed", zap.Error(err), zap.Uint64("user_id", uid))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "ERROR creating note"})
	}

	h.publish(queue.NoteEvent{Action: queue.ActionCreated, NoteID: note.ID, UserID: uid, Title: note.Title})

	// The owner id is implicit in the session and not echoed back; the
	// created row comes back as a one-element array.
	note.UserID = 0
	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "Note created successfully",
		"NoteCreated": []any{note},
	})
}

// List handles GET /notes. Only the caller's own notes are returned, in
// store order. A user with no notes gets a friendly message instead of an
// empty list.
func (h *NoteHandler) List(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "access denied"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	notes, err := h.Notes.ListByOwner(ctx, uid)
	if err != nil {
		h.Log.Error("note list failed", zap.Error(err), zap.Uint64("user_id", uid))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error retrieving notes"})
	}
	if len(notes) == 0 {
		return c.JSON(http.StatusOK, echo.Map{"message": "create your first note"})
	}
	return c.JSON(http.StatusOK, notes)
}

// Update handles PATCH /notes. Ownership is enforced inside the UPDATE
// statement itself; a note that does not exist and a note owned by someone
// else both come back as 404 so ids cannot be probed.
func (h *NoteHandler) Update(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "access denied"})
	}
	var req updateNoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Notes.UpdateOwned(ctx, req.NoteID, uid, req.Title, req.Content); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Note not found"})
		}
		h.Log.Error("note update failed", zap.Error(err), zap.Uint64("user_id", uid))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error updating note"})
	}

	h.publish(queue.NoteEvent{Action: queue.ActionUpdated, NoteID: req.NoteID, UserID: uid, Title: req.Title})

	return c.JSON(http.StatusOK, echo.Map{"title": req.Title, "content": req.Content})
}

// Delete handles DELETE /notes. Deletion is the one destructive operation,
// so it requires step-up re-authentication: the caller's password is
// re-verified against the hash stored for their user id before the
// ownership-filtered DELETE runs.
func (h *NoteHandler) Delete(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "access denied"})
	}
	var req deleteNoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": []string{utils.MsgPasswordRequired}})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid password"})
		}
		h.Log.Error("note delete: user lookup failed", zap.Error(err), zap.Uint64("user_id", uid))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error deleting note"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid password"})
	}

	if err := h.Notes.DeleteOwned(ctx, req.NoteID, uid); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Note not found"})
		}
		h.Log.Error("note delete failed", zap.Error(err), zap.Uint64("user_id", uid))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error deleting note"})
	}

	h.publish(queue.NoteEvent{Action: queue.ActionDeleted, NoteID: req.NoteID, UserID: uid})

	return c.JSON(http.StatusOK, echo.Map{"message": "Your note was deleted successfully"})
}

// publish sends a note activity event without blocking the response path.
// A nil publisher disables the activity trail entirely.
func (h *NoteHandler) publish(ev queue.NoteEvent) {
	if h.Events == nil {
		return
	}
	ev.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = h.Events.PublishNoteEvent(ctx, ev)
	}()
}
