package domain

import "time"

// CommentLike is a like record. A user may like a given comment at most
// once; the storage layer enforces this with a unique (comment_id, user_id)
// constraint, which is also the backstop for concurrent duplicate toggles.
type CommentLike struct {
	ID        string
	CommentID string
	UserID    string
	CreatedAt time.Time
}
