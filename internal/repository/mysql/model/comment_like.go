package model

import "time"

// CommentLike rows carry a unique (comment_id, user_id) index; concurrent
// duplicate likes are rejected by the database, not by the application.
type CommentLike struct {
	ID        string    `gorm:"primaryKey;size:50"`
	CommentID string    `gorm:"column:comment_id;size:50;not null;uniqueIndex:uq_comment_likes_comment_user"`
	UserID    string    `gorm:"column:user_id;size:50;not null;uniqueIndex:uq_comment_likes_comment_user"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
