package domain

import (
	"context"
	"time"
)

// DeletedCommentContent is the placeholder presented instead of the stored
// content once a comment has been soft-deleted.
const DeletedCommentContent = "**komentar telah dihapus**"

// Comment is a stored comment on a thread. The only mutation it ever sees
// is the soft delete, which flips IsDeleted and leaves Content untouched.
type Comment struct {
	ID        string
	Content   string
	Owner     string
	ThreadID  string
	Date      time.Time
	IsDeleted bool
	Username  string // owner's username, filled by joins on read paths
}

func (c Comment) Validate() error {
	if c.ID == "" || c.Content == "" || c.Owner == "" || c.ThreadID == "" {
		return ErrCommentMissingProperty
	}
	return nil
}

// NewComment is the payload for creating a comment.
type NewComment struct {
	Content string `json:"content"`
}

// Validate treats an empty content the same as an absent one, matching the
// error payloads clients already depend on.
func (c NewComment) Validate() error {
	if c.Content == "" {
		return ErrNewCommentMissingProperty
	}
	return nil
}

// AddedComment is the projection returned after a comment is persisted.
type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedComment(id, content, owner string) (AddedComment, error) {
	if id == "" || content == "" || owner == "" {
		return AddedComment{}, ErrAddedCommentMissingProperty
	}
	return AddedComment{ID: id, Content: content, Owner: owner}, nil
}

// CommentDetail is the read view of a comment inside a thread detail.
type CommentDetail struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Date      string        `json:"date"`
	Content   string        `json:"content"`
	Replies   []ReplyDetail `json:"replies"`
	LikeCount int64         `json:"likeCount"`
}

// CommentDetailPayload carries the raw values a CommentDetail is built from.
// Date accepts either a time.Time or a pre-formatted ISO-8601 string.
type CommentDetailPayload struct {
	ID        string
	Username  string
	Date      any
	Content   string
	IsDeleted bool
	Replies   []ReplyDetail
	LikeCount int64
}

// NewCommentDetail builds the read view of a comment. Deleted comments keep
// their stored content but present the canonical placeholder instead.
// Replies defaults to an empty slice.
func NewCommentDetail(p CommentDetailPayload) (CommentDetail, error) {
	if p.ID == "" || p.Username == "" || p.Content == "" || dateMissing(p.Date) {
		return CommentDetail{}, ErrCommentDetailMissingProperty
	}
	date, err := normalizeDate(p.Date, ErrCommentDetailInvalidType)
	if err != nil {
		return CommentDetail{}, err
	}
	content := p.Content
	if p.IsDeleted {
		content = DeletedCommentContent
	}
	replies := p.Replies
	if replies == nil {
		replies = []ReplyDetail{}
	}
	return CommentDetail{
		ID:        p.ID,
		Username:  p.Username,
		Date:      date,
		Content:   content,
		Replies:   replies,
		LikeCount: p.LikeCount,
	}, nil
}

// CommentRepository defines the contract for comment and like persistence.
type CommentRepository interface {
	AddComment(ctx context.Context, payload NewComment, threadID, owner string) (AddedComment, error)

	// VerifyCommentExists returns ErrCommentNotFound when no live (not
	// soft-deleted) comment has the id.
	VerifyCommentExists(ctx context.Context, commentID string) error

	// VerifyCommentOwner returns ErrCommentForbidden when the live comment
	// isn't owned by owner.
	VerifyCommentOwner(ctx context.Context, commentID, owner string) error

	// VerifyCommentExistsInThread returns ErrCommentNotInThread when the
	// live comment doesn't belong to the thread.
	VerifyCommentExistsInThread(ctx context.Context, commentID, threadID string) error

	// DeleteComment soft-deletes: flips is_deleted, keeps the row.
	DeleteComment(ctx context.Context, commentID string) error

	// GetCommentsByThreadID returns every comment of the thread, deleted
	// ones included, ordered by date ascending.
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]Comment, error)

	AddCommentLike(ctx context.Context, commentID, userID string) error
	DeleteCommentLike(ctx context.Context, commentID, userID string) error
	VerifyCommentLikeExists(ctx context.Context, commentID, userID string) (bool, error)
	GetCommentLikesCountByCommentID(ctx context.Context, commentID string) (int64, error)
}

// CommentUsecase defines the business logic contract for comment operations.
type CommentUsecase interface {
	AddComment(ctx context.Context, payload NewComment, threadID, owner string) (AddedComment, error)
	DeleteComment(ctx context.Context, threadID, commentID, owner string) error

	// ToggleCommentLike likes the comment when the user hasn't liked it
	// yet and unlikes it otherwise.
	ToggleCommentLike(ctx context.Context, threadID, commentID, userID string) error
}
