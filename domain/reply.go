package domain

import (
	"context"
	"strings"
	"time"
)

// DeletedReplyContent is the placeholder presented instead of the stored
// content once a reply has been soft-deleted.
const DeletedReplyContent = "**balasan telah dihapus**"

// Reply is a stored reply to a comment. Same soft-delete semantics as
// Comment, scoped one level deeper.
type Reply struct {
	ID        string
	Content   string
	Owner     string
	CommentID string
	Date      time.Time
	IsDeleted bool
	Username  string // owner's username, filled by joins on read paths
}

// NewReply is the payload for creating a reply.
type NewReply struct {
	Content string `json:"content"`
}

// Validate distinguishes absent/empty content (missing property) from
// whitespace-only content (empty after trim).
func (r NewReply) Validate() error {
	if r.Content == "" {
		return ErrNewReplyMissingProperty
	}
	if strings.TrimSpace(r.Content) == "" {
		return ErrNewReplyEmptyContent
	}
	return nil
}

// AddedReply is the projection returned after a reply is persisted.
type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedReply(id, content, owner string) (AddedReply, error) {
	if id == "" || content == "" || owner == "" {
		return AddedReply{}, ErrAddedReplyMissingProperty
	}
	return AddedReply{ID: id, Content: content, Owner: owner}, nil
}

// ReplyDetail is the read view of a reply inside a comment detail.
type ReplyDetail struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

// ReplyDetailPayload carries the raw values a ReplyDetail is built from.
// Date accepts either a time.Time or a pre-formatted ISO-8601 string.
type ReplyDetailPayload struct {
	ID        string
	Content   string
	Date      any
	Username  string
	IsDeleted bool
}

// NewReplyDetail builds the read view of a reply, masking deleted content
// with the canonical placeholder.
func NewReplyDetail(p ReplyDetailPayload) (ReplyDetail, error) {
	if p.ID == "" || p.Username == "" || p.Content == "" || dateMissing(p.Date) {
		return ReplyDetail{}, ErrReplyDetailMissingProperty
	}
	date, err := normalizeDate(p.Date, ErrReplyDetailInvalidType)
	if err != nil {
		return ReplyDetail{}, err
	}
	content := p.Content
	if p.IsDeleted {
		content = DeletedReplyContent
	}
	return ReplyDetail{
		ID:       p.ID,
		Content:  content,
		Date:     date,
		Username: p.Username,
	}, nil
}

// ReplyRepository defines the contract for reply persistence.
type ReplyRepository interface {
	AddReply(ctx context.Context, payload NewReply, commentID, owner string) (AddedReply, error)

	// VerifyReplyExists checks the reply is live and reachable through the
	// given comment and thread. Returns ErrReplyNotFound otherwise.
	VerifyReplyExists(ctx context.Context, replyID, commentID, threadID string) error

	// VerifyReplyAccess returns ErrReplyNotFound when the reply is gone and
	// ErrReplyForbidden when it is owned by someone else.
	VerifyReplyAccess(ctx context.Context, replyID, owner string) error

	// DeleteReplyByID soft-deletes: flips is_deleted, keeps the row.
	DeleteReplyByID(ctx context.Context, replyID string) error

	// GetRepliesByCommentIDs returns the replies of all given comments,
	// deleted ones included, ordered by date ascending. An empty id list
	// returns an empty slice without touching storage.
	GetRepliesByCommentIDs(ctx context.Context, commentIDs []string) ([]Reply, error)
}

// ReplyUsecase defines the business logic contract for reply operations.
type ReplyUsecase interface {
	AddReply(ctx context.Context, payload NewReply, owner, threadID, commentID string) (AddedReply, error)
	DeleteReply(ctx context.Context, owner, threadID, commentID, replyID string) error
}
