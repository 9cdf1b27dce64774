package domain

import (
	"context"
	"time"
	"unicode/utf8"
)

// ThreadTitleMaxLength is the longest accepted thread title, in runes.
const ThreadTitleMaxLength = 255

// ISO8601Millis is the timestamp layout used by every detail projection.
// UTC timestamps render with a trailing Z.
const ISO8601Millis = "2006-01-02T15:04:05.000Z07:00"

// Thread is a stored discussion thread. Threads are created once and never
// mutated by the application layer.
type Thread struct {
	ID       string
	Title    string
	Body     string
	Owner    string
	Date     time.Time
	Username string // owner's username, filled by joins on read paths
}

func (t Thread) Validate() error {
	if t.ID == "" || t.Title == "" || t.Body == "" || t.Owner == "" {
		return ErrThreadMissingProperty
	}
	return nil
}

// NewThread is the payload for creating a thread.
type NewThread struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Validate checks required fields and the title length limit.
func (t NewThread) Validate() error {
	if t.Title == "" || t.Body == "" {
		return ErrNewThreadMissingProperty
	}
	if utf8.RuneCountInString(t.Title) > ThreadTitleMaxLength {
		return ErrNewThreadTitleLimit
	}
	return nil
}

// AddedThread is the projection returned after a thread is persisted.
type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThread(id, title, owner string) (AddedThread, error) {
	if id == "" || title == "" || owner == "" {
		return AddedThread{}, ErrAddedThreadMissingProperty
	}
	return AddedThread{ID: id, Title: title, Owner: owner}, nil
}

// ThreadDetail is the assembled read view of a thread with its comments.
// It is computed per request, never stored.
type ThreadDetail struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     string          `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

// ThreadDetailPayload carries the raw values a ThreadDetail is built from.
// Date accepts either a time.Time or a pre-formatted ISO-8601 string.
type ThreadDetailPayload struct {
	ID       string
	Title    string
	Body     string
	Date     any
	Username string
	Comments []CommentDetail
}

func NewThreadDetail(p ThreadDetailPayload) (ThreadDetail, error) {
	if p.ID == "" || p.Title == "" || p.Body == "" || p.Username == "" || dateMissing(p.Date) {
		return ThreadDetail{}, ErrThreadDetailMissingProperty
	}
	date, err := normalizeDate(p.Date, ErrThreadDetailInvalidType)
	if err != nil {
		return ThreadDetail{}, err
	}
	comments := p.Comments
	if comments == nil {
		comments = []CommentDetail{}
	}
	return ThreadDetail{
		ID:       p.ID,
		Title:    p.Title,
		Body:     p.Body,
		Date:     date,
		Username: p.Username,
		Comments: comments,
	}, nil
}

// ThreadRepository defines the contract for thread persistence.
type ThreadRepository interface {
	// AddThread persists a validated NewThread owned by ownerID.
	AddThread(ctx context.Context, payload NewThread, ownerID string) (AddedThread, error)

	// VerifyThreadExists returns ErrThreadNotFound when no thread has the id.
	VerifyThreadExists(ctx context.Context, threadID string) error

	// GetThreadByID returns the thread joined with its owner's username.
	// Returns ErrThreadNotFound when the thread doesn't exist.
	GetThreadByID(ctx context.Context, threadID string) (Thread, error)
}

// ThreadUsecase defines the business logic contract for thread operations.
type ThreadUsecase interface {
	AddThread(ctx context.Context, payload NewThread, ownerID string) (AddedThread, error)
	GetThreadDetail(ctx context.Context, threadID string) (ThreadDetail, error)
}

// normalizeDate renders a timestamp in the ISO-8601 form used by detail
// projections. Strings are assumed pre-formatted and pass through unchanged.
func normalizeDate(date any, typeErr error) (string, error) {
	switch d := date.(type) {
	case time.Time:
		return d.UTC().Format(ISO8601Millis), nil
	case string:
		return d, nil
	default:
		return "", typeErr
	}
}

func dateMissing(date any) bool {
	switch d := date.(type) {
	case nil:
		return true
	case string:
		return d == ""
	case time.Time:
		return d.IsZero()
	default:
		// wrong type, reported by normalizeDate
		return false
	}
}
