package comment

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/adiwangsa/forum-api/domain"
)

type Service struct {
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

var _ domain.CommentUsecase = (*Service)(nil)

// NewService will create a new comment service object
func NewService(c domain.CommentRepository, t domain.ThreadRepository) *Service {
	return &Service{
		commentRepo: c,
		threadRepo:  t,
	}
}

func (s *Service) AddComment(ctx context.Context, payload domain.NewComment, threadID, owner string) (domain.AddedComment, error) {
	if err := payload.Validate(); err != nil {
		return domain.AddedComment{}, err
	}
	if err := s.threadRepo.VerifyThreadExists(ctx, threadID); err != nil {
		// any existence failure surfaces as the fixed thread-not-found
		// message, whatever the repository reported
		logrus.Warnf("add comment: thread %s lookup failed: %v", threadID, err)
		return domain.AddedComment{}, domain.ErrThreadNotFound
	}
	return s.commentRepo.AddComment(ctx, payload, threadID, owner)
}

func (s *Service) DeleteComment(ctx context.Context, threadID, commentID, owner string) error {
	if err := s.threadRepo.VerifyThreadExists(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentExists(ctx, commentID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentOwner(ctx, commentID, owner); err != nil {
		return err
	}
	return s.commentRepo.DeleteComment(ctx, commentID)
}

// ToggleCommentLike flips the like state for (commentID, userID). The
// check-then-act below is not serialized; the unique constraint on
// comment_likes is what rejects a concurrent duplicate insert.
func (s *Service) ToggleCommentLike(ctx context.Context, threadID, commentID, userID string) error {
	if err := s.threadRepo.VerifyThreadExists(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentExistsInThread(ctx, commentID, threadID); err != nil {
		return err
	}

	liked, err := s.commentRepo.VerifyCommentLikeExists(ctx, commentID, userID)
	if err != nil {
		return err
	}
	if liked {
		return s.commentRepo.DeleteCommentLike(ctx, commentID, userID)
	}
	return s.commentRepo.AddCommentLike(ctx, commentID, userID)
}
