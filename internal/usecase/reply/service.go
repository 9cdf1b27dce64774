package reply

import (
	"context"

	"github.com/adiwangsa/forum-api/domain"
)

type Service struct {
	replyRepo   domain.ReplyRepository
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

var _ domain.ReplyUsecase = (*Service)(nil)

// NewService will create a new reply service object
func NewService(r domain.ReplyRepository, c domain.CommentRepository, t domain.ThreadRepository) *Service {
	return &Service{
		replyRepo:   r,
		commentRepo: c,
		threadRepo:  t,
	}
}

func (s *Service) AddReply(ctx context.Context, payload domain.NewReply, owner, threadID, commentID string) (domain.AddedReply, error) {
	if err := payload.Validate(); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.threadRepo.VerifyThreadExists(ctx, threadID); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.commentRepo.VerifyCommentExistsInThread(ctx, commentID, threadID); err != nil {
		return domain.AddedReply{}, err
	}
	return s.replyRepo.AddReply(ctx, payload, commentID, owner)
}

func (s *Service) DeleteReply(ctx context.Context, owner, threadID, commentID, replyID string) error {
	if err := s.threadRepo.VerifyThreadExists(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentExistsInThread(ctx, commentID, threadID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyReplyExists(ctx, replyID, commentID, threadID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyReplyAccess(ctx, replyID, owner); err != nil {
		return err
	}
	return s.replyRepo.DeleteReplyByID(ctx, replyID)
}
