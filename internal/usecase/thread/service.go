package thread

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/adiwangsa/forum-api/domain"
)

type Service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
}

var _ domain.ThreadUsecase = (*Service)(nil)

// NewService will create a new thread service object
func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository) *Service {
	return &Service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
	}
}

func (s *Service) AddThread(ctx context.Context, payload domain.NewThread, ownerID string) (domain.AddedThread, error) {
	if err := payload.Validate(); err != nil {
		return domain.AddedThread{}, err
	}
	return s.threadRepo.AddThread(ctx, payload, ownerID)
}

// GetThreadDetail assembles the full read view: thread, its comments, every
// comment's replies (one batched fetch across all comment ids) and like
// counts. Deleted comments and replies come back masked by the detail
// constructors.
func (s *Service) GetThreadDetail(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	if err := s.threadRepo.VerifyThreadExists(ctx, threadID); err != nil {
		return domain.ThreadDetail{}, err
	}

	thread, err := s.threadRepo.GetThreadByID(ctx, threadID)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments, err := s.commentRepo.GetCommentsByThreadID(ctx, threadID)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	commentDetails := make([]domain.CommentDetail, 0, len(comments))
	if len(comments) > 0 {
		commentIDs := make([]string, len(comments))
		for i := range comments {
			commentIDs[i] = comments[i].ID
		}

		replies, err := s.replyRepo.GetRepliesByCommentIDs(ctx, commentIDs)
		if err != nil {
			return domain.ThreadDetail{}, err
		}

		replyMap := make(map[string][]domain.ReplyDetail, len(comments))
		for _, reply := range replies {
			detail, err := domain.NewReplyDetail(domain.ReplyDetailPayload{
				ID:        reply.ID,
				Content:   reply.Content,
				Date:      reply.Date,
				Username:  reply.Username,
				IsDeleted: reply.IsDeleted,
			})
			if err != nil {
				return domain.ThreadDetail{}, err
			}
			replyMap[reply.CommentID] = append(replyMap[reply.CommentID], detail)
		}

		likeCounts, err := s.fetchLikeCounts(ctx, commentIDs)
		if err != nil {
			return domain.ThreadDetail{}, err
		}

		for _, comment := range comments {
			detail, err := domain.NewCommentDetail(domain.CommentDetailPayload{
				ID:        comment.ID,
				Username:  comment.Username,
				Date:      comment.Date,
				Content:   comment.Content,
				IsDeleted: comment.IsDeleted,
				Replies:   replyMap[comment.ID],
				LikeCount: likeCounts[comment.ID],
			})
			if err != nil {
				return domain.ThreadDetail{}, err
			}
			commentDetails = append(commentDetails, detail)
		}
	}

	return domain.NewThreadDetail(domain.ThreadDetailPayload{
		ID:       thread.ID,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     thread.Date,
		Username: thread.Username,
		Comments: commentDetails,
	})
}

// fetchLikeCounts aggregates per-comment like counts concurrently. Counts
// are always recomputed from the like rows, never cached. Each goroutine
// writes a distinct index, so no locking is needed.
func (s *Service) fetchLikeCounts(ctx context.Context, commentIDs []string) (map[string]int64, error) {
	g, ctx := errgroup.WithContext(ctx)
	counts := make([]int64, len(commentIDs))
	for i, id := range commentIDs {
		i, id := i, id
		g.Go(func() error {
			count, err := s.commentRepo.GetCommentLikesCountByCommentID(ctx, id)
			if err != nil {
				return err
			}
			counts[i] = count
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := make(map[string]int64, len(commentIDs))
	for i, id := range commentIDs {
		res[id] = counts[i]
	}
	return res, nil
}
