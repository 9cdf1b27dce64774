package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/adiwangsa/forum-api/domain"
	"github.com/adiwangsa/forum-api/internal/repository/mysql/model"
)

type replyRepository struct {
	DB    *gorm.DB
	idGen domain.IDGenerator
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB, idGen domain.IDGenerator) *replyRepository {
	return &replyRepository{
		DB:    db,
		idGen: idGen,
	}
}

func (r *replyRepository) AddReply(ctx context.Context, payload domain.NewReply, commentID, owner string) (domain.AddedReply, error) {
	row := model.Reply{
		ID:        "reply-" + r.idGen(),
		Content:   payload.Content,
		Owner:     owner,
		CommentID: commentID,
		Date:      time.Now(),
		IsDeleted: false,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.AddedReply{}, err
	}
	return domain.NewAddedReply(row.ID, row.Content, row.Owner)
}

// VerifyReplyExists walks the full hierarchy: the reply must be live, belong
// to the comment, and the comment must belong to the thread.
func (r *replyRepository) VerifyReplyExists(ctx context.Context, replyID, commentID, threadID string) error {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Joins("JOIN comments ON comments.id = replies.comment_id").
		Where("replies.id = ? AND replies.comment_id = ? AND comments.thread_id = ? AND replies.is_deleted = ?",
			replyID, commentID, threadID, false).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrReplyNotFound
	}
	return nil
}

func (r *replyRepository) VerifyReplyAccess(ctx context.Context, replyID, owner string) error {
	var row model.Reply
	err := r.DB.WithContext(ctx).
		Select("owner").
		Where("id = ? AND is_deleted = ?", replyID, false).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrReplyNotFound
	}
	if err != nil {
		return err
	}
	if row.Owner != owner {
		return domain.ErrReplyForbidden
	}
	return nil
}

func (r *replyRepository) DeleteReplyByID(ctx context.Context, replyID string) error {
	result := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Where("id = ?", replyID).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrReplyNotFound
	}
	return nil
}

func (r *replyRepository) GetRepliesByCommentIDs(ctx context.Context, commentIDs []string) ([]domain.Reply, error) {
	if len(commentIDs) == 0 {
		return []domain.Reply{}, nil
	}

	var rows []struct {
		model.Reply
		Username string
	}
	err := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Select("replies.id, replies.content, replies.owner, replies.comment_id, replies.date, replies.is_deleted, users.username").
		Joins("JOIN users ON users.id = replies.owner").
		Where("replies.comment_id IN ?", commentIDs).
		Order("replies.date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	replies := make([]domain.Reply, len(rows))
	for i := range rows {
		replies[i] = rows[i].Reply.ToDomain()
		replies[i].Username = rows[i].Username
	}
	return replies, nil
}
