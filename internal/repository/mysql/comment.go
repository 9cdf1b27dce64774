package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/adiwangsa/forum-api/domain"
	"github.com/adiwangsa/forum-api/internal/repository/mysql/model"
)

type commentRepository struct {
	DB    *gorm.DB
	idGen domain.IDGenerator
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB, idGen domain.IDGenerator) *commentRepository {
	return &commentRepository{
		DB:    db,
		idGen: idGen,
	}
}

func (r *commentRepository) AddComment(ctx context.Context, payload domain.NewComment, threadID, owner string) (domain.AddedComment, error) {
	row := model.Comment{
		ID:        "comment-" + r.idGen(),
		Content:   payload.Content,
		Owner:     owner,
		ThreadID:  threadID,
		Date:      time.Now(),
		IsDeleted: false,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.AddedComment{}, err
	}
	return domain.NewAddedComment(row.ID, row.Content, row.Owner)
}

func (r *commentRepository) VerifyCommentExists(ctx context.Context, commentID string) error {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ? AND is_deleted = ?", commentID, false).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// VerifyCommentOwner checks deletion status together with ownership in one
// query; callers verify existence first so a mismatch here is authorization,
// not absence.
func (r *commentRepository) VerifyCommentOwner(ctx context.Context, commentID, owner string) error {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ? AND owner = ? AND is_deleted = ?", commentID, owner, false).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrCommentForbidden
	}
	return nil
}

func (r *commentRepository) VerifyCommentExistsInThread(ctx context.Context, commentID, threadID string) error {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ? AND thread_id = ? AND is_deleted = ?", commentID, threadID, false).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrCommentNotInThread
	}
	return nil
}

func (r *commentRepository) DeleteComment(ctx context.Context, commentID string) error {
	result := r.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", commentID).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *commentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.Comment, error) {
	var rows []struct {
		model.Comment
		Username string
	}
	err := r.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("comments.id, comments.content, comments.owner, comments.thread_id, comments.date, comments.is_deleted, users.username").
		Joins("JOIN users ON users.id = comments.owner").
		Where("comments.thread_id = ?", threadID).
		Order("comments.date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, len(rows))
	for i := range rows {
		comments[i] = rows[i].Comment.ToDomain()
		comments[i].Username = rows[i].Username
	}
	return comments, nil
}

func (r *commentRepository) AddCommentLike(ctx context.Context, commentID, userID string) error {
	row := model.CommentLike{
		ID:        "like-" + r.idGen(),
		CommentID: commentID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	err := r.DB.WithContext(ctx).Create(&row).Error
	// the unique (comment_id, user_id) index is the backstop for
	// concurrent duplicate toggles
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrConflict
	}
	return err
}

func (r *commentRepository) DeleteCommentLike(ctx context.Context, commentID, userID string) error {
	return r.DB.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&model.CommentLike{}).Error
}

func (r *commentRepository) VerifyCommentLikeExists(ctx context.Context, commentID, userID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *commentRepository) GetCommentLikesCountByCommentID(ctx context.Context, commentID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}
