package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/adiwangsa/forum-api/domain"
	"github.com/adiwangsa/forum-api/internal/repository/mysql/model"
)

type threadRepository struct {
	DB    *gorm.DB
	idGen domain.IDGenerator
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

func NewThreadRepository(db *gorm.DB, idGen domain.IDGenerator) *threadRepository {
	return &threadRepository{
		DB:    db,
		idGen: idGen,
	}
}

func (r *threadRepository) AddThread(ctx context.Context, payload domain.NewThread, ownerID string) (domain.AddedThread, error) {
	row := model.Thread{
		ID:    "thread-" + r.idGen(),
		Title: payload.Title,
		Body:  payload.Body,
		Owner: ownerID,
		Date:  time.Now(),
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		// owner FK violation means the authenticated user id is stale
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.AddedThread{}, domain.ErrBadParamInput
		}
		return domain.AddedThread{}, err
	}
	return domain.NewAddedThread(row.ID, row.Title, row.Owner)
}

func (r *threadRepository) VerifyThreadExists(ctx context.Context, threadID string) error {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Where("id = ?", threadID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrThreadNotFound
	}
	return nil
}

func (r *threadRepository) GetThreadByID(ctx context.Context, threadID string) (domain.Thread, error) {
	var row struct {
		model.Thread
		Username string
	}
	err := r.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Select("threads.id, threads.title, threads.body, threads.owner, threads.date, users.username").
		Joins("JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", threadID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Thread{}, domain.ErrThreadNotFound
	}
	if err != nil {
		return domain.Thread{}, err
	}

	thread := row.Thread.ToDomain()
	thread.Username = row.Username
	return thread, nil
}
