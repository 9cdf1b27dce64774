package model

import (
	"time"

	"github.com/adiwangsa/forum-api/domain"
)

type Reply struct {
	ID        string    `gorm:"primaryKey;size:50"`
	Content   string    `gorm:"type:text;not null"`
	Owner     string    `gorm:"column:owner;size:50;not null;index"`
	CommentID string    `gorm:"column:comment_id;size:50;not null;index"`
	Date      time.Time `gorm:"column:date;not null"`
	IsDeleted bool      `gorm:"column:is_deleted;not null"`
}

func (Reply) TableName() string {
	return "replies"
}

func (m *Reply) ToDomain() domain.Reply {
	return domain.Reply{
		ID:        m.ID,
		Content:   m.Content,
		Owner:     m.Owner,
		CommentID: m.CommentID,
		Date:      m.Date,
		IsDeleted: m.IsDeleted,
	}
}
