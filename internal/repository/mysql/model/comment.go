package model

import (
	"time"

	"github.com/adiwangsa/forum-api/domain"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;size:50"`
	Content   string    `gorm:"type:text;not null"`
	Owner     string    `gorm:"column:owner;size:50;not null;index"`
	ThreadID  string    `gorm:"column:thread_id;size:50;not null;index"`
	Date      time.Time `gorm:"column:date;not null"`
	IsDeleted bool      `gorm:"column:is_deleted;not null"`
}

func (Comment) TableName() string {
	return "comments"
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		Content:   m.Content,
		Owner:     m.Owner,
		ThreadID:  m.ThreadID,
		Date:      m.Date,
		IsDeleted: m.IsDeleted,
	}
}
