package model

import (
	"time"

	"github.com/adiwangsa/forum-api/domain"
)

type Thread struct {
	ID    string    `gorm:"primaryKey;size:50"`
	Title string    `gorm:"type:varchar(255);not null"`
	Body  string    `gorm:"type:text;not null"`
	Owner string    `gorm:"column:owner;size:50;not null;index"`
	Date  time.Time `gorm:"column:date;not null"`
}

func (Thread) TableName() string {
	return "threads"
}

func (m *Thread) ToDomain() domain.Thread {
	return domain.Thread{
		ID:    m.ID,
		Title: m.Title,
		Body:  m.Body,
		Owner: m.Owner,
		Date:  m.Date,
	}
}
