package models

import (
	"time"
)

type Article struct {
	ID                   uint          `gorm:"primaryKey" json:"id"`
	Title                string        `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Content              string        `gorm:"type:text;not null" json:"content" validate:"required"`
	Summary              string        `gorm:"size:500;not null" json:"summary" validate:"required,max=500"`
	AuthorID             uint          `gorm:"not null;index:idx_articles_author_id" json:"author_id" validate:"required"`
	Author               User          `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"author" validate:"-"`
	Status               ArticleStatus `gorm:"not null;index:idx_articles_status" json:"status" validate:"min=0,max=3"`
	ScheduledPublishDate *time.Time    `json:"scheduled_publish_date"`
	ViewCount            int           `gorm:"not null;default:0" json:"view_count" validate:"min=0"`
	CreatedAt            time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_articles_created_at" json:"created_at"`
	UpdatedAt            time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// NewArticle returns a draft article owned by authorID.
func NewArticle(authorID uint, title, content, summary string) *Article {
	return &Article{
		Title:    title,
		Content:  content,
		Summary:  summary,
		AuthorID: authorID,
		Status:   ArticleStatusDraft,
	}
}

func (a *Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}

func (a *Article) CanBePublished() bool {
	return a.Title != "" && a.Content != ""
}

// Publish moves the article to Published and bumps UpdatedAt. It does nothing
// when the article cannot be published.
func (a *Article) Publish() {
	if !a.CanBePublished() {
		return
	}
	a.Status = ArticleStatusPublished
	a.UpdatedAt = time.Now().UTC()
}
