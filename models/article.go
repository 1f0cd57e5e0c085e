package models

import (
	"time"

	"github.com/lib/pq"
)

type Article struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	Title       string         `json:"title" gorm:"uniqueIndex;not null"`
	Description string         `json:"description" gorm:"not null;default:''"`
	Body        string         `json:"body" gorm:"type:text;not null;default:''"`
	TagList     pq.StringArray `json:"tagList" gorm:"type:text[];not null;default:'{}'"`
	AuthorID    uint           `json:"authorId" gorm:"not null;index"`
	Author      *User          `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type ArticleResponse struct {
	Article *Article `json:"article"`
}

type DeleteResult struct {
	Affected int64 `json:"affected"`
}
