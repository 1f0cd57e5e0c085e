package models

import "time"

type ArticleAction string

const (
	ArticleCreated ArticleAction = "created"
	ArticleUpdated ArticleAction = "updated"
	ArticleDeleted ArticleAction = "deleted"
)

type ArticleEvent struct {
	Action    ArticleAction `json:"action"`
	Article   Article       `json:"article"`
	Timestamp time.Time     `json:"timestamp"`
}
