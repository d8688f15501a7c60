package dto

import "time"

// TweetRequest 发布/修改动态
type TweetRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

// TweetInfo 动态
type TweetInfo struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TweetGroup 按作者分组的动态列表
type TweetGroup struct {
	OwnerID string      `json:"ownerId"`
	Owner   UserBrief   `json:"owner"`
	Tweets  []TweetInfo `json:"tweets"`
}
