package dto

import "time"

// VideoPublishRequest 发布视频请求（multipart/form-data，另含 videoFile 与 thumbnail 文件）
type VideoPublishRequest struct {
	Title       string `form:"title" binding:"required,min=1,max=200"`
	Description string `form:"description" binding:"required,min=1"`
}

// VideoUpdateRequest 更新视频请求（multipart/form-data，thumbnail 文件可选）
type VideoUpdateRequest struct {
	Title       string `form:"title" binding:"required,min=1,max=200"`
	Description string `form:"description" binding:"required,min=1"`
}

// VideoFeedQuery 视频列表查询参数
type VideoFeedQuery struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Query    string `form:"query"`
	SortBy   string `form:"sortBy"`
	SortType string `form:"sortType"`
	UserID   string `form:"userId"`
}

// VideoInfo 视频详情
type VideoInfo struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	VideoFile   string      `json:"videoFile"`
	Thumbnail   string      `json:"thumbnail"`
	Duration    string      `json:"duration"`
	Views       int64       `json:"views"`
	IsPublished bool        `json:"isPublished"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Owner       *OwnerBrief `json:"owner,omitempty"`
}

// VideoListData 视频列表响应数据
type VideoListData struct {
	Videos []VideoInfo `json:"videos"`
	PageMeta
}
