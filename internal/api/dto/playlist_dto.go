package dto

import "time"

// PlaylistRequest 创建/修改播放列表
type PlaylistRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"required,min=1"`
}

// PlaylistVideo 播放列表中的视频快照
type PlaylistVideo struct {
	VideoID   string `json:"videoId"`
	VideoFile string `json:"videoFile"`
	Title     string `json:"title"`
	Channel   string `json:"channel"`
}

// PlaylistInfo 播放列表
type PlaylistInfo struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"ownerId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Videos      []PlaylistVideo `json:"videos"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// PlaylistGroup 按作者分组的播放列表
type PlaylistGroup struct {
	OwnerID   string         `json:"ownerId"`
	Owner     UserBrief      `json:"owner"`
	Playlists []PlaylistInfo `json:"playlists"`
}
