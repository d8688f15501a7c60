package dto

import "time"

// ChannelVideo 频道主页中的视频
type ChannelVideo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	VideoFile string    `json:"videoFile"`
	Thumbnail string    `json:"thumbnail"`
	Views     int64     `json:"views"`
	CreatedAt time.Time `json:"createdAt"`
}

// ChannelProfile 频道主页
type ChannelProfile struct {
	ID              string         `json:"id"`
	Username        string         `json:"username"`
	FullName        string         `json:"fullName"`
	Avatar          string         `json:"avatar"`
	CoverImage      string         `json:"coverImage"`
	SubscriberCount int64          `json:"subscriberCount"`
	Playlists       []PlaylistInfo `json:"playlists"`
	Videos          []ChannelVideo `json:"videos"`
}

// ChannelStats 创作者后台统计
type ChannelStats struct {
	Username         string `json:"username"`
	Avatar           string `json:"avatar"`
	TotalVideos      int64  `json:"totalVideos"`
	TotalViews       int64  `json:"totalViews"`
	TotalSubscribers int64  `json:"totalSubscribers"`
	TotalLikes       int64  `json:"totalLikes"`
}

// DashboardVideo 创作者后台视频列表项（含未公开视频）
type DashboardVideo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    string    `json:"duration"`
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DashboardVideoList 创作者后台视频列表
type DashboardVideoList struct {
	Videos []DashboardVideo `json:"videos"`
	Count  int              `json:"count"`
}
