package dto

import "time"

// LikeInfo 点赞记录
type LikeInfo struct {
	ID         string    `json:"id"`
	LikedBy    string    `json:"likedBy"`
	TargetKind string    `json:"targetKind"`
	TargetID   string    `json:"targetId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LikeToggleData 点赞切换结果，State 为 removed 时 Like 为空
type LikeToggleData struct {
	State ToggleState `json:"state"`
	Like  *LikeInfo   `json:"like"`
}

// LikedVideo 我点赞过的视频。
// LikeCount 只统计当前用户自己对该视频的点赞，不是视频的总点赞数。
type LikedVideo struct {
	VideoID     string `json:"videoId"`
	LikeCount   int64  `json:"likeCount"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}
