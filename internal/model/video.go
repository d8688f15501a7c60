package model

// Video 视频模型
type Video struct {
	Base
	OwnerID     string `gorm:"size:36;not null;index:idx_videos_owner_id;comment:所属用户ID" json:"ownerId"`
	Title       string `gorm:"size:200;not null;comment:标题" json:"title"`
	Description string `gorm:"type:text;not null;comment:描述" json:"description"`
	VideoFile   string `gorm:"size:500;not null;comment:视频地址" json:"videoFile"`
	Thumbnail   string `gorm:"size:500;not null;comment:封面地址" json:"thumbnail"`
	Duration    string `gorm:"size:16;comment:时长，H:MM:SS 或 M:SS" json:"duration"`
	Views       int64  `gorm:"not null;default:0;comment:播放次数" json:"views"`
	IsPublished bool   `gorm:"not null;default:true;index:idx_videos_published;comment:是否公开" json:"isPublished"`

	// 按时长排序用这一列，Duration 只用于展示
	DurationSeconds int64 `gorm:"not null;default:0;comment:时长（秒）" json:"durationSeconds"`
}

func (Video) TableName() string {
	return "videos"
}
