package model

// Comment 评论模型
type Comment struct {
	Base
	OwnerID string `gorm:"size:36;not null;index:idx_comments_owner_id;comment:评论用户ID" json:"ownerId"`
	VideoID string `gorm:"size:36;not null;index:idx_comments_video_id;comment:被评论视频ID" json:"videoId"`
	Content string `gorm:"type:text;not null;comment:评论内容" json:"content"`
}

func (Comment) TableName() string {
	return "comments"
}
