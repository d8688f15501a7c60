package dto

import "time"

// CommentRequest 发表/修改评论
type CommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

// CommentInfo 评论信息，嵌入作者
type CommentInfo struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"videoId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Owner     UserBrief `json:"owner"`
}

// CommentListData 评论列表
type CommentListData struct {
	Comments []CommentInfo `json:"comments"`
	PageMeta
}
