package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeKind 点赞目标类型
type LikeKind string

const (
	LikeKindVideo   LikeKind = "video"
	LikeKindComment LikeKind = "comment"
	LikeKindTweet   LikeKind = "tweet"
)

// LikeTarget 点赞目标，Kind 与 ID 一起唯一确定一个被点赞对象
type LikeTarget struct {
	Kind LikeKind `gorm:"column:target_kind;size:16;not null;uniqueIndex:uq_likes_owner_target,priority:2;index:idx_likes_target,priority:1" json:"kind"`
	ID   string   `gorm:"column:target_id;size:36;not null;uniqueIndex:uq_likes_owner_target,priority:3;index:idx_likes_target,priority:2" json:"id"`
}

func VideoTarget(videoID string) LikeTarget {
	return LikeTarget{Kind: LikeKindVideo, ID: videoID}
}

func CommentTarget(commentID string) LikeTarget {
	return LikeTarget{Kind: LikeKindComment, ID: commentID}
}

func TweetTarget(tweetID string) LikeTarget {
	return LikeTarget{Kind: LikeKindTweet, ID: tweetID}
}

// Like 点赞记录，(liked_by, target_kind, target_id) 唯一
type Like struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	LikedBy   string     `gorm:"size:36;not null;uniqueIndex:uq_likes_owner_target,priority:1;comment:点赞用户ID" json:"likedBy"`
	Target    LikeTarget `gorm:"embedded" json:"target"`
	CreatedAt time.Time  `gorm:"autoCreateTime;comment:点赞时间" json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}

func (l *Like) BeforeCreate(_ *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
