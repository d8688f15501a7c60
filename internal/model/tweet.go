package model

// Tweet 动态（短文本）模型
type Tweet struct {
	Base
	OwnerID string `gorm:"size:36;not null;index:idx_tweets_owner_id;comment:发布用户ID" json:"ownerId"`
	Content string `gorm:"type:text;not null;comment:内容" json:"content"`
}

func (Tweet) TableName() string {
	return "tweets"
}
