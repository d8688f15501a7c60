package dto

import "time"

// SubscriptionInfo 订阅记录
type SubscriptionInfo struct {
	ID           string    `json:"id"`
	SubscriberID string    `json:"subscriberId"`
	ChannelID    string    `json:"channelId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SubscriptionToggleData 订阅切换结果
type SubscriptionToggleData struct {
	State        ToggleState       `json:"state"`
	Subscription *SubscriptionInfo `json:"subscription"`
}

// ChannelBrief 带订阅数的频道简要信息
type ChannelBrief struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Avatar          string `json:"avatar"`
	SubscriberCount int64  `json:"subscriberCount"`
}

// SubscriberListData 频道的订阅者列表
type SubscriberListData struct {
	Channel     ChannelBrief `json:"channel"`
	Subscribers []UserBrief  `json:"subscribers"`
}

// SubscriptionListData 用户订阅的频道列表
type SubscriptionListData struct {
	Channel       UserBrief   `json:"channel"`
	Subscriptions []UserBrief `json:"subscriptions"`
}
