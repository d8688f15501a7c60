package service

import (
	"context"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/model"
)

type SubscriptionService struct {
	subs  SubscriptionStore
	users UserStore
	stats StatsCache
}

func NewSubscriptionService(subs SubscriptionStore, users UserStore, stats StatsCache) *SubscriptionService {
	return &SubscriptionService{subs: subs, users: users, stats: stats}
}

// Toggle 订阅/取消订阅频道。允许订阅自己。
func (s *SubscriptionService) Toggle(ctx context.Context, actorID, channelID string) (*dto.SubscriptionToggleData, error) {
	if !validID(channelID) {
		return nil, ErrInvalidChannelID
	}
	if _, err := s.users.GetByID(ctx, channelID); err != nil {
		return nil, notFound(err, ErrChannelNotFound)
	}

	out, err := toggleEdge(ctx, edgeOps[model.Subscription]{
		kind: "subscription",
		find: func(ctx context.Context) (*model.Subscription, error) {
			return s.subs.Find(ctx, actorID, channelID)
		},
		id: func(sub *model.Subscription) string { return sub.ID },
		create: func(ctx context.Context) (*model.Subscription, error) {
			sub := &model.Subscription{SubscriberID: actorID, ChannelID: channelID}
			if err := s.subs.Create(ctx, sub); err != nil {
				return nil, err
			}
			return sub, nil
		},
		remove: s.subs.Delete,
	})
	if err != nil {
		return nil, err
	}

	s.stats.Invalidate(ctx, channelID)

	data := &dto.SubscriptionToggleData{State: out.State}
	if out.Edge != nil {
		data.Subscription = &dto.SubscriptionInfo{
			ID:           out.Edge.ID,
			SubscriberID: out.Edge.SubscriberID,
			ChannelID:    out.Edge.ChannelID,
			CreatedAt:    out.Edge.CreatedAt,
		}
	}
	return data, nil
}

// GetSubscribers 频道的订阅者列表
func (s *SubscriptionService) GetSubscribers(ctx context.Context, channelID string) (*dto.SubscriberListData, error) {
	if !validID(channelID) {
		return nil, ErrInvalidChannelID
	}
	channel, err := s.users.GetByID(ctx, channelID)
	if err != nil {
		return nil, notFound(err, ErrChannelNotFound)
	}

	subs, err := s.subs.ListByChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.SubscriberID)
	}
	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// 已不存在的订阅者不出现在列表里，也不计入人数
	subscribers := orderedUserBriefs(users, ids)
	return &dto.SubscriberListData{
		Channel: dto.ChannelBrief{
			ID:              channel.ID,
			Username:        channel.Username,
			Avatar:          channel.Avatar,
			SubscriberCount: int64(len(subscribers)),
		},
		Subscribers: subscribers,
	}, nil
}

// GetSubscriptions 用户订阅的频道列表
func (s *SubscriptionService) GetSubscriptions(ctx context.Context, subscriberID string) (*dto.SubscriptionListData, error) {
	if !validID(subscriberID) {
		return nil, ErrInvalidUserID
	}
	subscriber, err := s.users.GetByID(ctx, subscriberID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	subs, err := s.subs.ListBySubscriber(ctx, subscriberID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.ChannelID)
	}
	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &dto.SubscriptionListData{
		Channel:       toUserBrief(subscriber),
		Subscriptions: orderedUserBriefs(users, ids),
	}, nil
}
