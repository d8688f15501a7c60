package service

import (
	"context"
	"strings"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/model"
)

type TweetService struct {
	tweets TweetStore
	users  UserStore
}

func NewTweetService(tweets TweetStore, users UserStore) *TweetService {
	return &TweetService{tweets: tweets, users: users}
}

func toTweetInfo(t *model.Tweet) dto.TweetInfo {
	return dto.TweetInfo{ID: t.ID, Content: t.Content, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

// Create 发布动态
func (s *TweetService) Create(ctx context.Context, actorID, content string) (*dto.TweetInfo, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentRequired
	}
	tweet := &model.Tweet{OwnerID: actorID, Content: content}
	if err := s.tweets.Create(ctx, tweet); err != nil {
		return nil, err
	}
	info := toTweetInfo(tweet)
	return &info, nil
}

// ListByUser 用户的动态，最新在前，作者信息在分组上只出现一次。
// 没有动态时返回空数组。
func (s *TweetService) ListByUser(ctx context.Context, userID string) ([]dto.TweetGroup, error) {
	if !validID(userID) {
		return nil, ErrInvalidUserID
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	tweets, err := s.tweets.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(tweets) == 0 {
		return []dto.TweetGroup{}, nil
	}

	group := dto.TweetGroup{
		OwnerID: user.ID,
		Owner:   toUserBrief(user),
		Tweets:  make([]dto.TweetInfo, 0, len(tweets)),
	}
	for i := range tweets {
		group.Tweets = append(group.Tweets, toTweetInfo(&tweets[i]))
	}
	return []dto.TweetGroup{group}, nil
}

func (s *TweetService) ownedTweet(ctx context.Context, actorID, tweetID string) (*model.Tweet, error) {
	if !validID(tweetID) {
		return nil, ErrInvalidTweetID
	}
	tweet, err := s.tweets.GetByID(ctx, tweetID)
	if err != nil {
		return nil, notFound(err, ErrTweetNotFound)
	}
	if tweet.OwnerID != actorID {
		return nil, ErrTweetNoPermission
	}
	return tweet, nil
}

// Update 修改动态，仅作者本人
func (s *TweetService) Update(ctx context.Context, actorID, tweetID, content string) (*dto.TweetInfo, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentRequired
	}
	if _, err := s.ownedTweet(ctx, actorID, tweetID); err != nil {
		return nil, err
	}
	updated, err := s.tweets.UpdateContent(ctx, tweetID, content)
	if err != nil {
		return nil, notFound(err, ErrTweetNotFound)
	}
	info := toTweetInfo(updated)
	return &info, nil
}

// Delete 删除动态，仅作者本人
func (s *TweetService) Delete(ctx context.Context, actorID, tweetID string) error {
	if _, err := s.ownedTweet(ctx, actorID, tweetID); err != nil {
		return err
	}
	return notFound(s.tweets.Delete(ctx, tweetID), ErrTweetNotFound)
}
