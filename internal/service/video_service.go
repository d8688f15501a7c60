package service

import (
	"context"
	"strings"
	"time"

	"vidtube-go/internal/api/dto"
	infraKafka "vidtube-go/internal/infra/kafka"
	"vidtube-go/internal/media"
	"vidtube-go/internal/model"
	"vidtube-go/internal/repository"
	"vidtube-go/pkg/logger"

	"go.uber.org/zap"
)

// 补偿删除使用独立的超时，不受请求取消影响
const cleanupTimeout = 30 * time.Second

// feed 查询参数名到列名的映射
var feedSortColumns = map[string]string{
	"createdAt": "created_at",
	"views":     "views",
	"title":     "title",
	"duration":  "duration_seconds",
}

type VideoService struct {
	videos VideoStore
	users  UserStore
	media  MediaHost
	prober DurationProber
	events VideoEventPublisher
	stats  StatsCache
}

func NewVideoService(videos VideoStore, users UserStore, host MediaHost, prober DurationProber, events VideoEventPublisher, stats StatsCache) *VideoService {
	return &VideoService{videos: videos, users: users, media: host, prober: prober, events: events, stats: stats}
}

// PublishInput 发布视频，文件均为服务端已保存的临时文件路径
type PublishInput struct {
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

// UpdateInput 修改视频，ThumbnailPath 为空表示不替换封面
type UpdateInput struct {
	Title         string
	Description   string
	ThumbnailPath string
}

// feedOrder sortBy 不在白名单内时按创建时间；sortType 为 asc 或 1 时升序，其余降序
func feedOrder(sortBy, sortType string) repository.VideoOrder {
	column, ok := feedSortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	asc := sortType == "asc" || sortType == "1"
	return repository.VideoOrder{Column: column, Desc: !asc}
}

// GetFeed 公开视频列表，未公开的视频在任何筛选和排序下都不会出现
func (s *VideoService) GetFeed(ctx context.Context, q *dto.VideoFeedQuery) (*dto.VideoListData, error) {
	if q.UserID != "" && !validID(q.UserID) {
		return nil, ErrInvalidUserID
	}
	page, limit := normalizePage(q.Page, q.Limit)

	videos, total, err := s.videos.ListPublished(ctx, repository.VideoFilter{
		OwnerID: q.UserID,
		Query:   strings.TrimSpace(q.Query),
		Order:   feedOrder(q.SortBy, q.SortType),
		Offset:  (page - 1) * limit,
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}

	infos, err := joinOwners(ctx, s.users, videos)
	if err != nil {
		return nil, err
	}
	return &dto.VideoListData{Videos: infos, PageMeta: dto.NewPageMeta(page, limit, total)}, nil
}

// joinOwners 批量补齐作者信息，作者已不存在的视频被丢弃
func joinOwners(ctx context.Context, users UserStore, videos []model.Video) ([]dto.VideoInfo, error) {
	ownerIDs := make([]string, 0, len(videos))
	seen := make(map[string]bool, len(videos))
	for _, v := range videos {
		if !seen[v.OwnerID] {
			seen[v.OwnerID] = true
			ownerIDs = append(ownerIDs, v.OwnerID)
		}
	}

	owners, err := users.GetByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	byID := indexUsers(owners)

	infos := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		owner, ok := byID[videos[i].OwnerID]
		if !ok {
			continue
		}
		infos = append(infos, *toVideoInfo(&videos[i], owner))
	}
	return infos, nil
}

// Publish 发布视频：探测时长、上传视频和封面、写入记录。
// 上传成功后的任何一步失败都会删除已上传的资源。
func (s *VideoService) Publish(ctx context.Context, actorID string, in *PublishInput) (*dto.VideoInfo, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	switch {
	case in.Title == "":
		return nil, ErrTitleRequired
	case in.Description == "":
		return nil, ErrDescriptionRequired
	case in.VideoPath == "":
		return nil, ErrVideoFileRequired
	case in.ThumbnailPath == "":
		return nil, ErrThumbnailRequired
	}

	owner, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	duration, err := s.prober.Probe(ctx, in.VideoPath)
	if err != nil {
		logger.Warn("Probe video duration failed", zap.String("owner_id", actorID), zap.Error(err))
		duration = media.Duration{}
	}

	videoAsset, err := s.media.Upload(ctx, in.VideoPath)
	if err != nil {
		return nil, err
	}
	thumbAsset, err := s.media.Upload(ctx, in.ThumbnailPath)
	if err != nil {
		s.cleanup(ctx, videoAsset.PublicID)
		return nil, err
	}

	video := &model.Video{
		OwnerID:     actorID,
		Title:       in.Title,
		Description: in.Description,
		VideoFile:   videoAsset.URL,
		Thumbnail:   thumbAsset.URL,
		Duration:        duration.Display,
		DurationSeconds: duration.Seconds,
		IsPublished:     true,
	}
	if err := s.videos.Create(ctx, video); err != nil {
		s.cleanup(ctx, videoAsset.PublicID, thumbAsset.PublicID)
		return nil, err
	}

	logger.Info("Video published", zap.String("video_id", video.ID), zap.String("owner_id", actorID))
	s.stats.Invalidate(ctx, actorID)
	s.emit(ctx, infraKafka.VideoCreated, video, owner.Username)

	return toVideoInfo(video, owner), nil
}

// cleanup 删除已上传的资源，失败只记录日志
func (s *VideoService) cleanup(ctx context.Context, publicIDs ...string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()
	for _, id := range publicIDs {
		if err := s.media.Delete(ctx, id); err != nil {
			logger.Error("Delete orphaned media failed", zap.String("public_id", id), zap.Error(err))
		}
	}
}

// GetByID 视频详情并增加播放数。未公开的视频只有作者本人可见，actorID 为空表示未登录。
func (s *VideoService) GetByID(ctx context.Context, actorID, videoID string) (*dto.VideoInfo, error) {
	if !validID(videoID) {
		return nil, ErrInvalidVideoID
	}
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, notFound(err, ErrVideoNotFound)
	}
	if !video.IsPublished && video.OwnerID != actorID {
		return nil, ErrVideoNotFound
	}

	if err := s.videos.IncrementViews(ctx, videoID); err != nil {
		return nil, err
	}
	video.Views++
	// totalViews 变了，作者的统计缓存作废
	s.stats.Invalidate(ctx, video.OwnerID)

	owner, err := s.users.GetByID(ctx, video.OwnerID)
	if err != nil {
		return nil, notFound(err, ErrVideoNotFound)
	}
	return toVideoInfo(video, owner), nil
}

// ownedVideo 读取视频并校验归属
func (s *VideoService) ownedVideo(ctx context.Context, actorID, videoID string) (*model.Video, error) {
	if !validID(videoID) {
		return nil, ErrInvalidVideoID
	}
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, notFound(err, ErrVideoNotFound)
	}
	if video.OwnerID != actorID {
		return nil, ErrVideoNoPermission
	}
	return video, nil
}

// Update 修改标题和描述，可选替换封面；旧封面在记录更新成功后删除
func (s *VideoService) Update(ctx context.Context, actorID, videoID string, in *UpdateInput) (*dto.VideoInfo, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if in.Description == "" {
		return nil, ErrDescriptionRequired
	}

	video, err := s.ownedVideo(ctx, actorID, videoID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":       in.Title,
		"description": in.Description,
	}
	var newThumb *media.Asset
	if in.ThumbnailPath != "" {
		if newThumb, err = s.media.Upload(ctx, in.ThumbnailPath); err != nil {
			return nil, err
		}
		updates["thumbnail"] = newThumb.URL
	}

	updated, err := s.videos.Update(ctx, videoID, updates)
	if err != nil {
		if newThumb != nil {
			s.cleanup(ctx, newThumb.PublicID)
		}
		return nil, notFound(err, ErrVideoNotFound)
	}
	if newThumb != nil {
		s.cleanup(ctx, media.PublicIDFromURL(video.Thumbnail))
	}

	owner, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	s.emit(ctx, infraKafka.VideoUpdated, updated, owner.Username)
	return toVideoInfo(updated, owner), nil
}

// Delete 删除视频记录，再删除托管的视频和封面。点赞与评论不级联删除。
func (s *VideoService) Delete(ctx context.Context, actorID, videoID string) error {
	video, err := s.ownedVideo(ctx, actorID, videoID)
	if err != nil {
		return err
	}
	if err := s.videos.Delete(ctx, videoID); err != nil {
		return notFound(err, ErrVideoNotFound)
	}

	s.cleanup(ctx, media.PublicIDFromURL(video.VideoFile), media.PublicIDFromURL(video.Thumbnail))
	s.stats.Invalidate(ctx, actorID)
	s.emit(ctx, infraKafka.VideoDeleted, video, "")

	logger.Info("Video deleted", zap.String("video_id", videoID), zap.String("owner_id", actorID))
	return nil
}

// TogglePublish 切换公开状态
func (s *VideoService) TogglePublish(ctx context.Context, actorID, videoID string) (*dto.VideoInfo, error) {
	video, err := s.ownedVideo(ctx, actorID, videoID)
	if err != nil {
		return nil, err
	}

	updated, err := s.videos.Update(ctx, videoID, map[string]interface{}{"is_published": !video.IsPublished})
	if err != nil {
		return nil, notFound(err, ErrVideoNotFound)
	}

	owner, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	s.stats.Invalidate(ctx, actorID)
	s.emit(ctx, infraKafka.VideoPublishToggled, updated, owner.Username)
	return toVideoInfo(updated, owner), nil
}

// emit 发送视频变更事件，失败只记录日志，不影响请求结果
func (s *VideoService) emit(ctx context.Context, typ infraKafka.VideoEventType, v *model.Video, ownerUsername string) {
	ev := &infraKafka.VideoEvent{
		Type:          typ,
		VideoID:       v.ID,
		OwnerID:       v.OwnerID,
		OwnerUsername: ownerUsername,
		Title:         v.Title,
		Description:   v.Description,
		Thumbnail:     v.Thumbnail,
		VideoFile:     v.VideoFile,
		Duration:      v.Duration,
		Views:         v.Views,
		IsPublished:   v.IsPublished,
		CreatedAt:     v.CreatedAt,
		OccurredAt:    time.Now(),
	}
	if err := s.events.PublishVideoEvent(ctx, ev); err != nil {
		logger.Error("Publish video event failed",
			zap.String("video_id", v.ID), zap.String("type", string(typ)), zap.Error(err))
	}
}
