package service

import (
	"context"
	"strings"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/media"
	"vidtube-go/pkg/logger"

	"go.uber.org/zap"
)

type UserService struct {
	users UserStore
	media MediaHost
}

func NewUserService(users UserStore, host MediaHost) *UserService {
	return &UserService{users: users, media: host}
}

// Me 当前登录用户
func (s *UserService) Me(ctx context.Context, actorID string) (*dto.UserInfo, error) {
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return toUserInfo(user), nil
}

// UpdateProfile 修改显示名称
func (s *UserService) UpdateProfile(ctx context.Context, actorID string, req *dto.UpdateProfileRequest) (*dto.UserInfo, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, invalidInput("昵称不能为空")
	}
	user, err := s.users.Update(ctx, actorID, map[string]interface{}{"full_name": fullName})
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return toUserInfo(user), nil
}

// UpdateAvatar 替换头像
func (s *UserService) UpdateAvatar(ctx context.Context, actorID, localPath string) (*dto.UserInfo, error) {
	return s.replaceImage(ctx, actorID, localPath, "avatar")
}

// UpdateCoverImage 替换频道封面
func (s *UserService) UpdateCoverImage(ctx context.Context, actorID, localPath string) (*dto.UserInfo, error) {
	return s.replaceImage(ctx, actorID, localPath, "cover_image")
}

// replaceImage 先上传新图再更新记录，成功后删除旧图；更新失败时删除新图
func (s *UserService) replaceImage(ctx context.Context, actorID, localPath, column string) (*dto.UserInfo, error) {
	if localPath == "" {
		return nil, ErrImageRequired
	}
	current, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	asset, err := s.media.Upload(ctx, localPath)
	if err != nil {
		return nil, err
	}

	updated, err := s.users.Update(ctx, actorID, map[string]interface{}{column: asset.URL})
	if err != nil {
		s.deleteAsset(ctx, asset.PublicID)
		return nil, notFound(err, ErrUserNotFound)
	}

	old := current.Avatar
	if column == "cover_image" {
		old = current.CoverImage
	}
	if old != "" {
		s.deleteAsset(ctx, media.PublicIDFromURL(old))
	}
	return toUserInfo(updated), nil
}

func (s *UserService) deleteAsset(ctx context.Context, publicID string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()
	if err := s.media.Delete(ctx, publicID); err != nil {
		logger.Error("Delete media failed", zap.String("public_id", publicID), zap.Error(err))
	}
}
