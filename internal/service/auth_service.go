package service

import (
	"context"
	"regexp"
	"strings"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/model"
	"vidtube-go/pkg/logger"
	"vidtube-go/pkg/utils"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_.]{3,64}$`)

type AuthService struct {
	users  UserStore
	media  MediaHost
	tokens TokenIssuer
}

func NewAuthService(users UserStore, host MediaHost, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, media: host, tokens: tokens}
}

// RegisterInput 注册信息，头像和封面为可选的本地临时文件
type RegisterInput struct {
	Username   string
	FullName   string
	Password   string
	AvatarPath string
	CoverPath  string
}

// Register 用户注册。用户名统一转为小写；写库失败时删除已上传的头像和封面。
func (s *AuthService) Register(ctx context.Context, in *RegisterInput) (*dto.UserInfo, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return nil, invalidInput("昵称不能为空")
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameExists
	}

	hashedPassword, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	var uploaded []string
	rollback := func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
		defer cancel()
		for _, id := range uploaded {
			if err := s.media.Delete(ctx, id); err != nil {
				logger.Error("Delete orphaned media failed", zap.String("public_id", id), zap.Error(err))
			}
		}
	}

	user := &model.User{Username: username, FullName: fullName, Password: hashedPassword}
	for _, f := range []struct {
		path string
		dst  *string
	}{
		{in.AvatarPath, &user.Avatar},
		{in.CoverPath, &user.CoverImage},
	} {
		if f.path == "" {
			continue
		}
		asset, err := s.media.Upload(ctx, f.path)
		if err != nil {
			rollback()
			return nil, err
		}
		uploaded = append(uploaded, asset.PublicID)
		*f.dst = asset.URL
	}

	if err := s.users.Create(ctx, user); err != nil {
		rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}

	logger.Info("User registered", zap.String("user_id", user.ID), zap.String("username", username))
	return toUserInfo(user), nil
}

// Login 用户登录，返回 token 数据
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenData, error) {
	user, err := s.users.GetByUsername(ctx, strings.ToLower(strings.TrimSpace(req.Username)))
	if err != nil {
		return nil, notFound(err, ErrInvalidCredential)
	}
	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredential
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenData{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: int(s.tokens.TTL().Seconds()),
		User:      *toUserInfo(user),
	}, nil
}
