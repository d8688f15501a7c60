package dto

import "time"

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=1,max=64"`
	Password string `json:"password" binding:"required,min=6,max=255"`
}

// RegisterRequest 注册请求（multipart/form-data，头像和封面为可选文件）
type RegisterRequest struct {
	Username string `form:"username" binding:"required,min=3,max=64"`
	FullName string `form:"fullName" binding:"required,min=1,max=255"`
	Password string `form:"password" binding:"required,min=6,max=255"`
}

// UpdateProfileRequest 修改个人资料
type UpdateProfileRequest struct {
	FullName string `json:"fullName" binding:"required,min=1,max=255"`
}

// TokenData 登录成功返回的 Token 信息
type TokenData struct {
	Token     string   `json:"token"`
	TokenType string   `json:"tokenType"`
	ExpiresIn int      `json:"expiresIn"`
	User      UserInfo `json:"user"`
}

// UserInfo 用户公开信息（不含密码）
type UserInfo struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	FullName   string    `json:"fullName"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"coverImage"`
	CreatedAt  time.Time `json:"createdAt"`
}
