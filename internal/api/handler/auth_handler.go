package handler

import (
	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
	upload      UploadOptions
}

func NewAuthHandler(authService *service.AuthService, upload UploadOptions) *AuthHandler {
	return &AuthHandler{authService: authService, upload: upload}
}

// Register 用户注册
// @Summary 用户注册
// @Description 用户名会转为小写，头像和封面可选
// @Tags 用户
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "用户名"
// @Param fullName formData string true "显示名称"
// @Param password formData string true "密码"
// @Param avatar formData file false "头像"
// @Param coverImage formData file false "频道封面"
// @Success 201 {object} response.Response{data=dto.UserInfo} "注册成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 409 {object} response.ErrorResponse "用户名已存在"
// @Router /users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err)
		return
	}

	avatar, err := saveUpload(c, "avatar", imageExtensions, h.upload.MaxImageBytes, h.upload.TempDir)
	if err != nil {
		respondUploadError(c, err)
		return
	}
	defer removeTemp(avatar)

	cover, err := saveUpload(c, "coverImage", imageExtensions, h.upload.MaxImageBytes, h.upload.TempDir)
	if err != nil {
		respondUploadError(c, err)
		return
	}
	defer removeTemp(cover)

	user, err := h.authService.Register(c.Request.Context(), &service.RegisterInput{
		Username:   req.Username,
		FullName:   req.FullName,
		Password:   req.Password,
		AvatarPath: avatar,
		CoverPath:  cover,
	})
	if err != nil {
		handleError(c, "Register", err)
		return
	}

	response.Created(c, "注册成功", user)
}

// Login 用户登录
// @Summary 用户登录
// @Tags 用户
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "登录信息"
// @Success 200 {object} response.Response{data=dto.TokenData} "登录成功"
// @Failure 401 {object} response.ErrorResponse "用户名或密码错误"
// @Router /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	data, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		handleError(c, "Login", err)
		return
	}

	response.OK(c, "登录成功", data)
}
