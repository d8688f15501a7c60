package handler

import (
	"context"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
	upload      UploadOptions
}

func NewUserHandler(userService *service.UserService, upload UploadOptions) *UserHandler {
	return &UserHandler{userService: userService, upload: upload}
}

// Me 获取当前用户
// @Summary 获取当前用户信息
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.UserInfo}
// @Failure 401 {object} response.ErrorResponse "未登录"
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	user, err := h.userService.Me(c.Request.Context(), actorID)
	if err != nil {
		handleError(c, "Get current user", err)
		return
	}
	response.OK(c, "获取成功", user)
}

// UpdateProfile 修改个人资料
// @Summary 修改显示名称
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.UpdateProfileRequest true "个人资料"
// @Success 200 {object} response.Response{data=dto.UserInfo}
// @Router /users/me [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	user, err := h.userService.UpdateProfile(c.Request.Context(), actorID, &req)
	if err != nil {
		handleError(c, "Update profile", err)
		return
	}
	response.OK(c, "更新成功", user)
}

// UpdateAvatar 替换头像
// @Summary 替换头像
// @Tags 用户
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "头像"
// @Success 200 {object} response.Response{data=dto.UserInfo}
// @Router /users/me/avatar [patch]
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	h.replaceImage(c, "avatar", h.userService.UpdateAvatar, "头像更新成功")
}

// UpdateCoverImage 替换频道封面
// @Summary 替换频道封面
// @Tags 用户
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param coverImage formData file true "频道封面"
// @Success 200 {object} response.Response{data=dto.UserInfo}
// @Router /users/me/cover-image [patch]
func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	h.replaceImage(c, "coverImage", h.userService.UpdateCoverImage, "封面图更新成功")
}

type imageUpdater func(ctx context.Context, actorID, localPath string) (*dto.UserInfo, error)

func (h *UserHandler) replaceImage(c *gin.Context, field string, update imageUpdater, message string) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	path, err := saveUpload(c, field, imageExtensions, h.upload.MaxImageBytes, h.upload.TempDir)
	if err != nil {
		respondUploadError(c, err)
		return
	}
	defer removeTemp(path)

	user, err := update(c.Request.Context(), actorID, path)
	if err != nil {
		handleError(c, "Update "+field, err)
		return
	}
	response.OK(c, message, user)
}
