package handler

import (
	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/api/middleware"
	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoService *service.VideoService
	upload       UploadOptions
}

func NewVideoHandler(videoService *service.VideoService, upload UploadOptions) *VideoHandler {
	return &VideoHandler{videoService: videoService, upload: upload}
}

// GetFeed 公开视频列表
// @Summary 视频列表
// @Description 只返回公开视频，支持关键词、作者筛选和排序
// @Tags 视频
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Param query query string false "标题或描述关键词"
// @Param sortBy query string false "排序字段: createdAt, views, title, duration"
// @Param sortType query string false "asc 或 desc" default(desc)
// @Param userId query string false "作者ID"
// @Success 200 {object} response.Response{data=dto.VideoListData}
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Router /videos [get]
func (h *VideoHandler) GetFeed(c *gin.Context) {
	var q dto.VideoFeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}
	data, err := h.videoService.GetFeed(c.Request.Context(), &q)
	if err != nil {
		handleError(c, "Get video feed", err)
		return
	}
	response.OK(c, "获取成功", data)
}

// Publish 发布视频
// @Summary 发布视频
// @Description 上传视频文件和封面，探测时长后创建公开视频
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "标题"
// @Param description formData string true "描述"
// @Param videoFile formData file true "视频文件"
// @Param thumbnail formData file true "封面"
// @Success 201 {object} response.Response{data=dto.VideoInfo}
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Router /videos [post]
func (h *VideoHandler) Publish(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.VideoPublishRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err)
		return
	}

	videoPath, err := saveUpload(c, "videoFile", videoExtensions, h.upload.MaxVideoBytes, h.upload.TempDir)
	if err != nil {
		respondUploadError(c, err)
		return
	}
	defer removeTemp(videoPath)

	thumbPath, err := saveUpload(c, "thumbnail", imageExtensions, h.upload.MaxImageBytes, h.upload.TempDir)
	if err != nil {
		respondUploadError(c, err)
		return
	}
	defer removeTemp(thumbPath)

	info, err := h.videoService.Publish(c.Request.Context(), actorID, &service.PublishInput{
		Title:         req.Title,
		Description:   req.Description,
		VideoPath:     videoPath,
		ThumbnailPath: thumbPath,
	})
	if err != nil {
		handleError(c, "Publish video", err)
		return
	}
	response.Created(c, "发布成功", info)
}

// GetByID 视频详情
// @Summary 视频详情
// @Description 播放数 +1；未公开的视频只有作者本人可见
// @Tags 视频
// @Produce json
// @Param videoId path string true "视频ID"
// @Success 200 {object} response.Response{data=dto.VideoInfo}
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{videoId} [get]
func (h *VideoHandler) GetByID(c *gin.Context) {
	actorID, _ := middleware.GetCurrentUserID(c)
	info, err := h.videoService.GetByID(c.Request.Context(), actorID, c.Param("videoId"))
	if err != nil {
		handleError(c, "Get video", err)
		return
	}
	response.OK(c, "获取成功", info)
}

// Update 修改视频
// @Summary 修改视频
// @Description 标题和描述必填，可选替换封面
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "视频ID"
// @Param title formData string true "标题"
// @Param description formData string true "描述"
// @Param thumbnail formData file false "新封面"
// @Success 200 {object} response.Response{data=dto.VideoInfo}
// @Failure 403 {object} response.ErrorResponse "无权限"
// @Router /videos/{videoId} [patch]
func (h *VideoHandler) Update(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.VideoUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err)
		return
	}

	thumbPath, err := saveUpload(c, "thumbnail", imageExtensions, h.upload.MaxImageBytes, h.upload.TempDir)
	if err != nil {
		respondUploadError(c, err)
		return
	}
	defer removeTemp(thumbPath)

	info, err := h.videoService.Update(c.Request.Context(), actorID, c.Param("videoId"), &service.UpdateInput{
		Title:         req.Title,
		Description:   req.Description,
		ThumbnailPath: thumbPath,
	})
	if err != nil {
		handleError(c, "Update video", err)
		return
	}
	response.OK(c, "更新成功", info)
}

// Delete 删除视频
// @Summary 删除视频
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "视频ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.ErrorResponse "无权限"
// @Router /videos/{videoId} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.videoService.Delete(c.Request.Context(), actorID, c.Param("videoId")); err != nil {
		handleError(c, "Delete video", err)
		return
	}
	response.OK(c, "删除成功", gin.H{})
}

// TogglePublish 切换公开状态
// @Summary 切换视频公开状态
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "视频ID"
// @Success 200 {object} response.Response{data=dto.VideoInfo}
// @Router /videos/toggle/publish/{videoId} [patch]
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	info, err := h.videoService.TogglePublish(c.Request.Context(), actorID, c.Param("videoId"))
	if err != nil {
		handleError(c, "Toggle publish", err)
		return
	}
	response.OK(c, "发布状态已切换", info)
}
