package handler

import (
	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	playlistService *service.PlaylistService
}

func NewPlaylistHandler(playlistService *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

// Create 创建播放列表
// @Summary 创建播放列表
// @Tags 播放列表
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.PlaylistRequest true "名称和描述"
// @Success 201 {object} response.Response{data=dto.PlaylistInfo}
// @Router /playlists [post]
func (h *PlaylistHandler) Create(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	playlist, err := h.playlistService.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		handleError(c, "Create playlist", err)
		return
	}
	response.Created(c, "创建成功", playlist)
}

// GetByID 播放列表详情
// @Summary 播放列表详情
// @Tags 播放列表
// @Produce json
// @Security BearerAuth
// @Param playlistId path string true "播放列表ID"
// @Success 200 {object} response.Response{data=dto.PlaylistInfo}
// @Failure 404 {object} response.ErrorResponse "播放列表不存在"
// @Router /playlists/{playlistId} [get]
func (h *PlaylistHandler) GetByID(c *gin.Context) {
	playlist, err := h.playlistService.GetByID(c.Request.Context(), c.Param("playlistId"))
	if err != nil {
		handleError(c, "Get playlist", err)
		return
	}
	response.OK(c, "获取成功", playlist)
}

// ListByUser 用户的播放列表
// @Summary 用户的播放列表
// @Tags 播放列表
// @Produce json
// @Param userId path string true "用户ID"
// @Success 200 {object} response.Response{data=[]dto.PlaylistGroup}
// @Router /playlists/user/{userId} [get]
func (h *PlaylistHandler) ListByUser(c *gin.Context) {
	groups, err := h.playlistService.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		handleError(c, "List playlists", err)
		return
	}
	response.OK(c, "获取成功", groups)
}

// Update 修改播放列表
// @Summary 修改播放列表
// @Tags 播放列表
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param playlistId path string true "播放列表ID"
// @Param body body dto.PlaylistRequest true "名称和描述"
// @Success 200 {object} response.Response{data=dto.PlaylistInfo}
// @Router /playlists/{playlistId} [patch]
func (h *PlaylistHandler) Update(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	playlist, err := h.playlistService.Update(c.Request.Context(), actorID, c.Param("playlistId"), &req)
	if err != nil {
		handleError(c, "Update playlist", err)
		return
	}
	response.OK(c, "更新成功", playlist)
}

// Delete 删除播放列表
// @Summary 删除播放列表
// @Tags 播放列表
// @Produce json
// @Security BearerAuth
// @Param playlistId path string true "播放列表ID"
// @Success 200 {object} response.Response
// @Router /playlists/{playlistId} [delete]
func (h *PlaylistHandler) Delete(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.playlistService.Delete(c.Request.Context(), actorID, c.Param("playlistId")); err != nil {
		handleError(c, "Delete playlist", err)
		return
	}
	response.OK(c, "删除成功", gin.H{})
}

// AddVideo 加入视频
// @Summary 把视频加入播放列表
// @Description 已在列表中的视频不会重复加入
// @Tags 播放列表
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "视频ID"
// @Param playlistId path string true "播放列表ID"
// @Success 200 {object} response.Response{data=dto.PlaylistInfo}
// @Failure 403 {object} response.ErrorResponse "无权限"
// @Failure 404 {object} response.ErrorResponse "播放列表或视频不存在"
// @Router /playlists/add/{videoId}/{playlistId} [patch]
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	playlist, err := h.playlistService.AddVideo(c.Request.Context(), actorID, c.Param("videoId"), c.Param("playlistId"))
	if err != nil {
		handleError(c, "Add video to playlist", err)
		return
	}
	response.OK(c, "添加成功", playlist)
}

// RemoveVideo 移除视频
// @Summary 从播放列表移除视频
// @Tags 播放列表
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "视频ID"
// @Param playlistId path string true "播放列表ID"
// @Success 200 {object} response.Response{data=dto.PlaylistInfo}
// @Failure 400 {object} response.ErrorResponse "播放列表为空"
// @Failure 404 {object} response.ErrorResponse "视频不在播放列表中"
// @Router /playlists/remove/{videoId}/{playlistId} [patch]
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	playlist, err := h.playlistService.RemoveVideo(c.Request.Context(), actorID, c.Param("videoId"), c.Param("playlistId"))
	if err != nil {
		handleError(c, "Remove video from playlist", err)
		return
	}
	response.OK(c, "移除成功", playlist)
}
