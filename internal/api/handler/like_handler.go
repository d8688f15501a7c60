package handler

import (
	"context"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

type likeToggler func(ctx context.Context, actorID, targetID string) (*dto.LikeToggleData, error)

func (h *LikeHandler) toggle(c *gin.Context, param string, fn likeToggler) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	data, err := fn(c.Request.Context(), actorID, c.Param(param))
	if err != nil {
		handleError(c, "Toggle like", err)
		return
	}
	message := "点赞成功"
	if data.State == dto.ToggleRemoved {
		message = "取消点赞成功"
	}
	response.OK(c, message, data)
}

// ToggleVideoLike 点赞/取消点赞视频
// @Summary 点赞/取消点赞视频
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "视频ID"
// @Success 200 {object} response.Response{data=dto.LikeToggleData}
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /likes/toggle/v/{videoId} [post]
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	h.toggle(c, "videoId", h.likeService.ToggleVideoLike)
}

// ToggleCommentLike 点赞/取消点赞评论
// @Summary 点赞/取消点赞评论
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param commentId path string true "评论ID"
// @Success 200 {object} response.Response{data=dto.LikeToggleData}
// @Router /likes/toggle/c/{commentId} [post]
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	h.toggle(c, "commentId", h.likeService.ToggleCommentLike)
}

// ToggleTweetLike 点赞/取消点赞动态
// @Summary 点赞/取消点赞动态
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param tweetId path string true "动态ID"
// @Success 200 {object} response.Response{data=dto.LikeToggleData}
// @Router /likes/toggle/t/{tweetId} [post]
func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	h.toggle(c, "tweetId", h.likeService.ToggleTweetLike)
}

// LikedVideos 我点赞过的视频
// @Summary 我点赞过的视频
// @Description likeCount 为当前用户自己对该视频的点赞数
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]dto.LikedVideo}
// @Router /likes/videos [get]
func (h *LikeHandler) LikedVideos(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	videos, err := h.likeService.GetLikedVideos(c.Request.Context(), actorID)
	if err != nil {
		handleError(c, "Get liked videos", err)
		return
	}
	response.OK(c, "获取成功", videos)
}
