package handler

import (
	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	tweetService *service.TweetService
}

func NewTweetHandler(tweetService *service.TweetService) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

// Create 发布动态
// @Summary 发布动态
// @Tags 动态
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.TweetRequest true "内容"
// @Success 201 {object} response.Response{data=dto.TweetInfo}
// @Router /tweets [post]
func (h *TweetHandler) Create(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	tweet, err := h.tweetService.Create(c.Request.Context(), actorID, req.Content)
	if err != nil {
		handleError(c, "Create tweet", err)
		return
	}
	response.Created(c, "发布成功", tweet)
}

// ListByUser 用户的动态
// @Summary 用户的动态
// @Tags 动态
// @Produce json
// @Param userId path string true "用户ID"
// @Success 200 {object} response.Response{data=[]dto.TweetGroup}
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /tweets/user/{userId} [get]
func (h *TweetHandler) ListByUser(c *gin.Context) {
	groups, err := h.tweetService.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		handleError(c, "List tweets", err)
		return
	}
	response.OK(c, "获取成功", groups)
}

// Update 修改动态
// @Summary 修改动态
// @Tags 动态
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tweetId path string true "动态ID"
// @Param body body dto.TweetRequest true "内容"
// @Success 200 {object} response.Response{data=dto.TweetInfo}
// @Router /tweets/{tweetId} [patch]
func (h *TweetHandler) Update(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	tweet, err := h.tweetService.Update(c.Request.Context(), actorID, c.Param("tweetId"), req.Content)
	if err != nil {
		handleError(c, "Update tweet", err)
		return
	}
	response.OK(c, "更新成功", tweet)
}

// Delete 删除动态
// @Summary 删除动态
// @Tags 动态
// @Produce json
// @Security BearerAuth
// @Param tweetId path string true "动态ID"
// @Success 200 {object} response.Response
// @Router /tweets/{tweetId} [delete]
func (h *TweetHandler) Delete(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.tweetService.Delete(c.Request.Context(), actorID, c.Param("tweetId")); err != nil {
		handleError(c, "Delete tweet", err)
		return
	}
	response.OK(c, "删除成功", gin.H{})
}
