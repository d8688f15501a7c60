package handler

import (
	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// List 视频评论列表
// @Summary 视频评论列表
// @Description 最新在前，每条附带作者
// @Tags 评论
// @Produce json
// @Param videoId path string true "视频ID"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.CommentListData}
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /comments/{videoId} [get]
func (h *CommentHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)
	data, err := h.commentService.List(c.Request.Context(), c.Param("videoId"), page, limit)
	if err != nil {
		handleError(c, "List comments", err)
		return
	}
	response.OK(c, "获取成功", data)
}

// Create 发表评论
// @Summary 发表评论
// @Tags 评论
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "视频ID"
// @Param body body dto.CommentRequest true "评论内容"
// @Success 201 {object} response.Response{data=dto.CommentInfo}
// @Router /comments/{videoId} [post]
func (h *CommentHandler) Create(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	comment, err := h.commentService.Create(c.Request.Context(), actorID, c.Param("videoId"), req.Content)
	if err != nil {
		handleError(c, "Create comment", err)
		return
	}
	response.Created(c, "评论成功", comment)
}

// Update 修改评论
// @Summary 修改评论
// @Tags 评论
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param commentId path string true "评论ID"
// @Param body body dto.CommentRequest true "评论内容"
// @Success 200 {object} response.Response{data=dto.CommentInfo}
// @Failure 403 {object} response.ErrorResponse "无权限"
// @Router /comments/c/{commentId} [patch]
func (h *CommentHandler) Update(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	comment, err := h.commentService.Update(c.Request.Context(), actorID, c.Param("commentId"), req.Content)
	if err != nil {
		handleError(c, "Update comment", err)
		return
	}
	response.OK(c, "更新成功", comment)
}

// Delete 删除评论
// @Summary 删除评论
// @Tags 评论
// @Produce json
// @Security BearerAuth
// @Param commentId path string true "评论ID"
// @Success 200 {object} response.Response
// @Router /comments/c/{commentId} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.commentService.Delete(c.Request.Context(), actorID, c.Param("commentId")); err != nil {
		handleError(c, "Delete comment", err)
		return
	}
	response.OK(c, "删除成功", gin.H{})
}
