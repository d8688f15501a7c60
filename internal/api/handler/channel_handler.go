package handler

import (
	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type ChannelHandler struct {
	channelService *service.ChannelService
}

func NewChannelHandler(channelService *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{channelService: channelService}
}

// GetProfile 频道主页
// @Summary 频道主页
// @Description 频道信息、订阅数、播放列表和公开视频
// @Tags 频道
// @Produce json
// @Param userId path string true "频道（用户）ID"
// @Param filter query string false "视频排序: popular, latest, oldest"
// @Success 200 {object} response.Response{data=dto.ChannelProfile}
// @Failure 404 {object} response.ErrorResponse "频道不存在"
// @Router /channels/{userId} [get]
func (h *ChannelHandler) GetProfile(c *gin.Context) {
	profile, err := h.channelService.GetProfile(c.Request.Context(), c.Param("userId"), c.Query("filter"))
	if err != nil {
		handleError(c, "Get channel profile", err)
		return
	}
	response.OK(c, "获取成功", profile)
}
