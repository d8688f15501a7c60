package handler

import (
	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats 频道统计
// @Summary 频道统计
// @Description 公开视频数、总播放量、订阅数、总点赞数
// @Tags 创作者后台
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.ChannelStats}
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	stats, err := h.dashboardService.GetStats(c.Request.Context(), actorID)
	if err != nil {
		handleError(c, "Get channel stats", err)
		return
	}
	response.OK(c, "获取成功", stats)
}

// Videos 创作者的全部视频
// @Summary 我的全部视频（含未公开）
// @Tags 创作者后台
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.DashboardVideoList}
// @Router /dashboard/videos [get]
func (h *DashboardHandler) Videos(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	list, err := h.dashboardService.GetVideos(c.Request.Context(), actorID)
	if err != nil {
		handleError(c, "Get channel videos", err)
		return
	}
	response.OK(c, "获取成功", list)
}
