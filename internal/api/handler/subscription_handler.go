package handler

import (
	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Toggle 订阅/取消订阅
// @Summary 订阅/取消订阅频道
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param channelId path string true "频道ID"
// @Success 200 {object} response.Response{data=dto.SubscriptionToggleData}
// @Failure 404 {object} response.ErrorResponse "频道不存在"
// @Router /subscriptions/c/{channelId} [post]
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	data, err := h.subscriptionService.Toggle(c.Request.Context(), actorID, c.Param("channelId"))
	if err != nil {
		handleError(c, "Toggle subscription", err)
		return
	}
	message := "订阅成功"
	if data.State == dto.ToggleRemoved {
		message = "取消订阅成功"
	}
	response.OK(c, message, data)
}

// Subscribers 频道的订阅者
// @Summary 频道的订阅者
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param channelId path string true "频道ID"
// @Success 200 {object} response.Response{data=dto.SubscriberListData}
// @Router /subscriptions/u/{channelId} [get]
func (h *SubscriptionHandler) Subscribers(c *gin.Context) {
	data, err := h.subscriptionService.GetSubscribers(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		handleError(c, "Get subscribers", err)
		return
	}
	response.OK(c, "获取成功", data)
}

// Subscriptions 用户订阅的频道
// @Summary 用户订阅的频道
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param channelId path string true "订阅者ID"
// @Success 200 {object} response.Response{data=dto.SubscriptionListData}
// @Router /subscriptions/c/{channelId} [get]
func (h *SubscriptionHandler) Subscriptions(c *gin.Context) {
	data, err := h.subscriptionService.GetSubscriptions(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		handleError(c, "Get subscriptions", err)
		return
	}
	response.OK(c, "获取成功", data)
}
