package controllers

import (
	"smartlearn/backend/config"
	"smartlearn/backend/store"
	"smartlearn/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type NotificationsController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewNotificationsController(s *store.Store, cfg *config.Config) *NotificationsController {
	return &NotificationsController{Store: s, Cfg: cfg}
}

// GetNotifications godoc
// @Summary List all notifications
// @Tags notifications
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /notifications [get]
func (nc *NotificationsController) GetNotifications(c *fiber.Ctx) error {
	if c.QueryBool("unread") {
		return utils.Success(c, fiber.StatusOK, nc.Store.UnreadNotifications())
	}
	return utils.Success(c, fiber.StatusOK, nc.Store.Notifications())
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Description Idempotent: marking an already-read notification succeeds.
// @Tags notifications
// @Produce json
// @Param id path int true "Notification id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notifications/{id}/read [put]
func (nc *NotificationsController) MarkRead(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid notification id")
	}
	n := nc.Store.MarkNotificationRead(id)
	if n == nil {
		return utils.NotFound(c, "Notification not found")
	}
	return utils.Success(c, fiber.StatusOK, n)
}
