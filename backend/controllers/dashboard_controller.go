package controllers

import (
	"smartlearn/backend/config"
	"smartlearn/backend/store"
	"smartlearn/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewDashboardController(s *store.Store, cfg *config.Config) *DashboardController {
	return &DashboardController{Store: s, Cfg: cfg}
}

// StudentDashboard godoc
// @Summary Dashboard data for the authenticated student
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /dashboard/student [get]
func (dc *DashboardController) StudentDashboard(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, dc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}
	dashboard := dc.Store.StudentDashboard(userID)
	if dashboard == nil {
		return utils.NotFound(c, "User not found")
	}
	dashboard.User = dashboard.User.Sanitized()
	return utils.Success(c, fiber.StatusOK, dashboard)
}

// FacultyDashboard godoc
// @Summary Dashboard data for the authenticated instructor
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /dashboard/faculty [get]
func (dc *DashboardController) FacultyDashboard(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, dc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}
	dashboard := dc.Store.FacultyDashboard(userID)
	if dashboard == nil {
		return utils.NotFound(c, "User not found")
	}
	dashboard.User = dashboard.User.Sanitized()
	return utils.Success(c, fiber.StatusOK, dashboard)
}

// AdminDashboard godoc
// @Summary System-wide dashboard data
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /dashboard/admin [get]
func (dc *DashboardController) AdminDashboard(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, dc.Store.AdminDashboard())
}

// SystemStats godoc
// @Summary Derived system counters
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (dc *DashboardController) SystemStats(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, dc.Store.SystemStats())
}
