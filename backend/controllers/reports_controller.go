package controllers

import (
	"smartlearn/backend/config"
	"smartlearn/backend/store"
	"smartlearn/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ReportsController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewReportsController(s *store.Store, cfg *config.Config) *ReportsController {
	return &ReportsController{Store: s, Cfg: cfg}
}

// GetCourseReport godoc
// @Summary Per-course report with one summary row per enrolled student
// @Tags reports
// @Produce json
// @Param id path int true "Course id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/report [get]
func (rc *ReportsController) GetCourseReport(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}
	report := rc.Store.CourseReport(id)
	if report == nil {
		return utils.NotFound(c, "Course not found")
	}
	return utils.Success(c, fiber.StatusOK, report)
}
