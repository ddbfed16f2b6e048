package controllers

import (
	"smartlearn/backend/config"
	"smartlearn/backend/store"
	"smartlearn/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type QuizzesController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewQuizzesController(s *store.Store, cfg *config.Config) *QuizzesController {
	return &QuizzesController{Store: s, Cfg: cfg}
}

// GetQuizzes godoc
// @Summary List all quizzes
// @Tags quizzes
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /quizzes [get]
func (qc *QuizzesController) GetQuizzes(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, qc.Store.Quizzes())
}

// GetCourseQuizzes godoc
// @Summary List the quizzes of one course
// @Tags quizzes
// @Produce json
// @Param id path int true "Course id"
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/quizzes [get]
func (qc *QuizzesController) GetCourseQuizzes(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}
	return utils.Success(c, fiber.StatusOK, qc.Store.QuizzesByCourse(id))
}
