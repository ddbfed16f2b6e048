package controllers

import (
	"errors"

	"smartlearn/backend/config"
	"smartlearn/backend/models"
	"smartlearn/backend/store"
	"smartlearn/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AssignmentsController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewAssignmentsController(s *store.Store, cfg *config.Config) *AssignmentsController {
	return &AssignmentsController{Store: s, Cfg: cfg}
}

type CreateAssignmentRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	CourseID    int    `json:"courseId" validate:"required"`
	DueDate     string `json:"dueDate"`
	Points      int    `json:"points" validate:"gte=0"`
}

// GetAssignments godoc
// @Summary List all assignments
// @Tags assignments
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /assignments [get]
func (ac *AssignmentsController) GetAssignments(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, ac.Store.Assignments())
}

// GetCourseAssignments godoc
// @Summary List the assignments of one course
// @Tags assignments
// @Produce json
// @Param id path int true "Course id"
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/assignments [get]
func (ac *AssignmentsController) GetCourseAssignments(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}
	return utils.Success(c, fiber.StatusOK, ac.Store.AssignmentsByCourse(id))
}

// CreateAssignment godoc
// @Summary Create an assignment and its announcement notification
// @Description The referenced course must exist; this is the one hard failure
// @Description in the data layer and surfaces as an actionable message.
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body CreateAssignmentRequest true "Assignment data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /assignments [post]
func (ac *AssignmentsController) CreateAssignment(c *fiber.Ctx) error {
	var input CreateAssignmentRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(c, validationErrors(err))
	}

	assignment, err := ac.Store.CreateAssignment(models.Assignment{
		Title:       input.Title,
		Description: input.Description,
		CourseID:    input.CourseID,
		DueDate:     input.DueDate,
		Points:      input.Points,
		Status:      models.AssignmentPending,
	})
	if err != nil {
		if errors.Is(err, store.ErrCourseNotFound) {
			return utils.BadRequest(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not create assignment")
	}
	return utils.Created(c, assignment)
}
