package controllers

import (
	"smartlearn/backend/config"
	"smartlearn/backend/models"
	"smartlearn/backend/store"
	"smartlearn/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CoursesController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewCoursesController(s *store.Store, cfg *config.Config) *CoursesController {
	return &CoursesController{Store: s, Cfg: cfg}
}

type CreateCourseRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Level       string  `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Duration    string  `json:"duration"`
	NextClass   string  `json:"nextClass"`
	Progress    float64 `json:"progress" validate:"gte=0,lte=100"`
}

// GetCourses godoc
// @Summary List all courses
// @Tags courses
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /courses [get]
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, cc.Store.Courses())
}

// GetCourseDetails godoc
// @Summary Get one course by id
// @Tags courses
// @Produce json
// @Param id path int true "Course id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id} [get]
func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}
	course := cc.Store.CourseByID(id)
	if course == nil {
		return utils.NotFound(c, "Course not found")
	}
	return utils.Success(c, fiber.StatusOK, course)
}

// CreateCourse godoc
// @Summary Create a course owned by the authenticated instructor
// @Tags courses
// @Accept json
// @Produce json
// @Param request body CreateCourseRequest true "Course data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses [post]
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	claims, err := utils.ExtractClaims(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input CreateCourseRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(c, validationErrors(err))
	}

	instructor := cc.Store.UserByID(claims.UserID)
	if instructor == nil {
		return utils.NotFound(c, "User not found")
	}

	course := cc.Store.CreateCourse(models.Course{
		Name:         input.Name,
		Description:  input.Description,
		Level:        input.Level,
		Duration:     input.Duration,
		NextClass:    input.NextClass,
		Progress:     input.Progress,
		Instructor:   instructor.Name,
		InstructorID: instructor.ID,
	})
	return utils.Created(c, course)
}

// UpdateCourse godoc
// @Summary Merge partial fields into a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course id"
// @Param request body map[string]interface{} true "Partial course fields"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id} [put]
func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}

	var updates map[string]any
	if err := c.BodyParser(&updates); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	delete(updates, "id")

	course, err := cc.Store.UpdateCourse(id, updates)
	if err != nil {
		return utils.BadRequest(c, "Cannot apply update")
	}
	if course == nil {
		return utils.NotFound(c, "Course not found")
	}
	return utils.Success(c, fiber.StatusOK, course)
}

// DeleteCourse godoc
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param id path int true "Course id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id} [delete]
func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}
	course := cc.Store.DeleteCourse(id)
	if course == nil {
		return utils.NotFound(c, "Course not found")
	}
	return utils.Success(c, fiber.StatusOK, course)
}

// EnrollCourse godoc
// @Summary Enroll the authenticated student in a course
// @Tags courses
// @Produce json
// @Param id path int true "Course id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/enroll [post]
func (cc *CoursesController) EnrollCourse(c *fiber.Ctx) error {
	claims, err := utils.ExtractClaims(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}
	id, err := paramID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}

	user := cc.Store.EnrollUser(claims.UserID, id)
	if user == nil {
		return utils.NotFound(c, "Course not found")
	}
	return utils.Success(c, fiber.StatusOK, user.Sanitized())
}

// GetCourseStudents godoc
// @Summary List the students enrolled in a course
// @Tags courses
// @Produce json
// @Param id path int true "Course id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/{id}/students [get]
func (cc *CoursesController) GetCourseStudents(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}
	if cc.Store.CourseByID(id) == nil {
		return utils.NotFound(c, "Course not found")
	}
	return utils.Success(c, fiber.StatusOK, cc.Store.CourseStudents(id))
}
