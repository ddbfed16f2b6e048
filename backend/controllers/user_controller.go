package controllers

import (
	"smartlearn/backend/config"
	"smartlearn/backend/models"
	"smartlearn/backend/store"
	"smartlearn/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewUserController(s *store.Store, cfg *config.Config) *UserController {
	return &UserController{Store: s, Cfg: cfg}
}

type CreateUserRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=4"`
	Role       string `json:"role" validate:"required,oneof=student faculty admin"`
	Department string `json:"department"`
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	user := uc.Store.UserByID(userID)
	if user == nil {
		return utils.NotFound(c, "User not found")
	}
	return utils.Success(c, fiber.StatusOK, user.Sanitized())
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Param role query string false "Filter by role (student|faculty|admin)"
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /users [get]
func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	role := c.Query("role")

	users := uc.Store.Users()
	out := []models.User{}
	for _, u := range users {
		if role != "" && u.Role != role {
			continue
		}
		out = append(out, u.Sanitized())
	}
	return utils.Success(c, fiber.StatusOK, out)
}

// GetUser godoc
// @Summary Get one user by id
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/{id} [get]
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}
	user := uc.Store.UserByID(id)
	if user == nil {
		return utils.NotFound(c, "User not found")
	}
	return utils.Success(c, fiber.StatusOK, user.Sanitized())
}

// CreateUser godoc
// @Summary Create a user (faculty/admin management)
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users [post]
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var input CreateUserRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(c, validationErrors(err))
	}

	level := 0
	if input.Role == models.RoleStudent {
		level = 1
	}
	user := uc.Store.CreateUser(models.User{
		Name:       input.Name,
		Email:      input.Email,
		Password:   input.Password,
		Role:       input.Role,
		Department: input.Department,
		Level:      level,
	})
	return utils.Created(c, user.Sanitized())
}

// UpdateUser godoc
// @Summary Merge partial fields into a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param request body map[string]interface{} true "Partial user fields"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/{id} [put]
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	var updates map[string]any
	if err := c.BodyParser(&updates); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	// Ids are assigned by the store and never rewritten.
	delete(updates, "id")

	user, err := uc.Store.UpdateUser(id, updates)
	if err != nil {
		return utils.BadRequest(c, "Cannot apply update")
	}
	if user == nil {
		return utils.NotFound(c, "User not found")
	}
	return utils.Success(c, fiber.StatusOK, user.Sanitized())
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/{id} [delete]
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}
	user := uc.Store.DeleteUser(id)
	if user == nil {
		return utils.NotFound(c, "User not found")
	}
	return utils.Success(c, fiber.StatusOK, user.Sanitized())
}

// GetUserAchievements godoc
// @Summary List a user's achievements
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /users/{id}/achievements [get]
func (uc *UserController) GetUserAchievements(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}
	return utils.Success(c, fiber.StatusOK, uc.Store.AchievementsByUser(id))
}
