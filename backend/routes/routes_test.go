package routes

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"smartlearn/backend/config"
	"smartlearn/backend/models"
	"smartlearn/backend/store"
	"smartlearn/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newTestApp() (*fiber.App, *store.Store, *config.Config) {
	cfg := &config.Config{
		DataFile:   "unused",
		JWTSecret:  "testsecret",
		TokenTTL:   time.Hour,
		ServerPort: "8080",
	}

	s := store.New(&models.Database{
		Users: []models.User{
			{ID: 1, Name: "Ann", Email: "ann@x.com", Password: "pw1", Role: models.RoleStudent, EnrolledCourses: []int{1}},
			{ID: 2, Name: "Frank", Email: "frank@x.com", Password: "pw2", Role: models.RoleFaculty},
			{ID: 3, Name: "Ada", Email: "ada@x.com", Password: "pw3", Role: models.RoleAdmin},
		},
		Courses: []models.Course{
			{ID: 1, Name: "Algebra", InstructorID: 2, Instructor: "Frank", Students: 1},
			{ID: 2, Name: "Biology", InstructorID: 2, Instructor: "Frank", Students: 0},
		},
		Notifications: []models.Notification{
			{ID: 1, Message: "Welcome", Type: "system"},
		},
	})

	app := fiber.New()
	SetupRoutes(app, s, cfg)
	return app, s, cfg
}

func tokenFor(t *testing.T, cfg *config.Config, userID int, role string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(userID, role, cfg)
	assert.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req)
	assert.NoError(t, err)

	var result map[string]any
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func TestLogin(t *testing.T) {
	app, _, _ := newTestApp()

	// Email matching is case-insensitive.
	status, result := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "ANN@X.COM",
		"password": "pw1",
	})
	assert.Equal(t, fiber.StatusOK, status)
	data := result["data"].(map[string]any)
	assert.NotEmpty(t, data["token"])

	user := data["user"].(map[string]any)
	assert.Equal(t, "Ann", user["name"])
	assert.Nil(t, user["password"])
	assert.NotEmpty(t, user["lastLogin"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _, _ := newTestApp()

	status, _ := doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "ann@x.com",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = doJSON(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":    "ghost@x.com",
		"password": "pw1",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestRegisterCreatesStudent(t *testing.T) {
	app, s, _ := newTestApp()

	status, result := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"name":     "New Kid",
		"email":    "new@x.com",
		"password": "secret",
	})
	assert.Equal(t, fiber.StatusCreated, status)

	data := result["data"].(map[string]any)
	user := data["user"].(map[string]any)
	assert.Equal(t, float64(4), user["id"]) // next id after the seeded max of 3
	assert.Equal(t, models.RoleStudent, user["role"])
	assert.NotNil(t, s.UserByEmail("new@x.com"))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _, _ := newTestApp()

	status, _ := doJSON(t, app, "GET", "/api/courses", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = doJSON(t, app, "GET", "/api/profile", "garbage", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestRoleGate(t *testing.T) {
	app, _, cfg := newTestApp()
	student := tokenFor(t, cfg, 1, models.RoleStudent)
	admin := tokenFor(t, cfg, 3, models.RoleAdmin)

	// A student may not read the admin dashboard or manage users.
	status, _ := doJSON(t, app, "GET", "/api/dashboard/admin", student, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
	status, _ = doJSON(t, app, "POST", "/api/users", student, map[string]string{
		"name": "X", "email": "x@x.com", "password": "xxxx", "role": "admin",
	})
	assert.Equal(t, fiber.StatusForbidden, status)

	// An admin may not use the student enroll flow.
	status, _ = doJSON(t, app, "POST", "/api/courses/2/enroll", admin, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = doJSON(t, app, "GET", "/api/dashboard/admin", admin, nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestGetUserIsAdminOnly(t *testing.T) {
	app, _, cfg := newTestApp()
	student := tokenFor(t, cfg, 1, models.RoleStudent)
	faculty := tokenFor(t, cfg, 2, models.RoleFaculty)
	admin := tokenFor(t, cfg, 3, models.RoleAdmin)

	// Only admins may read arbitrary user records by id.
	status, _ := doJSON(t, app, "GET", "/api/users/2", student, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
	status, _ = doJSON(t, app, "GET", "/api/users/2", faculty, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, result := doJSON(t, app, "GET", "/api/users/2", admin, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Frank", result["data"].(map[string]any)["name"])

	// Achievements stay readable by any authenticated user.
	status, _ = doJSON(t, app, "GET", "/api/users/2/achievements", student, nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestUpdateUserRejectsMistypedFields(t *testing.T) {
	app, s, cfg := newTestApp()
	admin := tokenFor(t, cfg, 3, models.RoleAdmin)

	status, _ := doJSON(t, app, "PUT", "/api/users/1", admin, map[string]any{
		"name": "Mallory",
		"xp":   "not-a-number",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	// The record was not half-applied.
	assert.Equal(t, "Ann", s.UserByID(1).Name)
	assert.Equal(t, 0, s.UserByID(1).XP)
}

func TestGetProfile(t *testing.T) {
	app, _, cfg := newTestApp()
	token := tokenFor(t, cfg, 1, models.RoleStudent)

	status, result := doJSON(t, app, "GET", "/api/profile", token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	data := result["data"].(map[string]any)
	assert.Equal(t, "Ann", data["name"])
	assert.Nil(t, data["password"])
}

func TestStudentDashboardEndpoint(t *testing.T) {
	app, _, cfg := newTestApp()
	token := tokenFor(t, cfg, 1, models.RoleStudent)

	status, result := doJSON(t, app, "GET", "/api/dashboard/student", token, nil)
	assert.Equal(t, fiber.StatusOK, status)

	data := result["data"].(map[string]any)
	enrolled := data["enrolledCourses"].([]any)
	assert.Len(t, enrolled, 1)
	assert.Equal(t, "Algebra", enrolled[0].(map[string]any)["name"])
}

func TestEnrollFlow(t *testing.T) {
	app, s, cfg := newTestApp()
	token := tokenFor(t, cfg, 1, models.RoleStudent)

	status, result := doJSON(t, app, "POST", "/api/courses/2/enroll", token, nil)
	assert.Equal(t, fiber.StatusOK, status)

	data := result["data"].(map[string]any)
	assert.ElementsMatch(t, []any{float64(1), float64(2)}, data["enrolledCourses"].([]any))
	assert.Equal(t, 1, s.CourseByID(2).Students)

	status, _ = doJSON(t, app, "POST", "/api/courses/99/enroll", token, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestCreateAssignmentFlow(t *testing.T) {
	app, s, cfg := newTestApp()
	token := tokenFor(t, cfg, 2, models.RoleFaculty)

	status, result := doJSON(t, app, "POST", "/api/assignments", token, map[string]any{
		"title":    "Homework 1",
		"courseId": 1,
		"points":   50,
	})
	assert.Equal(t, fiber.StatusCreated, status)
	data := result["data"].(map[string]any)
	assert.Equal(t, "pending", data["status"])

	// The announcement notification was appended.
	notifications := s.Notifications()
	assert.Len(t, notifications, 2)
	assert.Contains(t, notifications[1].Message, "Algebra")
	assert.Contains(t, notifications[1].Message, "Homework 1")
}

func TestCreateAssignmentUnknownCourse(t *testing.T) {
	app, s, cfg := newTestApp()
	token := tokenFor(t, cfg, 2, models.RoleFaculty)

	status, result := doJSON(t, app, "POST", "/api/assignments", token, map[string]any{
		"title":    "Orphan",
		"courseId": 99,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Course not found", result["message"])

	// Atomic: nothing was appended.
	assert.Empty(t, s.Assignments())
	assert.Len(t, s.Notifications(), 1)
}

func TestCreateAssignmentValidation(t *testing.T) {
	app, _, cfg := newTestApp()
	token := tokenFor(t, cfg, 2, models.RoleFaculty)

	status, _ := doJSON(t, app, "POST", "/api/assignments", token, map[string]any{
		"description": "missing title and course",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestMarkNotificationRead(t *testing.T) {
	app, _, cfg := newTestApp()
	token := tokenFor(t, cfg, 1, models.RoleStudent)

	status, result := doJSON(t, app, "PUT", "/api/notifications/1/read", token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, result["data"].(map[string]any)["read"])

	// Second call succeeds and changes nothing.
	status, result = doJSON(t, app, "PUT", "/api/notifications/1/read", token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, result["data"].(map[string]any)["read"])

	status, _ = doJSON(t, app, "PUT", "/api/notifications/99/read", token, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestCourseCRUD(t *testing.T) {
	app, _, cfg := newTestApp()
	faculty := tokenFor(t, cfg, 2, models.RoleFaculty)

	status, result := doJSON(t, app, "POST", "/api/courses", faculty, map[string]any{
		"name":  "Statistics",
		"level": "beginner",
	})
	assert.Equal(t, fiber.StatusCreated, status)
	created := result["data"].(map[string]any)
	assert.Equal(t, float64(3), created["id"])
	assert.Equal(t, "Frank", created["instructor"])

	status, result = doJSON(t, app, "PUT", "/api/courses/3", faculty, map[string]any{
		"description": "Probability and inference",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Probability and inference", result["data"].(map[string]any)["description"])

	status, _ = doJSON(t, app, "DELETE", "/api/courses/3", faculty, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doJSON(t, app, "GET", "/api/courses/3", faculty, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}
