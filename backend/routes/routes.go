package routes

import (
	"smartlearn/backend/config"
	"smartlearn/backend/controllers"
	"smartlearn/backend/middleware"
	"smartlearn/backend/models"
	"smartlearn/backend/store"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, s *store.Store, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(s, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	studentMiddleware := middleware.RoleMiddleware(cfg, models.RoleStudent)
	facultyMiddleware := middleware.RoleMiddleware(cfg, models.RoleFaculty, models.RoleAdmin)
	adminMiddleware := middleware.RoleMiddleware(cfg, models.RoleAdmin)

	// Profile
	userController := controllers.NewUserController(s, cfg)
	app.Get("/api/profile", authMiddleware, userController.GetProfile)

	// User management (faculty/admin management screens)
	users := app.Group("/api/users", authMiddleware)
	users.Get("/", adminMiddleware, userController.ListUsers)
	users.Get("/:id", adminMiddleware, userController.GetUser)
	users.Post("/", adminMiddleware, userController.CreateUser)
	users.Put("/:id", adminMiddleware, userController.UpdateUser)
	users.Delete("/:id", adminMiddleware, userController.DeleteUser)
	users.Get("/:id/achievements", userController.GetUserAchievements)

	// Courses
	coursesController := controllers.NewCoursesController(s, cfg)
	assignmentsController := controllers.NewAssignmentsController(s, cfg)
	quizzesController := controllers.NewQuizzesController(s, cfg)
	reportsController := controllers.NewReportsController(s, cfg)

	courses := app.Group("/api/courses", authMiddleware)
	courses.Get("/", coursesController.GetCourses)
	courses.Get("/:id", coursesController.GetCourseDetails)
	courses.Post("/", facultyMiddleware, coursesController.CreateCourse)
	courses.Put("/:id", facultyMiddleware, coursesController.UpdateCourse)
	courses.Delete("/:id", facultyMiddleware, coursesController.DeleteCourse)
	courses.Post("/:id/enroll", studentMiddleware, coursesController.EnrollCourse)
	courses.Get("/:id/students", facultyMiddleware, coursesController.GetCourseStudents)
	courses.Get("/:id/assignments", assignmentsController.GetCourseAssignments)
	courses.Get("/:id/quizzes", quizzesController.GetCourseQuizzes)
	courses.Get("/:id/report", facultyMiddleware, reportsController.GetCourseReport)

	// Assignments
	assignments := app.Group("/api/assignments", authMiddleware)
	assignments.Get("/", assignmentsController.GetAssignments)
	assignments.Post("/", facultyMiddleware, assignmentsController.CreateAssignment)

	// Quizzes
	app.Get("/api/quizzes", authMiddleware, quizzesController.GetQuizzes)

	// Notifications
	notificationsController := controllers.NewNotificationsController(s, cfg)
	notifications := app.Group("/api/notifications", authMiddleware)
	notifications.Get("/", notificationsController.GetNotifications)
	notifications.Put("/:id/read", notificationsController.MarkRead)

	// Dashboards and stats
	dashboardController := controllers.NewDashboardController(s, cfg)
	app.Get("/api/dashboard/student", studentMiddleware, dashboardController.StudentDashboard)
	app.Get("/api/dashboard/faculty", facultyMiddleware, dashboardController.FacultyDashboard)
	app.Get("/api/dashboard/admin", adminMiddleware, dashboardController.AdminDashboard)
	app.Get("/api/stats", adminMiddleware, dashboardController.SystemStats)
}
