package routes

import (
	"fmt"

	"staff-scheduler-backend/internal/api/handlers"
	"staff-scheduler-backend/internal/api/middleware"
	"staff-scheduler-backend/internal/auth"
	"staff-scheduler-backend/internal/config"
	"staff-scheduler-backend/internal/repository"
	"staff-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	departmentRepo := repository.NewDepartmentRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	templateRepo := repository.NewShiftTemplateRepository(db)
	scheduleDayRepo := repository.NewScheduleDayRepository(db)

	// Initialize services. The schedule service loads the persisted
	// assignment snapshot at startup.
	scheduleService, err := service.NewScheduleService(
		scheduleDayRepo,
		employeeRepo,
		departmentRepo,
		roleRepo,
		templateRepo,
		validator,
		service.NewLogNotifier(),
		cfg.HistoryMaxDepth,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize schedule service: %w", err)
	}

	departmentService := service.NewDepartmentService(departmentRepo, validator)
	roleService := service.NewRoleService(roleRepo, departmentRepo, validator)
	employeeService := service.NewEmployeeService(employeeRepo, departmentRepo, scheduleService, validator)
	templateService := service.NewShiftTemplateService(templateRepo, validator)

	// Initialize auth
	authService := auth.NewAuthService(cfg)
	authHandlers := auth.NewAuthHandlers(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	roleHandler := handlers.NewRoleHandler(roleService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	templateHandler := handlers.NewShiftTemplateHandler(templateService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandlers.Login)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandlers.Me)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		scheduleGroup := v1.Group("/schedule")
		{
			scheduleGroup.POST("/assignments", scheduleHandler.AssignShift)
			scheduleGroup.GET("/assignments", scheduleHandler.GetAssignments)
			scheduleGroup.DELETE("/assignments", scheduleHandler.DeleteAssignment)
			scheduleGroup.POST("/drag-drop", scheduleHandler.DragDrop)
			scheduleGroup.POST("/undo", scheduleHandler.Undo)
			scheduleGroup.POST("/redo", scheduleHandler.Redo)
			scheduleGroup.GET("/history", scheduleHandler.HistoryState)
			scheduleGroup.DELETE("/history", scheduleHandler.ClearHistory)
			scheduleGroup.GET("/week", scheduleHandler.WeekView)
		}

		departments := v1.Group("/departments")
		{
			departments.POST("", departmentHandler.CreateDepartment)
			departments.GET("", departmentHandler.ListDepartments)
			departments.GET("/:id", departmentHandler.GetDepartment)
			departments.PUT("/:id", departmentHandler.UpdateDepartment)
			departments.DELETE("/:id", departmentHandler.DeleteDepartment)
		}

		roles := v1.Group("/roles")
		{
			roles.POST("", roleHandler.CreateRole)
			roles.GET("", roleHandler.ListRoles)
			roles.GET("/:id", roleHandler.GetRole)
			roles.PUT("/:id", roleHandler.UpdateRole)
			roles.DELETE("/:id", roleHandler.DeleteRole)
		}

		employees := v1.Group("/employees")
		{
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("", employeeHandler.ListEmployees)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", employeeHandler.DeleteEmployee)
		}

		templates := v1.Group("/shift-templates")
		{
			templates.POST("", templateHandler.CreateShiftTemplate)
			templates.GET("", templateHandler.ListShiftTemplates)
			templates.GET("/:id", templateHandler.GetShiftTemplate)
			templates.PUT("/:id", templateHandler.UpdateShiftTemplate)
			templates.DELETE("/:id", templateHandler.DeleteShiftTemplate)
		}
	}

	return router, nil
}
