package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"staff-scheduler-backend/internal/config"
	"staff-scheduler-backend/internal/database"
	"staff-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type DepartmentData struct {
	Name         string `yaml:"name"`
	Abbreviation string `yaml:"abbreviation,omitempty"`
}

type RoleData struct {
	Name           string `yaml:"name"`
	Color          string `yaml:"color,omitempty"`
	DepartmentName string `yaml:"department_name,omitempty"`
}

type EmployeeData struct {
	DisplayName     string `yaml:"display_name"`
	DepartmentName  string `yaml:"department_name,omitempty"`
	Status          string `yaml:"status,omitempty"`
	IsVisible       *bool  `yaml:"is_visible,omitempty"`
	VacationBalance int    `yaml:"vacation_balance,omitempty"`
}

type ShiftTemplateData struct {
	Name            string   `yaml:"name"`
	StartTime       string   `yaml:"start_time"`
	EndTime         string   `yaml:"end_time"`
	DepartmentNames []string `yaml:"department_names,omitempty"`
	AvailableDays   []string `yaml:"available_days,omitempty"`
}

// File structures
type DepartmentsFile struct {
	Departments []DepartmentData `yaml:"departments"`
}

type RolesFile struct {
	Roles []RoleData `yaml:"roles"`
}

type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type ShiftTemplatesFile struct {
	ShiftTemplates []ShiftTemplateData `yaml:"shift_templates"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	departments, err := loadDepartments(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load departments: %w", err)
	}

	roles, err := loadRoles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load roles: %w", err)
	}

	employees, err := loadEmployees(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	templates, err := loadShiftTemplates(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load shift templates: %w", err)
	}

	// Create departments first; everything else references them by name
	deptMap := make(map[string]*models.Department)
	deptCreated := 0
	for _, deptData := range departments {
		dept, created, err := createDepartment(db, deptData)
		if err != nil {
			return fmt.Errorf("failed to create department %s: %w", deptData.Name, err)
		}
		deptMap[deptData.Name] = dept
		if created {
			deptCreated++
		}
	}
	log.Printf("Departments: %d created, %d total", deptCreated, len(departments))

	// Create roles
	roleCreated := 0
	for _, roleData := range roles {
		_, created, err := createRole(db, roleData, deptMap)
		if err != nil {
			return fmt.Errorf("failed to create role %s: %w", roleData.Name, err)
		}
		if created {
			roleCreated++
		}
	}
	log.Printf("Roles: %d created, %d total", roleCreated, len(roles))

	// Create employees
	employeeCreated := 0
	for _, employeeData := range employees {
		_, created, err := createEmployee(db, employeeData, deptMap)
		if err != nil {
			log.Printf("Warning: failed to create employee %s: %v", employeeData.DisplayName, err)
			continue // Continue with other employees
		}
		if created {
			employeeCreated++
		}
	}
	log.Printf("Employees: %d created, %d total", employeeCreated, len(employees))

	// Create shift templates
	templateCreated := 0
	for _, templateData := range templates {
		_, created, err := createShiftTemplate(db, templateData, deptMap)
		if err != nil {
			log.Printf("Warning: failed to create shift template %s: %v", templateData.Name, err)
			continue // Continue with other templates
		}
		if created {
			templateCreated++
		}
	}
	log.Printf("Shift templates: %d created, %d total", templateCreated, len(templates))

	return nil
}

func loadDepartments(dataDir string) ([]DepartmentData, error) {
	var allDepartments []DepartmentData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "departments") {
			var file DepartmentsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allDepartments = append(allDepartments, file.Departments...)
		}
		return nil
	})

	return allDepartments, err
}

func loadRoles(dataDir string) ([]RoleData, error) {
	var allRoles []RoleData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "roles") {
			var file RolesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allRoles = append(allRoles, file.Roles...)
		}
		return nil
	})

	return allRoles, err
}

func loadEmployees(dataDir string) ([]EmployeeData, error) {
	var allEmployees []EmployeeData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "employees") {
			var file EmployeesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allEmployees = append(allEmployees, file.Employees...)
		}
		return nil
	})

	return allEmployees, err
}

func loadShiftTemplates(dataDir string) ([]ShiftTemplateData, error) {
	var allTemplates []ShiftTemplateData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "shift_templates") {
			var file ShiftTemplatesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTemplates = append(allTemplates, file.ShiftTemplates...)
		}
		return nil
	})

	return allTemplates, err
}

func createDepartment(db *gorm.DB, deptData DepartmentData) (*models.Department, bool, error) {
	var dept models.Department
	if err := db.Where("name = ?", deptData.Name).First(&dept).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			dept = models.Department{
				Name:         deptData.Name,
				Abbreviation: deptData.Abbreviation,
			}

			if err := db.Create(&dept).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create department: %w", err)
			}
			return &dept, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query department: %w", err)
		}
	}

	return &dept, false, nil // created = false (existing)
}

func createRole(db *gorm.DB, roleData RoleData, deptMap map[string]*models.Department) (*models.Role, bool, error) {
	var departmentID *uuid.UUID
	if roleData.DepartmentName != "" {
		dept := deptMap[roleData.DepartmentName]
		if dept == nil {
			return nil, false, fmt.Errorf("department %s not found for role %s", roleData.DepartmentName, roleData.Name)
		}
		departmentID = &dept.ID
	}

	query := db.Where("name = ?", roleData.Name)
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}

	var role models.Role
	if err := query.First(&role).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			role = models.Role{
				Name:         roleData.Name,
				Color:        roleData.Color,
				DepartmentID: departmentID,
			}

			if err := db.Create(&role).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create role: %w", err)
			}
			return &role, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query role: %w", err)
		}
	}

	return &role, false, nil // created = false (existing)
}

func createEmployee(db *gorm.DB, employeeData EmployeeData, deptMap map[string]*models.Department) (*models.Employee, bool, error) {
	var departmentID *uuid.UUID
	if employeeData.DepartmentName != "" {
		dept := deptMap[employeeData.DepartmentName]
		if dept == nil {
			return nil, false, fmt.Errorf("department %s not found for employee %s", employeeData.DepartmentName, employeeData.DisplayName)
		}
		departmentID = &dept.ID
	}

	var employee models.Employee
	if err := db.Where("display_name = ?", employeeData.DisplayName).First(&employee).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.EmployeeStatusActive
			if employeeData.Status != "" {
				status = models.EmployeeStatus(employeeData.Status)
			}
			isVisible := true
			if employeeData.IsVisible != nil {
				isVisible = *employeeData.IsVisible
			}

			employee = models.Employee{
				DisplayName:     employeeData.DisplayName,
				DepartmentID:    departmentID,
				Status:          status,
				IsVisible:       isVisible,
				VacationBalance: employeeData.VacationBalance,
			}

			if err := db.Create(&employee).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create employee: %w", err)
			}
			return &employee, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query employee: %w", err)
		}
	}

	return &employee, false, nil // created = false (existing)
}

func createShiftTemplate(db *gorm.DB, templateData ShiftTemplateData, deptMap map[string]*models.Department) (*models.ShiftTemplate, bool, error) {
	departmentIDs := make([]string, 0, len(templateData.DepartmentNames))
	for _, name := range templateData.DepartmentNames {
		dept := deptMap[name]
		if dept == nil {
			return nil, false, fmt.Errorf("department %s not found for shift template %s", name, templateData.Name)
		}
		departmentIDs = append(departmentIDs, dept.ID.String())
	}

	var template models.ShiftTemplate
	if err := db.Where("name = ?", templateData.Name).First(&template).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			template = models.ShiftTemplate{
				Name:          templateData.Name,
				StartTime:     templateData.StartTime,
				EndTime:       templateData.EndTime,
				DepartmentIDs: departmentIDs,
				AvailableDays: templateData.AvailableDays,
			}

			if err := db.Create(&template).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create shift template: %w", err)
			}
			return &template, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query shift template: %w", err)
		}
	}

	return &template, false, nil // created = false (existing)
}
