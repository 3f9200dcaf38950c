package service

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"staff-scheduler-backend/internal/database/models"
	apperrors "staff-scheduler-backend/internal/errors"
	"staff-scheduler-backend/internal/logger"
	"staff-scheduler-backend/internal/repository"
	"staff-scheduler-backend/internal/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assignment modes accepted by the assign endpoint
const (
	AssignModeTemplate = "template"
	AssignModeCustom   = "custom"
	AssignModeTimeOff  = "time_off"
)

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ScheduleService owns the assignment store and its undo/redo history. All
// schedule mutations go through commands here; the mutex serializes them so
// each operation runs to completion before the next starts.
type ScheduleService struct {
	mu        sync.Mutex
	store     *schedule.Store
	history   *schedule.History
	dayRepo   repository.ScheduleDayRepositoryInterface
	empRepo   repository.EmployeeRepositoryInterface
	deptRepo  repository.DepartmentRepositoryInterface
	roleRepo  repository.RoleRepositoryInterface
	tplRepo   repository.ShiftTemplateRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// snapshotPersister adapts the schedule-day repository to the store's
// synchronous write-through sink.
type snapshotPersister struct {
	repo repository.ScheduleDayRepositoryInterface
}

func (p *snapshotPersister) PersistAssignments(snapshot map[string]schedule.DayRecord) error {
	return p.repo.SaveSnapshot(snapshot)
}

// logNotifier emits history signals as structured log events. The HTTP API
// is pull-based, so clients read can_undo/can_redo from the history
// endpoint instead of receiving a push.
type logNotifier struct {
	log *logger.Logger
}

// NewLogNotifier creates a notifier that logs history signals
func NewLogNotifier() schedule.Notifier {
	return &logNotifier{log: logger.New().WithField("component", "schedule")}
}

func (n *logNotifier) ScheduleChanged() {
	n.log.Debug("schedule changed")
}

func (n *logNotifier) HistoryChanged(canUndo, canRedo bool) {
	n.log.WithFields(map[string]interface{}{"can_undo": canUndo, "can_redo": canRedo}).Debug("history changed")
}

// NewScheduleService loads the persisted assignment snapshot and builds the
// store and history manager over it.
func NewScheduleService(
	dayRepo repository.ScheduleDayRepositoryInterface,
	empRepo repository.EmployeeRepositoryInterface,
	deptRepo repository.DepartmentRepositoryInterface,
	roleRepo repository.RoleRepositoryInterface,
	tplRepo repository.ShiftTemplateRepositoryInterface,
	validator *validator.Validate,
	notifier schedule.Notifier,
	historyMaxDepth int,
) (*ScheduleService, error) {
	snapshot, err := dayRepo.LoadSnapshot()
	if err != nil {
		return nil, fmt.Errorf("load schedule snapshot: %w", err)
	}

	store := schedule.NewStore(&snapshotPersister{repo: dayRepo})
	store.Load(snapshot)

	return &ScheduleService{
		store:     store,
		history:   schedule.NewHistory(store, notifier, historyMaxDepth),
		dayRepo:   dayRepo,
		empRepo:   empRepo,
		deptRepo:  deptRepo,
		roleRepo:  roleRepo,
		tplRepo:   tplRepo,
		validator: validator,
		log:       logger.New().WithField("component", "schedule"),
	}, nil
}

// AssignShiftRequest creates or edits one assignment. AssignmentID set means
// edit; SaveAsTemplate with a TemplateName on a custom shift also creates a
// reusable shift template.
type AssignShiftRequest struct {
	EmployeeID      uuid.UUID `json:"employee_id" validate:"required"`
	Date            string    `json:"date" validate:"required"`
	AssignmentID    string    `json:"assignment_id,omitempty"`
	Mode            string    `json:"mode" validate:"required,oneof=template custom time_off"`
	RoleID          string    `json:"role_id,omitempty"`
	ShiftTemplateID string    `json:"shift_template_id,omitempty"`
	CustomStart     string    `json:"custom_start,omitempty"`
	CustomEnd       string    `json:"custom_end,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	SaveAsTemplate  bool      `json:"save_as_template,omitempty"`
	TemplateName    string    `json:"template_name,omitempty"`
}

// DeleteAssignmentRequest removes one assignment from a day
type DeleteAssignmentRequest struct {
	EmployeeID   uuid.UUID `json:"employee_id" validate:"required"`
	Date         string    `json:"date" validate:"required"`
	AssignmentID string    `json:"assignment_id" validate:"required"`
}

// DragDropRequest moves or copies an assignment between grid cells
type DragDropRequest struct {
	EmployeeID       uuid.UUID `json:"employee_id" validate:"required"`
	Date             string    `json:"date" validate:"required"`
	AssignmentID     string    `json:"assignment_id" validate:"required"`
	TargetEmployeeID uuid.UUID `json:"target_employee_id" validate:"required"`
	TargetDate       string    `json:"target_date" validate:"required"`
	IsCopy           bool      `json:"is_copy"`
}

// AssignmentResponse is one assignment in its day context
type AssignmentResponse struct {
	EmployeeID string              `json:"employee_id"`
	Date       string              `json:"date"`
	Assignment schedule.Assignment `json:"assignment"`
}

// DayResponse lists one day's assignments for one employee
type DayResponse struct {
	EmployeeID  string                `json:"employee_id"`
	Date        string                `json:"date"`
	Assignments []schedule.Assignment `json:"assignments"`
}

// HistoryStateResponse drives undo/redo button enablement
type HistoryStateResponse struct {
	CanUndo bool `json:"can_undo"`
	CanRedo bool `json:"can_redo"`
}

// AssignShift validates the request at the edge, then creates or edits an
// assignment through a reversible command. No state is mutated when
// validation fails.
func (s *ScheduleService) AssignShift(req *AssignShiftRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := schedule.ParseDate(req.Date); err != nil {
		return nil, apperrors.ErrInvalidDateFormat
	}
	if _, err := s.empRepo.GetByID(req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}

	assignment, err := s.buildAssignment(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var oldAssignment *schedule.Assignment
	if req.AssignmentID != "" {
		for _, a := range s.store.Get(req.EmployeeID.String(), req.Date) {
			if a.AssignmentID == req.AssignmentID {
				prior := a
				oldAssignment = &prior
				break
			}
		}
		if oldAssignment == nil {
			return nil, apperrors.ErrAssignmentNotFound
		}
		assignment.AssignmentID = req.AssignmentID
	}

	if req.Mode == AssignModeCustom && req.SaveAsTemplate && req.TemplateName != "" {
		if err := s.saveCustomAsTemplate(req); err != nil {
			return nil, err
		}
	}

	cmd := &schedule.ModifyAssignmentCommand{
		EmployeeID:    req.EmployeeID.String(),
		Date:          req.Date,
		NewAssignment: assignment,
		OldAssignment: oldAssignment,
	}
	if err := s.history.Do(cmd); err != nil {
		return nil, fmt.Errorf("failed to apply assignment: %w", err)
	}

	return &AssignmentResponse{
		EmployeeID: req.EmployeeID.String(),
		Date:       req.Date,
		Assignment: assignment,
	}, nil
}

// buildAssignment turns a validated request into an assignment value,
// enforcing the edge validation rules before any command exists.
func (s *ScheduleService) buildAssignment(req *AssignShiftRequest) (schedule.Assignment, error) {
	var zero schedule.Assignment

	switch req.Mode {
	case AssignModeTimeOff:
		if req.Reason == "" {
			return zero, apperrors.NewValidationError("reason", "a reason is required for time off")
		}
		return schedule.NewTimeOff(req.Reason), nil

	case AssignModeTemplate:
		if req.RoleID == "" {
			return zero, apperrors.ErrMissingRole
		}
		if req.ShiftTemplateID == "" {
			return zero, apperrors.ErrMissingShiftTemplate
		}
		if err := s.verifyRole(req.RoleID); err != nil {
			return zero, err
		}
		templateID, err := uuid.Parse(req.ShiftTemplateID)
		if err != nil {
			return zero, apperrors.NewValidationError("shift_template_id", "must be a valid id")
		}
		if _, err := s.tplRepo.GetByID(templateID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return zero, apperrors.ErrShiftTemplateNotFound
			}
			return zero, fmt.Errorf("failed to verify shift template: %w", err)
		}
		return schedule.NewTemplateShift(req.RoleID, req.ShiftTemplateID), nil

	case AssignModeCustom:
		if req.RoleID == "" {
			return zero, apperrors.ErrMissingRole
		}
		if err := s.verifyRole(req.RoleID); err != nil {
			return zero, err
		}
		if !timeOfDayPattern.MatchString(req.CustomStart) || !timeOfDayPattern.MatchString(req.CustomEnd) {
			return zero, apperrors.NewValidationError("custom_start", "times must be HH:MM")
		}
		if req.CustomStart == req.CustomEnd {
			return zero, apperrors.ErrZeroDurationShift
		}
		return schedule.NewCustomShift(req.RoleID, req.CustomStart, req.CustomEnd), nil
	}

	return zero, apperrors.NewValidationError("mode", "unknown assignment mode")
}

func (s *ScheduleService) verifyRole(roleID string) error {
	id, err := uuid.Parse(roleID)
	if err != nil {
		return apperrors.NewValidationError("role_id", "must be a valid id")
	}
	if _, err := s.roleRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRoleNotFound
		}
		return fmt.Errorf("failed to verify role: %w", err)
	}
	return nil
}

// saveCustomAsTemplate creates a reusable template from a custom shift. The
// core supports this write but does not own the template lifecycle.
func (s *ScheduleService) saveCustomAsTemplate(req *AssignShiftRequest) error {
	template := &models.ShiftTemplate{
		Name:      req.TemplateName,
		StartTime: req.CustomStart,
		EndTime:   req.CustomEnd,
	}
	if req.RoleID != "" {
		if id, err := uuid.Parse(req.RoleID); err == nil {
			if role, err := s.roleRepo.GetByID(id); err == nil && role.DepartmentID != nil {
				template.DepartmentIDs = []string{role.DepartmentID.String()}
			}
		}
	}
	if err := s.tplRepo.Create(template); err != nil {
		return fmt.Errorf("failed to save custom shift as template: %w", err)
	}
	s.log.WithField("template", template.Name).Info("custom shift saved as template")
	return nil
}

// DeleteAssignment removes one assignment through a reversible command.
// Deleting an assignment that no longer exists is a silent no-op.
func (s *ScheduleService) DeleteAssignment(req *DeleteAssignmentRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if _, err := schedule.ParseDate(req.Date); err != nil {
		return apperrors.ErrInvalidDateFormat
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := &schedule.DeleteAssignmentCommand{
		EmployeeID:   req.EmployeeID.String(),
		Date:         req.Date,
		AssignmentID: req.AssignmentID,
	}
	if err := s.history.Do(cmd); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

// DragDrop moves or copies an assignment between cells. A move onto the
// same cell never reaches the history; a stale source makes the command a
// no-op rather than an error.
func (s *ScheduleService) DragDrop(req *DragDropRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if _, err := schedule.ParseDate(req.Date); err != nil {
		return apperrors.ErrInvalidDateFormat
	}
	if _, err := schedule.ParseDate(req.TargetDate); err != nil {
		return apperrors.ErrInvalidDateFormat
	}

	if !req.IsCopy && req.EmployeeID == req.TargetEmployeeID && req.Date == req.TargetDate {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	newAssignmentID := req.AssignmentID
	if req.IsCopy {
		newAssignmentID = schedule.NewAssignmentID()
	}

	cmd := &schedule.DragDropCommand{
		OriginalEmployeeID: req.EmployeeID.String(),
		OriginalDate:       req.Date,
		AssignmentID:       req.AssignmentID,
		IsCopyOperation:    req.IsCopy,
		NewAssignmentID:    newAssignmentID,
		TargetEmployeeID:   req.TargetEmployeeID.String(),
		TargetDate:         req.TargetDate,
	}
	if err := s.history.Do(cmd); err != nil {
		return fmt.Errorf("failed to move assignment: %w", err)
	}
	return nil
}

// Undo reverses the most recent schedule edit
func (s *ScheduleService) Undo() (*HistoryStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.history.Undo(); err != nil {
		return nil, fmt.Errorf("undo failed: %w", err)
	}
	return s.historyState(), nil
}

// Redo re-applies the most recently undone schedule edit
func (s *ScheduleService) Redo() (*HistoryStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.history.Redo(); err != nil {
		return nil, fmt.Errorf("redo failed: %w", err)
	}
	return s.historyState(), nil
}

// ClearHistory empties both history stacks; invoked when the client
// navigates away from the scheduling view.
func (s *ScheduleService) ClearHistory() *HistoryStateResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Clear()
	return s.historyState()
}

// HistoryState reports undo/redo availability
func (s *ScheduleService) HistoryState() *HistoryStateResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyState()
}

func (s *ScheduleService) historyState() *HistoryStateResponse {
	return &HistoryStateResponse{
		CanUndo: s.history.CanUndo(),
		CanRedo: s.history.CanRedo(),
	}
}

// GetAssignments returns one employee's assignments for one date
func (s *ScheduleService) GetAssignments(employeeID uuid.UUID, date string) (*DayResponse, error) {
	if _, err := schedule.ParseDate(date); err != nil {
		return nil, apperrors.ErrInvalidDateFormat
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return &DayResponse{
		EmployeeID:  employeeID.String(),
		Date:        date,
		Assignments: s.store.Get(employeeID.String(), date),
	}, nil
}

// WeekView renders the schedule grid for the week containing the given
// date, optionally filtered to a set of departments.
func (s *ScheduleService) WeekView(date string, departmentIDs []string) (*schedule.WeekView, error) {
	day, err := schedule.ParseDate(date)
	if err != nil {
		return nil, apperrors.ErrInvalidDateFormat
	}

	dir, err := s.loadDirectory()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	view := schedule.BuildWeekView(s.store, dir, day, departmentIDs)
	return &view, nil
}

// RemoveEmployeeAssignments cascades deletion of every day record for an
// employee. Commands still referencing the employee degrade to no-ops.
func (s *ScheduleService) RemoveEmployeeAssignments(employeeID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.RemoveEmployee(employeeID.String()); err != nil {
		return fmt.Errorf("failed to remove employee assignments: %w", err)
	}
	return nil
}

const directoryPageSize = 1000

// loadDirectory snapshots the reference tables into the renderer's lookup
// shape. Missing references stay missing; the renderer falls back.
func (s *ScheduleService) loadDirectory() (schedule.Directory, error) {
	dir := &mapDirectory{
		departments: make(map[string]schedule.DepartmentRef),
		roles:       make(map[string]schedule.RoleRef),
		templates:   make(map[string]schedule.ShiftTemplateRef),
	}

	departments, _, err := s.deptRepo.GetAll(directoryPageSize, 0)
	if err != nil {
		return nil, fmt.Errorf("load departments: %w", err)
	}
	for _, d := range departments {
		dir.departments[d.ID.String()] = schedule.DepartmentRef{ID: d.ID.String(), Name: d.Name}
	}

	roles, _, err := s.roleRepo.GetAll(directoryPageSize, 0)
	if err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}
	for _, r := range roles {
		ref := schedule.RoleRef{ID: r.ID.String(), Name: r.Name, Color: r.Color}
		if r.DepartmentID != nil {
			ref.DepartmentID = r.DepartmentID.String()
		}
		dir.roles[ref.ID] = ref
	}

	templates, _, err := s.tplRepo.GetAll(directoryPageSize, 0)
	if err != nil {
		return nil, fmt.Errorf("load shift templates: %w", err)
	}
	for _, t := range templates {
		dir.templates[t.ID.String()] = schedule.ShiftTemplateRef{
			ID:    t.ID.String(),
			Name:  t.Name,
			Start: t.StartTime,
			End:   t.EndTime,
		}
	}

	employees, _, err := s.empRepo.GetAll(directoryPageSize, 0)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	dir.employees = make([]schedule.EmployeeRef, 0, len(employees))
	for _, e := range employees {
		ref := schedule.EmployeeRef{
			ID:              e.ID.String(),
			DisplayName:     e.DisplayName,
			Status:          string(e.Status),
			IsVisible:       e.IsVisible,
			VacationBalance: e.VacationBalance,
		}
		if e.DepartmentID != nil {
			ref.DepartmentID = e.DepartmentID.String()
		}
		dir.employees = append(dir.employees, ref)
	}

	return dir, nil
}

// mapDirectory is the repository-backed schedule.Directory snapshot
type mapDirectory struct {
	departments map[string]schedule.DepartmentRef
	roles       map[string]schedule.RoleRef
	templates   map[string]schedule.ShiftTemplateRef
	employees   []schedule.EmployeeRef
}

func (d *mapDirectory) FindDepartment(id string) (schedule.DepartmentRef, bool) {
	ref, ok := d.departments[id]
	return ref, ok
}

func (d *mapDirectory) FindRole(id string) (schedule.RoleRef, bool) {
	ref, ok := d.roles[id]
	return ref, ok
}

func (d *mapDirectory) FindShiftTemplate(id string) (schedule.ShiftTemplateRef, bool) {
	ref, ok := d.templates[id]
	return ref, ok
}

func (d *mapDirectory) FindEmployee(id string) (schedule.EmployeeRef, bool) {
	for _, e := range d.employees {
		if e.ID == id {
			return e, true
		}
	}
	return schedule.EmployeeRef{}, false
}

func (d *mapDirectory) ListEmployees() []schedule.EmployeeRef {
	return d.employees
}
