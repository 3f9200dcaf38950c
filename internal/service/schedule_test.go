package service_test

import (
	"testing"

	"staff-scheduler-backend/internal/database/models"
	apperrors "staff-scheduler-backend/internal/errors"
	"staff-scheduler-backend/internal/mocks"
	"staff-scheduler-backend/internal/schedule"
	"staff-scheduler-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ScheduleServiceTestSuite defines the test suite for ScheduleService
type ScheduleServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockDayRepo     *mocks.MockScheduleDayRepositoryInterface
	mockEmpRepo     *mocks.MockEmployeeRepositoryInterface
	mockDeptRepo    *mocks.MockDepartmentRepositoryInterface
	mockRoleRepo    *mocks.MockRoleRepositoryInterface
	mockTplRepo     *mocks.MockShiftTemplateRepositoryInterface
	scheduleService *service.ScheduleService

	employeeID uuid.UUID
	roleID     uuid.UUID
	templateID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ScheduleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDayRepo = mocks.NewMockScheduleDayRepositoryInterface(suite.ctrl)
	suite.mockEmpRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockDeptRepo = mocks.NewMockDepartmentRepositoryInterface(suite.ctrl)
	suite.mockRoleRepo = mocks.NewMockRoleRepositoryInterface(suite.ctrl)
	suite.mockTplRepo = mocks.NewMockShiftTemplateRepositoryInterface(suite.ctrl)

	suite.employeeID = uuid.New()
	suite.roleID = uuid.New()
	suite.templateID = uuid.New()

	suite.mockDayRepo.EXPECT().
		LoadSnapshot().
		Return(map[string]schedule.DayRecord{}, nil).
		Times(1)

	// Mutations write through to the snapshot repository
	suite.mockDayRepo.EXPECT().
		SaveSnapshot(gomock.Any()).
		Return(nil).
		AnyTimes()

	svc, err := service.NewScheduleService(
		suite.mockDayRepo,
		suite.mockEmpRepo,
		suite.mockDeptRepo,
		suite.mockRoleRepo,
		suite.mockTplRepo,
		validator.New(),
		schedule.NopNotifier{},
		schedule.DefaultMaxDepth,
	)
	require.NoError(suite.T(), err)
	suite.scheduleService = svc
}

// TearDownTest cleans up after each test
func (suite *ScheduleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScheduleServiceTestSuite) expectEmployeeLookup() {
	suite.mockEmpRepo.EXPECT().
		GetByID(suite.employeeID).
		Return(&models.Employee{DisplayName: "Dana"}, nil).
		AnyTimes()
}

func (suite *ScheduleServiceTestSuite) expectRoleLookup() {
	suite.mockRoleRepo.EXPECT().
		GetByID(suite.roleID).
		Return(&models.Role{Name: "Server", Color: "#FF9800"}, nil).
		AnyTimes()
}

func (suite *ScheduleServiceTestSuite) expectTemplateLookup() {
	suite.mockTplRepo.EXPECT().
		GetByID(suite.templateID).
		Return(&models.ShiftTemplate{Name: "Morning", StartTime: "08:00", EndTime: "16:00"}, nil).
		AnyTimes()
}

// TestAssignTemplateShift tests the template assignment happy path
func (suite *ScheduleServiceTestSuite) TestAssignTemplateShift() {
	suite.expectEmployeeLookup()
	suite.expectRoleLookup()
	suite.expectTemplateLookup()

	resp, err := suite.scheduleService.AssignShift(&service.AssignShiftRequest{
		EmployeeID:      suite.employeeID,
		Date:            "2025-03-10",
		Mode:            service.AssignModeTemplate,
		RoleID:          suite.roleID.String(),
		ShiftTemplateID: suite.templateID.String(),
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.employeeID.String(), resp.EmployeeID)
	assert.Equal(suite.T(), schedule.AssignmentTypeShift, resp.Assignment.Type)
	assert.Equal(suite.T(), suite.templateID.String(), resp.Assignment.ShiftTemplateID)
	assert.NotEmpty(suite.T(), resp.Assignment.AssignmentID)

	state := suite.scheduleService.HistoryState()
	assert.True(suite.T(), state.CanUndo)
	assert.False(suite.T(), state.CanRedo)
}

// TestAssignShiftMissingRole tests that a shift without a role is rejected
func (suite *ScheduleServiceTestSuite) TestAssignShiftMissingRole() {
	suite.expectEmployeeLookup()

	_, err := suite.scheduleService.AssignShift(&service.AssignShiftRequest{
		EmployeeID:      suite.employeeID,
		Date:            "2025-03-10",
		Mode:            service.AssignModeTemplate,
		ShiftTemplateID: suite.templateID.String(),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMissingRole)
	assert.False(suite.T(), suite.scheduleService.HistoryState().CanUndo)
}

// TestAssignShiftMissingTemplate tests that template mode requires a template
func (suite *ScheduleServiceTestSuite) TestAssignShiftMissingTemplate() {
	suite.expectEmployeeLookup()

	_, err := suite.scheduleService.AssignShift(&service.AssignShiftRequest{
		EmployeeID: suite.employeeID,
		Date:       "2025-03-10",
		Mode:       service.AssignModeTemplate,
		RoleID:     suite.roleID.String(),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMissingShiftTemplate)
}

// TestAssignCustomShiftZeroDuration tests identical start and end rejection
func (suite *ScheduleServiceTestSuite) TestAssignCustomShiftZeroDuration() {
	suite.expectEmployeeLookup()
	suite.expectRoleLookup()

	_, err := suite.scheduleService.AssignShift(&service.AssignShiftRequest{
		EmployeeID:  suite.employeeID,
		Date:        "2025-03-10",
		Mode:        service.AssignModeCustom,
		RoleID:      suite.roleID.String(),
		CustomStart: "09:00",
		CustomEnd:   "09:00",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrZeroDurationShift)
}

// TestAssignTimeOffWithoutReason tests that time off needs a reason
func (suite *ScheduleServiceTestSuite) TestAssignTimeOffWithoutReason() {
	suite.expectEmployeeLookup()

	_, err := suite.scheduleService.AssignShift(&service.AssignShiftRequest{
		EmployeeID: suite.employeeID,
		Date:       "2025-03-10",
		Mode:       service.AssignModeTimeOff,
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestAssignShiftInvalidDate tests date format rejection
func (suite *ScheduleServiceTestSuite) TestAssignShiftInvalidDate() {
	_, err := suite.scheduleService.AssignShift(&service.AssignShiftRequest{
		EmployeeID: suite.employeeID,
		Date:       "10.03.2025",
		Mode:       service.AssignModeTimeOff,
		Reason:     "Vacation",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidDateFormat)
}

// TestEditAssignmentNotFound tests editing a stale assignment id
func (suite *ScheduleServiceTestSuite) TestEditAssignmentNotFound() {
	suite.expectEmployeeLookup()
	suite.expectRoleLookup()
	suite.expectTemplateLookup()

	_, err := suite.scheduleService.AssignShift(&service.AssignShiftRequest{
		EmployeeID:      suite.employeeID,
		Date:            "2025-03-10",
		AssignmentID:    "assign-missing",
		Mode:            service.AssignModeTemplate,
		RoleID:          suite.roleID.String(),
		ShiftTemplateID: suite.templateID.String(),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAssignmentNotFound)
}

// TestEditAssignmentKeepsID tests that editing replaces in place
func (suite *ScheduleServiceTestSuite) TestEditAssignmentKeepsID() {
	suite.expectEmployeeLookup()
	suite.expectRoleLookup()
	suite.expectTemplateLookup()

	created, err := suite.scheduleService.AssignShift(&service.AssignShiftRequest{
		EmployeeID:      suite.employeeID,
		Date:            "2025-03-10",
		Mode:            service.AssignModeTemplate,
		RoleID:          suite.roleID.String(),
		ShiftTemplateID: suite.templateID.String(),
	})
	require.NoError(suite.T(), err)

	edited, err := suite.scheduleService.AssignShift(&service.AssignShiftRequest{
		EmployeeID:   suite.employeeID,
		Date:         "2025-03-10",
		AssignmentID: created.Assignment.AssignmentID,
		Mode:         service.AssignModeCustom,
		RoleID:       suite.roleID.String(),
		CustomStart:  "12:00",
		CustomEnd:    "20:00",
	})
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), created.Assignment.AssignmentID, edited.Assignment.AssignmentID)
	assert.True(suite.T(), edited.Assignment.IsCustom)

	day, err := suite.scheduleService.GetAssignments(suite.employeeID, "2025-03-10")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), day.Assignments, 1)
	assert.Equal(suite.T(), "12:00", day.Assignments[0].CustomStart)
}

// TestSaveCustomAsTemplate tests the save-as-template side effect
func (suite *ScheduleServiceTestSuite) TestSaveCustomAsTemplate() {
	suite.expectEmployeeLookup()
	suite.expectRoleLookup()

	suite.mockTplRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(template *models.ShiftTemplate) error {
			assert.Equal(suite.T(), "Split Shift", template.Name)
			assert.Equal(suite.T(), "11:00", template.StartTime)
			assert.Equal(suite.T(), "15:00", template.EndTime)
			return nil
		}).
		Times(1)

	_, err := suite.scheduleService.AssignShift(&service.AssignShiftRequest{
		EmployeeID:     suite.employeeID,
		Date:           "2025-03-10",
		Mode:           service.AssignModeCustom,
		RoleID:         suite.roleID.String(),
		CustomStart:    "11:00",
		CustomEnd:      "15:00",
		SaveAsTemplate: true,
		TemplateName:   "Split Shift",
	})

	require.NoError(suite.T(), err)
}

// TestDeleteAssignmentUndoRestores tests delete then undo round trip
func (suite *ScheduleServiceTestSuite) TestDeleteAssignmentUndoRestores() {
	suite.expectEmployeeLookup()

	created, err := suite.scheduleService.AssignShift(&service.AssignShiftRequest{
		EmployeeID: suite.employeeID,
		Date:       "2025-03-10",
		Mode:       service.AssignModeTimeOff,
		Reason:     "Vacation",
	})
	require.NoError(suite.T(), err)

	err = suite.scheduleService.DeleteAssignment(&service.DeleteAssignmentRequest{
		EmployeeID:   suite.employeeID,
		Date:         "2025-03-10",
		AssignmentID: created.Assignment.AssignmentID,
	})
	require.NoError(suite.T(), err)

	day, err := suite.scheduleService.GetAssignments(suite.employeeID, "2025-03-10")
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), day.Assignments)

	state, err := suite.scheduleService.Undo()
	require.NoError(suite.T(), err)
	assert.True(suite.T(), state.CanRedo)

	day, err = suite.scheduleService.GetAssignments(suite.employeeID, "2025-03-10")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), day.Assignments, 1)
	assert.Equal(suite.T(), created.Assignment, day.Assignments[0])
}

// TestDeleteMissingAssignmentIsNoOp tests silent degradation on stale ids
func (suite *ScheduleServiceTestSuite) TestDeleteMissingAssignmentIsNoOp() {
	err := suite.scheduleService.DeleteAssignment(&service.DeleteAssignmentRequest{
		EmployeeID:   suite.employeeID,
		Date:         "2025-03-10",
		AssignmentID: "assign-gone",
	})

	assert.NoError(suite.T(), err)
}

// TestDragDropMove tests moving an assignment between cells
func (suite *ScheduleServiceTestSuite) TestDragDropMove() {
	suite.expectEmployeeLookup()
	target := uuid.New()

	created, err := suite.scheduleService.AssignShift(&service.AssignShiftRequest{
		EmployeeID: suite.employeeID,
		Date:       "2025-03-10",
		Mode:       service.AssignModeTimeOff,
		Reason:     "Sick",
	})
	require.NoError(suite.T(), err)

	err = suite.scheduleService.DragDrop(&service.DragDropRequest{
		EmployeeID:       suite.employeeID,
		Date:             "2025-03-10",
		AssignmentID:     created.Assignment.AssignmentID,
		TargetEmployeeID: target,
		TargetDate:       "2025-03-12",
	})
	require.NoError(suite.T(), err)

	source, err := suite.scheduleService.GetAssignments(suite.employeeID, "2025-03-10")
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), source.Assignments)

	moved, err := suite.scheduleService.GetAssignments(target, "2025-03-12")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), moved.Assignments, 1)
	assert.Equal(suite.T(), created.Assignment.AssignmentID, moved.Assignments[0].AssignmentID)
}

// TestDragDropCopyGetsNewID tests that copies receive fresh ids
func (suite *ScheduleServiceTestSuite) TestDragDropCopyGetsNewID() {
	suite.expectEmployeeLookup()
	target := uuid.New()

	created, err := suite.scheduleService.AssignShift(&service.AssignShiftRequest{
		EmployeeID: suite.employeeID,
		Date:       "2025-03-10",
		Mode:       service.AssignModeTimeOff,
		Reason:     "Sick",
	})
	require.NoError(suite.T(), err)

	err = suite.scheduleService.DragDrop(&service.DragDropRequest{
		EmployeeID:       suite.employeeID,
		Date:             "2025-03-10",
		AssignmentID:     created.Assignment.AssignmentID,
		TargetEmployeeID: target,
		TargetDate:       "2025-03-12",
		IsCopy:           true,
	})
	require.NoError(suite.T(), err)

	source, err := suite.scheduleService.GetAssignments(suite.employeeID, "2025-03-10")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), source.Assignments, 1)

	copied, err := suite.scheduleService.GetAssignments(target, "2025-03-12")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), copied.Assignments, 1)
	assert.NotEqual(suite.T(), created.Assignment.AssignmentID, copied.Assignments[0].AssignmentID)
	assert.Equal(suite.T(), created.Assignment.Reason, copied.Assignments[0].Reason)
}

// TestDragDropSameCellMoveIsNoOp tests that same-cell moves skip the history
func (suite *ScheduleServiceTestSuite) TestDragDropSameCellMoveIsNoOp() {
	suite.expectEmployeeLookup()

	created, err := suite.scheduleService.AssignShift(&service.AssignShiftRequest{
		EmployeeID: suite.employeeID,
		Date:       "2025-03-10",
		Mode:       service.AssignModeTimeOff,
		Reason:     "Sick",
	})
	require.NoError(suite.T(), err)
	require.True(suite.T(), suite.scheduleService.HistoryState().CanUndo)

	// Drain the history so the no-op is observable
	_, err = suite.scheduleService.Undo()
	require.NoError(suite.T(), err)
	_, err = suite.scheduleService.Redo()
	require.NoError(suite.T(), err)

	err = suite.scheduleService.DragDrop(&service.DragDropRequest{
		EmployeeID:       suite.employeeID,
		Date:             "2025-03-10",
		AssignmentID:     created.Assignment.AssignmentID,
		TargetEmployeeID: suite.employeeID,
		TargetDate:       "2025-03-10",
	})
	require.NoError(suite.T(), err)

	// A real drag-drop would have cleared the redo stack; redo
	// availability was consumed above, undo is still the assignment.
	state := suite.scheduleService.HistoryState()
	assert.True(suite.T(), state.CanUndo)
	assert.False(suite.T(), state.CanRedo)
}

// TestUndoEmptyHistory tests that undo without history is harmless
func (suite *ScheduleServiceTestSuite) TestUndoEmptyHistory() {
	state, err := suite.scheduleService.Undo()
	require.NoError(suite.T(), err)
	assert.False(suite.T(), state.CanUndo)
	assert.False(suite.T(), state.CanRedo)
}

// TestClearHistory tests that clearing empties both stacks
func (suite *ScheduleServiceTestSuite) TestClearHistory() {
	suite.expectEmployeeLookup()

	_, err := suite.scheduleService.AssignShift(&service.AssignShiftRequest{
		EmployeeID: suite.employeeID,
		Date:       "2025-03-10",
		Mode:       service.AssignModeTimeOff,
		Reason:     "Vacation",
	})
	require.NoError(suite.T(), err)

	state := suite.scheduleService.ClearHistory()
	assert.False(suite.T(), state.CanUndo)
	assert.False(suite.T(), state.CanRedo)

	// The schedule itself is untouched
	day, err := suite.scheduleService.GetAssignments(suite.employeeID, "2025-03-10")
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), day.Assignments, 1)
}

// TestRemoveEmployeeAssignments tests the delete cascade entry point
func (suite *ScheduleServiceTestSuite) TestRemoveEmployeeAssignments() {
	suite.expectEmployeeLookup()

	_, err := suite.scheduleService.AssignShift(&service.AssignShiftRequest{
		EmployeeID: suite.employeeID,
		Date:       "2025-03-10",
		Mode:       service.AssignModeTimeOff,
		Reason:     "Vacation",
	})
	require.NoError(suite.T(), err)

	err = suite.scheduleService.RemoveEmployeeAssignments(suite.employeeID)
	require.NoError(suite.T(), err)

	day, err := suite.scheduleService.GetAssignments(suite.employeeID, "2025-03-10")
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), day.Assignments)
}

// TestScheduleServiceTestSuite runs the test suite
func TestScheduleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}
