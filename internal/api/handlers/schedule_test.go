package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"staff-scheduler-backend/internal/api/handlers"
	apperrors "staff-scheduler-backend/internal/errors"
	"staff-scheduler-backend/internal/mocks"
	"staff-scheduler-backend/internal/schedule"
	"staff-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ScheduleHandlerTestSuite defines the test suite for ScheduleHandler
type ScheduleHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockScheduleSvc *mocks.MockScheduleServiceInterface
	handler         *handlers.ScheduleHandler
	router          *gin.Engine
}

func (suite *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockScheduleSvc = mocks.NewMockScheduleServiceInterface(suite.ctrl)
	suite.handler = handlers.NewScheduleHandler(suite.mockScheduleSvc)

	suite.router = gin.New()
	suite.router.POST("/schedule/assignments", suite.handler.AssignShift)
	suite.router.GET("/schedule/assignments", suite.handler.GetAssignments)
	suite.router.DELETE("/schedule/assignments", suite.handler.DeleteAssignment)
	suite.router.POST("/schedule/drag-drop", suite.handler.DragDrop)
	suite.router.POST("/schedule/undo", suite.handler.Undo)
	suite.router.POST("/schedule/redo", suite.handler.Redo)
	suite.router.GET("/schedule/history", suite.handler.HistoryState)
	suite.router.DELETE("/schedule/history", suite.handler.ClearHistory)
	suite.router.GET("/schedule/week", suite.handler.WeekView)
}

func (suite *ScheduleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScheduleHandlerTestSuite) TestAssignShift_Success() {
	employeeID := uuid.New()
	resp := &service.AssignmentResponse{
		EmployeeID: employeeID.String(),
		Date:       "2025-03-10",
		Assignment: schedule.NewTimeOff("Vacation"),
	}
	suite.mockScheduleSvc.EXPECT().AssignShift(gomock.Any()).Return(resp, nil)

	body, _ := json.Marshal(service.AssignShiftRequest{
		EmployeeID: employeeID,
		Date:       "2025-03-10",
		Mode:       service.AssignModeTimeOff,
		Reason:     "Vacation",
	})
	req := httptest.NewRequest(http.MethodPost, "/schedule/assignments", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.AssignmentResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2025-03-10", got.Date)
	assert.Equal(suite.T(), "Vacation", got.Assignment.Reason)
}

func (suite *ScheduleHandlerTestSuite) TestAssignShift_ValidationError() {
	suite.mockScheduleSvc.EXPECT().
		AssignShift(gomock.Any()).
		Return(nil, apperrors.ErrMissingRole)

	body, _ := json.Marshal(service.AssignShiftRequest{
		EmployeeID: uuid.New(),
		Date:       "2025-03-10",
		Mode:       service.AssignModeTemplate,
	})
	req := httptest.NewRequest(http.MethodPost, "/schedule/assignments", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestAssignShift_EmployeeNotFound() {
	suite.mockScheduleSvc.EXPECT().
		AssignShift(gomock.Any()).
		Return(nil, apperrors.ErrEmployeeNotFound)

	body, _ := json.Marshal(service.AssignShiftRequest{
		EmployeeID: uuid.New(),
		Date:       "2025-03-10",
		Mode:       service.AssignModeTimeOff,
		Reason:     "Vacation",
	})
	req := httptest.NewRequest(http.MethodPost, "/schedule/assignments", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestGetAssignments_Success() {
	employeeID := uuid.New()
	suite.mockScheduleSvc.EXPECT().
		GetAssignments(employeeID, "2025-03-10").
		Return(&service.DayResponse{
			EmployeeID:  employeeID.String(),
			Date:        "2025-03-10",
			Assignments: []schedule.Assignment{},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/schedule/assignments?employee_id="+employeeID.String()+"&date=2025-03-10", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestGetAssignments_InvalidEmployeeID() {
	req := httptest.NewRequest(http.MethodGet, "/schedule/assignments?employee_id=nope&date=2025-03-10", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestDeleteAssignment_Success() {
	suite.mockScheduleSvc.EXPECT().DeleteAssignment(gomock.Any()).Return(nil)

	body, _ := json.Marshal(service.DeleteAssignmentRequest{
		EmployeeID:   uuid.New(),
		Date:         "2025-03-10",
		AssignmentID: "assign-123",
	})
	req := httptest.NewRequest(http.MethodDelete, "/schedule/assignments", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestDragDrop_Success() {
	suite.mockScheduleSvc.EXPECT().DragDrop(gomock.Any()).Return(nil)

	body, _ := json.Marshal(service.DragDropRequest{
		EmployeeID:       uuid.New(),
		Date:             "2025-03-10",
		AssignmentID:     "assign-123",
		TargetEmployeeID: uuid.New(),
		TargetDate:       "2025-03-11",
		IsCopy:           true,
	})
	req := httptest.NewRequest(http.MethodPost, "/schedule/drag-drop", bytes.NewReader(body))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestUndo_ReturnsHistoryState() {
	suite.mockScheduleSvc.EXPECT().
		Undo().
		Return(&service.HistoryStateResponse{CanUndo: false, CanRedo: true}, nil)

	req := httptest.NewRequest(http.MethodPost, "/schedule/undo", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.HistoryStateResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), got.CanUndo)
	assert.True(suite.T(), got.CanRedo)
}

func (suite *ScheduleHandlerTestSuite) TestRedo_ReturnsHistoryState() {
	suite.mockScheduleSvc.EXPECT().
		Redo().
		Return(&service.HistoryStateResponse{CanUndo: true, CanRedo: false}, nil)

	req := httptest.NewRequest(http.MethodPost, "/schedule/redo", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestHistoryState() {
	suite.mockScheduleSvc.EXPECT().
		HistoryState().
		Return(&service.HistoryStateResponse{CanUndo: true, CanRedo: true})

	req := httptest.NewRequest(http.MethodGet, "/schedule/history", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestClearHistory() {
	suite.mockScheduleSvc.EXPECT().
		ClearHistory().
		Return(&service.HistoryStateResponse{})

	req := httptest.NewRequest(http.MethodDelete, "/schedule/history", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestWeekView_Success() {
	suite.mockScheduleSvc.EXPECT().
		WeekView("2025-03-10", []string{"d1", "d2"}).
		Return(&schedule.WeekView{WeekStart: "2025-03-10"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/schedule/week?date=2025-03-10&department_ids=d1,d2", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestWeekView_MissingDate() {
	req := httptest.NewRequest(http.MethodGet, "/schedule/week", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestScheduleHandlerTestSuite runs the test suite
func TestScheduleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}
