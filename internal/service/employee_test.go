package service_test

import (
	"testing"

	"staff-scheduler-backend/internal/database/models"
	apperrors "staff-scheduler-backend/internal/errors"
	"staff-scheduler-backend/internal/mocks"
	"staff-scheduler-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// fakeCascade records schedule cascade calls
type fakeCascade struct {
	removed []uuid.UUID
	err     error
}

func (f *fakeCascade) RemoveEmployeeAssignments(employeeID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, employeeID)
	return nil
}

// EmployeeServiceTestSuite defines the test suite for EmployeeService
type EmployeeServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockEmpRepo     *mocks.MockEmployeeRepositoryInterface
	mockDeptRepo    *mocks.MockDepartmentRepositoryInterface
	cascade         *fakeCascade
	employeeService *service.EmployeeService
}

// SetupTest sets up the test suite
func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEmpRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockDeptRepo = mocks.NewMockDepartmentRepositoryInterface(suite.ctrl)
	suite.cascade = &fakeCascade{}

	suite.employeeService = service.NewEmployeeService(
		suite.mockEmpRepo,
		suite.mockDeptRepo,
		suite.cascade,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *EmployeeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateEmployeeDefaults tests defaulting of status and visibility
func (suite *EmployeeServiceTestSuite) TestCreateEmployeeDefaults() {
	suite.mockEmpRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(employee *models.Employee) error {
			assert.Equal(suite.T(), models.EmployeeStatusActive, employee.Status)
			assert.True(suite.T(), employee.IsVisible)
			return nil
		}).
		Times(1)

	resp, err := suite.employeeService.CreateEmployee(&service.CreateEmployeeRequest{
		DisplayName: "Dana",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Dana", resp.DisplayName)
	assert.Equal(suite.T(), string(models.EmployeeStatusActive), resp.Status)
}

// TestCreateEmployeeInvalidStatus tests status validation
func (suite *EmployeeServiceTestSuite) TestCreateEmployeeInvalidStatus() {
	status := "Retired"
	_, err := suite.employeeService.CreateEmployee(&service.CreateEmployeeRequest{
		DisplayName: "Dana",
		Status:      &status,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

// TestCreateEmployeeUnknownDepartment tests department existence check
func (suite *EmployeeServiceTestSuite) TestCreateEmployeeUnknownDepartment() {
	deptID := uuid.New()
	suite.mockDeptRepo.EXPECT().
		GetByID(deptID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	_, err := suite.employeeService.CreateEmployee(&service.CreateEmployeeRequest{
		DisplayName:  "Dana",
		DepartmentID: &deptID,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrDepartmentNotFound)
}

// TestUpdateEmployeeVacationBalance tests balance adjustment
func (suite *EmployeeServiceTestSuite) TestUpdateEmployeeVacationBalance() {
	id := uuid.New()
	existing := &models.Employee{DisplayName: "Dana", Status: models.EmployeeStatusActive, IsVisible: true, VacationBalance: 10}
	existing.ID = id

	suite.mockEmpRepo.EXPECT().GetByID(id).Return(existing, nil).Times(1)
	suite.mockEmpRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	balance := 7
	resp, err := suite.employeeService.UpdateEmployee(id, &service.UpdateEmployeeRequest{
		VacationBalance: &balance,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7, resp.VacationBalance)
}

// TestDeleteEmployeeCascades tests that deletion clears the schedule first
func (suite *EmployeeServiceTestSuite) TestDeleteEmployeeCascades() {
	id := uuid.New()
	existing := &models.Employee{DisplayName: "Dana"}
	existing.ID = id

	suite.mockEmpRepo.EXPECT().GetByID(id).Return(existing, nil).Times(1)
	suite.mockEmpRepo.EXPECT().Delete(id).Return(nil).Times(1)

	err := suite.employeeService.DeleteEmployee(id)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), suite.cascade.removed, 1)
	assert.Equal(suite.T(), id, suite.cascade.removed[0])
}

// TestDeleteEmployeeNotFound tests missing employee deletion
func (suite *EmployeeServiceTestSuite) TestDeleteEmployeeNotFound() {
	id := uuid.New()
	suite.mockEmpRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.employeeService.DeleteEmployee(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmployeeNotFound)
	assert.Empty(suite.T(), suite.cascade.removed)
}

// TestEmployeeServiceTestSuite runs the test suite
func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
