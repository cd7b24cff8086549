package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/apperrors"
	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/core/services"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestUpdateUser_PartialEdit() {
	ctx := context.Background()
	user := &domain.User{
		UserID:    uuid.NewString(),
		Username:  "drkhalid",
		Email:     "khalid@clinic.local",
		FullName:  "خالد الأحمد",
		Role:      domain.RoleDoctor,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(updated domain.User) bool {
		// Only the specialization changes; untouched fields keep their values.
		return updated.Specialization == "جراحة عامة" &&
			updated.Email == "khalid@clinic.local" &&
			updated.IsActive
	})).Return(nil).Once()

	specialization := "جراحة عامة"
	updated, err := suite.service.UpdateUser(ctx, user.UserID, dto.UpdateUserRequest{Specialization: &specialization})

	suite.Require().NoError(err)
	suite.Equal("جراحة عامة", updated.Specialization)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_Deactivate() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), IsActive: true, Role: domain.RoleDoctor}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(updated domain.User) bool {
		return !updated.IsActive
	})).Return(nil).Once()

	inactive := false
	updated, err := suite.service.UpdateUser(ctx, user.UserID, dto.UpdateUserRequest{IsActive: &inactive})

	suite.Require().NoError(err)
	suite.False(updated.IsActive)
}

func (suite *UserServiceTestSuite) TestDeleteUser_SelfDeleteRejected() {
	ctx := context.Background()
	userID := uuid.NewString()

	err := suite.service.DeleteUser(ctx, userID, userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	adminID := uuid.NewString()

	suite.mockUserRepo.On("DeleteUser", ctx, userID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID, adminID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
