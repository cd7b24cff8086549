package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/apperrors"
	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
	"github.com/alnahhas/surgery_clinic_app/internal/handlers"
	"github.com/alnahhas/surgery_clinic_app/internal/platform/config"
	"github.com/alnahhas/surgery_clinic_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	args := m.Called(ctx, username, password)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.String(1), args.Error(2)
}

func (m *MockAuthService) ResolveSession(ctx context.Context, token string) (*domain.Identity, error) {
	args := m.Called(ctx, token)
	var identity *domain.Identity
	if args.Get(0) != nil {
		identity = args.Get(0).(*domain.Identity)
	}
	return identity, args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	args := m.Called(ctx, identity)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

// --- Mock RegistrationService ---
type MockRegistrationService struct {
	mock.Mock
}

var _ portssvc.RegistrationSvcFacade = (*MockRegistrationService)(nil)

func (m *MockRegistrationService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockRegistrationService) CreateInvite(ctx context.Context, issuer domain.Identity, req dto.CreateInviteRequest) (*domain.InviteToken, error) {
	args := m.Called(ctx, issuer, req)
	var invite *domain.InviteToken
	if args.Get(0) != nil {
		invite = args.Get(0).(*domain.InviteToken)
	}
	return invite, args.Error(1)
}

func (m *MockRegistrationService) VerifyInvite(ctx context.Context, token string) (*domain.InviteToken, error) {
	args := m.Called(ctx, token)
	var invite *domain.InviteToken
	if args.Get(0) != nil {
		invite = args.Get(0).(*domain.InviteToken)
	}
	return invite, args.Error(1)
}

func (m *MockRegistrationService) ListInvites(ctx context.Context) ([]domain.InviteToken, error) {
	args := m.Called(ctx)
	var invites []domain.InviteToken
	if args.Get(0) != nil {
		invites = args.Get(0).([]domain.InviteToken)
	}
	return invites, args.Error(1)
}

func (m *MockRegistrationService) DeleteInvite(ctx context.Context, inviteID string) error {
	args := m.Called(ctx, inviteID)
	return args.Error(0)
}

func (m *MockRegistrationService) SetupAdmin(ctx context.Context, req dto.SetupAdminRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockRegistrationService) SeedDefaultAdmin(ctx context.Context, username, email, password, fullName string) (bool, error) {
	args := m.Called(ctx, username, email, password, fullName)
	return args.Bool(0), args.Error(1)
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	args := m.Called(ctx, userID, requestingUserID)
	return args.Error(0)
}

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router                  *gin.Engine
	mockAuthService         *MockAuthService
	mockRegistrationService *MockRegistrationService
	mockUserService         *MockUserService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockAuthService = new(MockAuthService)
	suite.mockRegistrationService = new(MockRegistrationService)
	suite.mockUserService = new(MockUserService)

	// IsProduction skips the swagger routes; analytics stays uninitialized.
	cfg := &config.Config{IsProduction: true}
	services := &portssvc.ServiceContainer{
		Auth:         suite.mockAuthService,
		Registration: suite.mockRegistrationService,
		User:         suite.mockUserService,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services, utils.InitializePosthogClient("", slog.Default()))
}

func (suite *AuthHandlerTestSuite) doJSON(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) identity(role domain.Role) *domain.Identity {
	return &domain.Identity{
		UserID:    uuid.NewString(),
		Username:  "someone",
		Role:      role,
		SessionID: uuid.NewString(),
	}
}

// --- Login ---

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	user := &domain.User{UserID: uuid.NewString(), Username: "drkhalid", Role: domain.RoleDoctor, IsActive: true}

	suite.mockAuthService.On("Login", mock.Anything, "drkhalid", "password123").
		Return(user, "signed-token", nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: "drkhalid", Password: "password123"}, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-token", resp.Token)
	suite.Equal("drkhalid", resp.User.Username)
}

func (suite *AuthHandlerTestSuite) TestLogin_WrongCredentials() {
	suite.mockAuthService.On("Login", mock.Anything, "drkhalid", "nope").
		Return(nil, "", apperrors.ErrUnauthorized).Once()

	w := suite.doJSON(http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: "drkhalid", Password: "nope"}, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("unauthenticated", resp.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_DisabledAccount() {
	suite.mockAuthService.On("Login", mock.Anything, "drkhalid", "password123").
		Return(nil, "", apperrors.ErrAccountDisabled).Once()

	w := suite.doJSON(http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: "drkhalid", Password: "password123"}, "")

	suite.Equal(http.StatusForbidden, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("forbidden", resp.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_MissingFields() {
	w := suite.doJSON(http.MethodPost, "/api/auth/login", gin.H{"username": "drkhalid"}, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("validation_error", resp.Code)
	suite.mockAuthService.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestLogin_RateLimitedPerIP() {
	suite.mockAuthService.On("Login", mock.Anything, "drkhalid", "nope").
		Return(nil, "", apperrors.ErrUnauthorized).Times(5)

	// httptest requests all carry the same RemoteAddr, so they land in one
	// per-IP bucket.
	for i := 0; i < 5; i++ {
		w := suite.doJSON(http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: "drkhalid", Password: "nope"}, "")
		suite.Equal(http.StatusUnauthorized, w.Code)
	}

	w := suite.doJSON(http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: "drkhalid", Password: "nope"}, "")
	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.mockAuthService.AssertExpectations(suite.T())
}

// --- Session plumbing ---

func (suite *AuthHandlerTestSuite) TestCheckSession_NoToken() {
	w := suite.doJSON(http.MethodGet, "/api/auth/check-session", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CheckSessionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.LoggedIn)
}

func (suite *AuthHandlerTestSuite) TestCheckSession_DeadToken() {
	suite.mockAuthService.On("ResolveSession", mock.Anything, "stale").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.doJSON(http.MethodGet, "/api/auth/check-session", nil, "stale")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CheckSessionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.LoggedIn)
}

func (suite *AuthHandlerTestSuite) TestMe_WithoutToken() {
	w := suite.doJSON(http.MethodGet, "/api/auth/me", nil, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("unauthenticated", resp.Code)
}

func (suite *AuthHandlerTestSuite) TestMe_ExpiredToken() {
	suite.mockAuthService.On("ResolveSession", mock.Anything, "expired").
		Return(nil, apperrors.ErrTokenExpired).Once()

	w := suite.doJSON(http.MethodGet, "/api/auth/me", nil, "expired")

	suite.Equal(http.StatusUnauthorized, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("token_expired", resp.Code)
}

func (suite *AuthHandlerTestSuite) TestLogout_RevokesTheSession() {
	identity := suite.identity(domain.RoleDoctor)

	suite.mockAuthService.On("ResolveSession", mock.Anything, "live").Return(identity, nil).Once()
	suite.mockAuthService.On("Logout", mock.Anything, identity.SessionID).Return(nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/auth/logout", nil, "live")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockAuthService.AssertExpectations(suite.T())
}

// --- Admin gate: 401 vs 403 ---

func (suite *AuthHandlerTestSuite) TestListUsers_WithoutToken() {
	w := suite.doJSON(http.MethodGet, "/api/users", nil, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestListUsers_AsDoctor() {
	suite.mockAuthService.On("ResolveSession", mock.Anything, "doctor-token").
		Return(suite.identity(domain.RoleDoctor), nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/users", nil, "doctor-token")

	suite.Equal(http.StatusForbidden, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("forbidden", resp.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "ListUsers", mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestListUsers_AsAdmin() {
	suite.mockAuthService.On("ResolveSession", mock.Anything, "admin-token").
		Return(suite.identity(domain.RoleAdmin), nil).Once()
	suite.mockUserService.On("ListUsers", mock.Anything).
		Return([]domain.User{{Username: "drkhalid"}, {Username: "drsalma"}}, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/users", nil, "admin-token")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

// --- Invites ---

func (suite *AuthHandlerTestSuite) TestCreateInvite_AsAdmin() {
	identity := suite.identity(domain.RoleAdmin)
	expiresAt := time.Now().Add(7 * 24 * time.Hour)
	invite := &domain.InviteToken{
		InviteID:  uuid.NewString(),
		Token:     "fresh-token",
		CreatedBy: identity.UserID,
		Role:      domain.RoleDoctor,
		CreatedAt: time.Now(),
		ExpiresAt: &expiresAt,
	}

	suite.mockAuthService.On("ResolveSession", mock.Anything, "admin-token").Return(identity, nil).Once()
	suite.mockRegistrationService.On("CreateInvite", mock.Anything, *identity, mock.Anything).
		Return(invite, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/auth/invites", dto.CreateInviteRequest{}, "admin-token")

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateInviteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("/register?token=fresh-token", resp.InviteLink)
}

func (suite *AuthHandlerTestSuite) TestVerifyInvite_Expired() {
	suite.mockRegistrationService.On("VerifyInvite", mock.Anything, "old-token").
		Return(nil, apperrors.ErrTokenExpired).Once()

	w := suite.doJSON(http.MethodGet, "/api/auth/invites/verify/old-token", nil, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp dto.VerifyInviteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Valid)
	suite.Equal("token_expired", resp.Code)
}

func (suite *AuthHandlerTestSuite) registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Token:    "some-token",
		Username: "drsalma",
		Email:    "salma@clinic.local",
		Password: "password123",
		FullName: "سلمى الحسن",
	}
}

// Token and uniqueness failures on registration surface as 400, the status
// the registration form switches on, with the conflict code kept intact.
func (suite *AuthHandlerTestSuite) TestRegister_UsedTokenIsBadRequest() {
	suite.mockRegistrationService.On("Register", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrConflict).Once()

	w := suite.doJSON(http.MethodPost, "/api/auth/register", suite.registerRequest(), "")

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("conflict", resp.Code)
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateUsernameIsBadRequest() {
	suite.mockRegistrationService.On("Register", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.doJSON(http.MethodPost, "/api/auth/register", suite.registerRequest(), "")

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("conflict", resp.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
