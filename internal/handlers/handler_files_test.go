package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
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

// --- Mock MedicalFileService ---
type MockMedicalFileService struct {
	mock.Mock
}

var _ portssvc.MedicalFileSvcFacade = (*MockMedicalFileService)(nil)

func (m *MockMedicalFileService) Upload(ctx context.Context, patientID string, actor domain.Identity, upload portssvc.FileUpload) (*domain.MedicalFile, error) {
	args := m.Called(ctx, patientID, actor, upload)
	var file *domain.MedicalFile
	if args.Get(0) != nil {
		file = args.Get(0).(*domain.MedicalFile)
	}
	return file, args.Error(1)
}

func (m *MockMedicalFileService) GetFileByID(ctx context.Context, fileID string) (*domain.MedicalFile, error) {
	args := m.Called(ctx, fileID)
	var file *domain.MedicalFile
	if args.Get(0) != nil {
		file = args.Get(0).(*domain.MedicalFile)
	}
	return file, args.Error(1)
}

func (m *MockMedicalFileService) GetServableFile(ctx context.Context, fileID string) (*domain.MedicalFile, error) {
	args := m.Called(ctx, fileID)
	var file *domain.MedicalFile
	if args.Get(0) != nil {
		file = args.Get(0).(*domain.MedicalFile)
	}
	return file, args.Error(1)
}

func (m *MockMedicalFileService) ListPatientFiles(ctx context.Context, patientID string, category string) ([]domain.MedicalFile, error) {
	args := m.Called(ctx, patientID, category)
	var files []domain.MedicalFile
	if args.Get(0) != nil {
		files = args.Get(0).([]domain.MedicalFile)
	}
	return files, args.Error(1)
}

func (m *MockMedicalFileService) UpdateFile(ctx context.Context, fileID string, req dto.UpdateFileRequest) (*domain.MedicalFile, error) {
	args := m.Called(ctx, fileID, req)
	var file *domain.MedicalFile
	if args.Get(0) != nil {
		file = args.Get(0).(*domain.MedicalFile)
	}
	return file, args.Error(1)
}

func (m *MockMedicalFileService) DeleteFile(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

func (m *MockMedicalFileService) PatientFileStats(ctx context.Context, patientID string) (*domain.FileStats, error) {
	args := m.Called(ctx, patientID)
	var stats *domain.FileStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.FileStats)
	}
	return stats, args.Error(1)
}

// --- Mock StatisticsService ---
type MockStatisticsService struct {
	mock.Mock
}

var _ portssvc.StatisticsSvcFacade = (*MockStatisticsService)(nil)

func (m *MockStatisticsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	var stats *domain.DashboardStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.DashboardStats)
	}
	return stats, args.Error(1)
}

// --- Test Suite ---
type FileHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockAuthService     *MockAuthService
	mockFileService     *MockMedicalFileService
	mockStatisticsSvc   *MockStatisticsService
	authenticatedDoctor *domain.Identity
}

func (suite *FileHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockAuthService = new(MockAuthService)
	suite.mockFileService = new(MockMedicalFileService)
	suite.mockStatisticsSvc = new(MockStatisticsService)
	suite.authenticatedDoctor = &domain.Identity{
		UserID:    uuid.NewString(),
		Username:  "drkhalid",
		Role:      domain.RoleDoctor,
		SessionID: uuid.NewString(),
	}

	cfg := &config.Config{IsProduction: true}
	services := &portssvc.ServiceContainer{
		Auth:        suite.mockAuthService,
		MedicalFile: suite.mockFileService,
		Statistics:  suite.mockStatisticsSvc,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services, utils.InitializePosthogClient("", slog.Default()))
}

func (suite *FileHandlerTestSuite) expectSession(token string) {
	suite.mockAuthService.On("ResolveSession", mock.Anything, token).
		Return(suite.authenticatedDoctor, nil).Once()
}

func (suite *FileHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// storedFile writes real bytes under a temp dir and returns a row pointing at
// them, the way the download endpoints expect to find an artifact.
func (suite *FileHandlerTestSuite) storedFile(content string) *domain.MedicalFile {
	path := filepath.Join(suite.T().TempDir(), "scan.png")
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return &domain.MedicalFile{
		FileID:     uuid.NewString(),
		PatientID:  uuid.NewString(),
		FileName:   "scan.png",
		FileType:   domain.FileTypeImage,
		FileSize:   int64(len(content)),
		MimeType:   "image/png",
		Category:   domain.CategoryXRay,
		FilePath:   path,
		UploadedAt: time.Now(),
	}
}

// --- Public read endpoints ---

func (suite *FileHandlerTestSuite) TestListCategories() {
	w := suite.get("/api/files/categories")

	suite.Equal(http.StatusOK, w.Code)
	var categories []dto.CategoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &categories))
	suite.Len(categories, len(domain.FileCategories))
	suite.Equal("xray", categories[2].Value)
	suite.NotEmpty(categories[2].Label)
}

func (suite *FileHandlerTestSuite) TestListPatientFiles_PassesCategoryFilter() {
	patientID := uuid.NewString()
	suite.mockFileService.On("ListPatientFiles", mock.Anything, patientID, "xray").
		Return([]domain.MedicalFile{*suite.storedFile("x")}, nil).Once()

	w := suite.get("/api/patients/" + patientID + "/files?category=xray")

	suite.Equal(http.StatusOK, w.Code)
	var files []dto.FileResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &files))
	suite.Require().Len(files, 1)
	suite.Equal("scan.png", files[0].FileName)
}

func (suite *FileHandlerTestSuite) TestGetFile_NotFound() {
	suite.mockFileService.On("GetFileByID", mock.Anything, "missing-id").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.get("/api/files/missing-id")

	suite.Equal(http.StatusNotFound, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("not_found", resp.Code)
}

func (suite *FileHandlerTestSuite) TestDownloadFile_ServesStoredBytes() {
	file := suite.storedFile("PNGBYTES")
	suite.mockFileService.On("GetServableFile", mock.Anything, file.FileID).Return(file, nil).Once()

	w := suite.get("/api/files/" + file.FileID + "/download")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("PNGBYTES", w.Body.String())
	suite.Contains(w.Header().Get("Content-Disposition"), "scan.png")
}

func (suite *FileHandlerTestSuite) TestDownloadFile_ArtifactMissingOnDisk() {
	fileID := uuid.NewString()
	suite.mockFileService.On("GetServableFile", mock.Anything, fileID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.get("/api/files/" + fileID + "/download")

	suite.Equal(http.StatusNotFound, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("not_found", resp.Code)
}

func (suite *FileHandlerTestSuite) TestViewFile_SetsStoredMimeType() {
	file := suite.storedFile("PNGBYTES")
	suite.mockFileService.On("GetServableFile", mock.Anything, file.FileID).Return(file, nil).Once()

	w := suite.get("/api/files/" + file.FileID + "/view")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("image/png", w.Header().Get("Content-Type"))
}

// --- Upload ---

func (suite *FileHandlerTestSuite) multipartUpload(patientID, token string, fields map[string]string, withFile bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		suite.Require().NoError(mw.WriteField(key, value))
	}
	if withFile {
		part, err := mw.CreateFormFile("file", "scan.png")
		suite.Require().NoError(err)
		_, err = part.Write([]byte("PNGBYTES"))
		suite.Require().NoError(err)
	}
	suite.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/patients/"+patientID+"/files/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *FileHandlerTestSuite) TestUploadFile_WithoutToken() {
	w := suite.multipartUpload(uuid.NewString(), "", nil, true)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockFileService.AssertNotCalled(suite.T(), "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FileHandlerTestSuite) TestUploadFile_Success() {
	patientID := uuid.NewString()
	stored := suite.storedFile("PNGBYTES")
	stored.PatientID = patientID
	suite.expectSession("doctor-token")

	suite.mockFileService.On("Upload", mock.Anything, patientID, *suite.authenticatedDoctor,
		mock.MatchedBy(func(upload portssvc.FileUpload) bool {
			content, err := io.ReadAll(upload.Content)
			return err == nil &&
				upload.Filename == "scan.png" &&
				upload.Category == "xray" &&
				upload.DateTaken != nil &&
				upload.DateTaken.Format("2006-01-02") == "2026-08-20" &&
				string(content) == "PNGBYTES"
		})).Return(stored, nil).Once()

	w := suite.multipartUpload(patientID, "doctor-token", map[string]string{
		"category":   "xray",
		"date_taken": "2026-08-20",
	}, true)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.FileUploadResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("scan.png", resp.File.FileName)
	suite.Equal(patientID, resp.File.PatientID)
}

func (suite *FileHandlerTestSuite) TestUploadFile_MissingFilePart() {
	suite.expectSession("doctor-token")

	w := suite.multipartUpload(uuid.NewString(), "doctor-token", map[string]string{"category": "xray"}, false)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("validation_error", resp.Code)
	suite.mockFileService.AssertNotCalled(suite.T(), "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FileHandlerTestSuite) TestUploadFile_BadDateTaken() {
	suite.expectSession("doctor-token")

	w := suite.multipartUpload(uuid.NewString(), "doctor-token", map[string]string{"date_taken": "20/08/2026"}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFileService.AssertNotCalled(suite.T(), "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FileHandlerTestSuite) TestUploadFile_UnsupportedExtension() {
	patientID := uuid.NewString()
	suite.expectSession("doctor-token")
	suite.mockFileService.On("Upload", mock.Anything, patientID, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrUnsupportedFileType).Once()

	w := suite.multipartUpload(patientID, "doctor-token", nil, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("unsupported_file_type", resp.Code)
}

// --- Delete ---

func (suite *FileHandlerTestSuite) TestDeleteFile_RequiresSession() {
	req := httptest.NewRequest(http.MethodDelete, "/api/files/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockFileService.AssertNotCalled(suite.T(), "DeleteFile", mock.Anything, mock.Anything)
}

func (suite *FileHandlerTestSuite) TestDeleteFile_Success() {
	fileID := uuid.NewString()
	suite.expectSession("doctor-token")
	suite.mockFileService.On("DeleteFile", mock.Anything, fileID).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/files/"+fileID, nil)
	req.Header.Set("Authorization", "Bearer doctor-token")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockFileService.AssertExpectations(suite.T())
}

// --- Statistics ---

func (suite *FileHandlerTestSuite) TestStatistics_RequiresSession() {
	w := suite.get("/api/statistics")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockStatisticsSvc.AssertNotCalled(suite.T(), "Dashboard", mock.Anything)
}

func (suite *FileHandlerTestSuite) TestStatistics_Dashboard() {
	suite.expectSession("doctor-token")
	suite.mockStatisticsSvc.On("Dashboard", mock.Anything).Return(&domain.DashboardStats{
		TodayAppointments:  3,
		WardPatients:       2,
		ScheduledSurgeries: 1,
		EmergencyCases:     4,
		TotalPatients:      120,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/statistics", nil)
	req.Header.Set("Authorization", "Bearer doctor-token")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.StatisticsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(3, resp.TodayAppointments)
	suite.Equal(120, resp.TotalPatients)
}

func TestFileHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FileHandlerTestSuite))
}
