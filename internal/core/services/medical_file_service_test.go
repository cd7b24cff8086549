package services_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/apperrors"
	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/core/services"
	"github.com/alnahhas/surgery_clinic_app/internal/dto"
	"github.com/alnahhas/surgery_clinic_app/internal/platform/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PatientRepository ---
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) SavePatient(ctx context.Context, patient domain.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) FindPatientByID(ctx context.Context, patientID string) (*domain.Patient, error) {
	args := m.Called(ctx, patientID)
	var patient *domain.Patient
	if args.Get(0) != nil {
		patient = args.Get(0).(*domain.Patient)
	}
	return patient, args.Error(1)
}

func (m *MockPatientRepository) FindPatients(ctx context.Context) ([]domain.Patient, error) {
	args := m.Called(ctx)
	var patients []domain.Patient
	if args.Get(0) != nil {
		patients = args.Get(0).([]domain.Patient)
	}
	return patients, args.Error(1)
}

func (m *MockPatientRepository) UpdatePatient(ctx context.Context, patient domain.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

// --- Mock MedicalFileRepository ---
type MockMedicalFileRepository struct {
	mock.Mock
}

func (m *MockMedicalFileRepository) SaveFile(ctx context.Context, file domain.MedicalFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockMedicalFileRepository) FindFileByID(ctx context.Context, fileID string) (*domain.MedicalFile, error) {
	args := m.Called(ctx, fileID)
	var file *domain.MedicalFile
	if args.Get(0) != nil {
		file = args.Get(0).(*domain.MedicalFile)
	}
	return file, args.Error(1)
}

func (m *MockMedicalFileRepository) FindFilesByPatient(ctx context.Context, patientID string, category domain.FileCategory) ([]domain.MedicalFile, error) {
	args := m.Called(ctx, patientID, category)
	var files []domain.MedicalFile
	if args.Get(0) != nil {
		files = args.Get(0).([]domain.MedicalFile)
	}
	return files, args.Error(1)
}

func (m *MockMedicalFileRepository) UpdateFile(ctx context.Context, file domain.MedicalFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockMedicalFileRepository) DeleteFile(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

func (m *MockMedicalFileRepository) FileStats(ctx context.Context, patientID string) (*domain.FileStats, error) {
	args := m.Called(ctx, patientID)
	var stats *domain.FileStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.FileStats)
	}
	return stats, args.Error(1)
}

// --- Mock FileStore ---
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, patientID string, storedName string, r io.Reader) (string, int64, error) {
	args := m.Called(ctx, patientID, storedName, r)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockFileStore) Remove(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockFileStore) Exists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

// --- Test Suite ---
type MedicalFileServiceTestSuite struct {
	suite.Suite
	cfg             *config.Config
	mockFileRepo    *MockMedicalFileRepository
	mockFileStore   *MockFileStore
	mockPatientRepo *MockPatientRepository
	service         portssvc.MedicalFileSvcFacade

	patientID string
	actor     domain.Identity
}

func (suite *MedicalFileServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{MaxUploadBytes: 1024}
	suite.mockFileRepo = new(MockMedicalFileRepository)
	suite.mockFileStore = new(MockFileStore)
	suite.mockPatientRepo = new(MockPatientRepository)
	suite.service = services.NewMedicalFileService(suite.cfg, suite.mockFileRepo, suite.mockFileStore, suite.mockPatientRepo)

	suite.patientID = uuid.NewString()
	suite.actor = domain.Identity{UserID: uuid.NewString(), Username: "drkhalid", Role: domain.RoleDoctor}
}

func (suite *MedicalFileServiceTestSuite) expectPatientExists() {
	suite.mockPatientRepo.On("FindPatientByID", mock.Anything, suite.patientID).
		Return(&domain.Patient{PatientID: suite.patientID, Name: "سامر يوسف", Age: 41}, nil).Once()
}

func (suite *MedicalFileServiceTestSuite) upload(name string, content string) portssvc.FileUpload {
	return portssvc.FileUpload{
		Filename:    name,
		Size:        int64(len(content)),
		ContentType: "application/octet-stream",
		Content:     strings.NewReader(content),
		Category:    "xray",
	}
}

// --- Upload Tests ---

func (suite *MedicalFileServiceTestSuite) TestUpload_Success() {
	ctx := context.Background()
	content := "fake png bytes"
	upload := suite.upload("scan.png", content)

	suite.expectPatientExists()
	suite.mockFileStore.On("Save", ctx, suite.patientID, mock.MatchedBy(func(storedName string) bool {
		// 16 random bytes hex-encoded, then the patient ID, then the original extension.
		return strings.HasSuffix(storedName, ".png") && strings.Contains(storedName, suite.patientID)
	}), mock.Anything).Return("/uploads/patient/stored.png", int64(len(content)), nil).Once()

	var savedID string
	suite.mockFileRepo.On("SaveFile", ctx, mock.MatchedBy(func(file domain.MedicalFile) bool {
		savedID = file.FileID
		return file.PatientID == suite.patientID &&
			file.UploadedBy == suite.actor.UserID &&
			file.FileName == "scan.png" &&
			file.FileType == domain.FileTypeImage &&
			file.Category == domain.CategoryXRay &&
			file.FilePath == "/uploads/patient/stored.png"
	})).Return(nil).Once()
	suite.mockFileRepo.On("FindFileByID", ctx, mock.MatchedBy(func(id string) bool {
		return id == savedID
	})).Return(&domain.MedicalFile{FileID: "reloaded"}, nil).Once()

	file, err := suite.service.Upload(ctx, suite.patientID, suite.actor, upload)

	suite.Require().NoError(err)
	suite.Equal("reloaded", file.FileID)
	suite.mockFileRepo.AssertExpectations(suite.T())
}

func (suite *MedicalFileServiceTestSuite) TestUpload_UnknownPatient() {
	ctx := context.Background()

	suite.mockPatientRepo.On("FindPatientByID", mock.Anything, suite.patientID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Upload(ctx, suite.patientID, suite.actor, suite.upload("scan.png", "bytes"))

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockFileStore.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MedicalFileServiceTestSuite) TestUpload_ExecutableRejected() {
	ctx := context.Background()

	suite.expectPatientExists()

	_, err := suite.service.Upload(ctx, suite.patientID, suite.actor, suite.upload("scan.exe", "MZ"))

	suite.Require().ErrorIs(err, apperrors.ErrUnsupportedFileType)
	suite.mockFileStore.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MedicalFileServiceTestSuite) TestUpload_NoExtensionRejected() {
	ctx := context.Background()

	suite.expectPatientExists()

	_, err := suite.service.Upload(ctx, suite.patientID, suite.actor, suite.upload("scan", "bytes"))

	suite.Require().ErrorIs(err, apperrors.ErrUnsupportedFileType)
}

func (suite *MedicalFileServiceTestSuite) TestUpload_OversizedRejected() {
	ctx := context.Background()

	suite.expectPatientExists()

	upload := suite.upload("scan.png", "x")
	upload.Size = suite.cfg.MaxUploadBytes + 1

	_, err := suite.service.Upload(ctx, suite.patientID, suite.actor, upload)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MedicalFileServiceTestSuite) TestUpload_EmptyFileRejected() {
	ctx := context.Background()

	suite.expectPatientExists()

	_, err := suite.service.Upload(ctx, suite.patientID, suite.actor, suite.upload("scan.png", ""))

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MedicalFileServiceTestSuite) TestUpload_PathTraversalStripped() {
	ctx := context.Background()
	content := "bytes"

	suite.expectPatientExists()
	suite.mockFileStore.On("Save", ctx, suite.patientID, mock.Anything, mock.Anything).
		Return("/uploads/stored.png", int64(len(content)), nil).Once()
	suite.mockFileRepo.On("SaveFile", ctx, mock.MatchedBy(func(file domain.MedicalFile) bool {
		return file.FileName == "scan.png"
	})).Return(nil).Once()
	suite.mockFileRepo.On("FindFileByID", ctx, mock.Anything).
		Return(&domain.MedicalFile{FileID: "reloaded"}, nil).Once()

	upload := suite.upload("../../etc/scan.png", content)

	_, err := suite.service.Upload(ctx, suite.patientID, suite.actor, upload)

	suite.Require().NoError(err)
}

func (suite *MedicalFileServiceTestSuite) TestUpload_TruncatedWriteRemovesArtifact() {
	ctx := context.Background()
	content := "full content"

	suite.expectPatientExists()
	suite.mockFileStore.On("Save", ctx, suite.patientID, mock.Anything, mock.Anything).
		Return("/uploads/stored.png", int64(3), nil).Once()
	suite.mockFileStore.On("Remove", ctx, "/uploads/stored.png").Return(nil).Once()

	_, err := suite.service.Upload(ctx, suite.patientID, suite.actor, suite.upload("scan.png", content))

	suite.Require().ErrorIs(err, apperrors.ErrStorage)
	suite.mockFileRepo.AssertNotCalled(suite.T(), "SaveFile", mock.Anything, mock.Anything)
	suite.mockFileStore.AssertExpectations(suite.T())
}

func (suite *MedicalFileServiceTestSuite) TestUpload_IndexFailureRemovesArtifact() {
	ctx := context.Background()
	content := "bytes"

	suite.expectPatientExists()
	suite.mockFileStore.On("Save", ctx, suite.patientID, mock.Anything, mock.Anything).
		Return("/uploads/stored.png", int64(len(content)), nil).Once()
	suite.mockFileRepo.On("SaveFile", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()
	suite.mockFileStore.On("Remove", ctx, "/uploads/stored.png").Return(nil).Once()

	_, err := suite.service.Upload(ctx, suite.patientID, suite.actor, suite.upload("scan.png", content))

	suite.Require().Error(err)
	suite.mockFileStore.AssertExpectations(suite.T())
}

// --- Delete Tests ---

func (suite *MedicalFileServiceTestSuite) TestDeleteFile_RemovesArtifactThenRow() {
	ctx := context.Background()
	fileID := uuid.NewString()
	file := &domain.MedicalFile{FileID: fileID, FilePath: "/uploads/stored.png"}

	suite.mockFileRepo.On("FindFileByID", ctx, fileID).Return(file, nil).Once()
	suite.mockFileStore.On("Remove", ctx, file.FilePath).Return(nil).Once()
	suite.mockFileRepo.On("DeleteFile", ctx, fileID).Return(nil).Once()

	err := suite.service.DeleteFile(ctx, fileID)

	suite.Require().NoError(err)
	suite.mockFileRepo.AssertExpectations(suite.T())
}

func (suite *MedicalFileServiceTestSuite) TestDeleteFile_MissingArtifactTolerated() {
	ctx := context.Background()
	fileID := uuid.NewString()
	file := &domain.MedicalFile{FileID: fileID, FilePath: "/uploads/gone.png"}

	suite.mockFileRepo.On("FindFileByID", ctx, fileID).Return(file, nil).Once()
	suite.mockFileStore.On("Remove", ctx, file.FilePath).Return(apperrors.ErrNotFound).Once()
	suite.mockFileRepo.On("DeleteFile", ctx, fileID).Return(nil).Once()

	err := suite.service.DeleteFile(ctx, fileID)

	suite.Require().NoError(err)
}

// --- GetServableFile Tests ---

func (suite *MedicalFileServiceTestSuite) TestGetServableFile_ArtifactPresent() {
	ctx := context.Background()
	fileID := uuid.NewString()
	file := &domain.MedicalFile{FileID: fileID, FilePath: "/uploads/stored.png"}

	suite.mockFileRepo.On("FindFileByID", ctx, fileID).Return(file, nil).Once()
	suite.mockFileStore.On("Exists", file.FilePath).Return(true).Once()

	served, err := suite.service.GetServableFile(ctx, fileID)

	suite.Require().NoError(err)
	suite.Equal(fileID, served.FileID)
}

func (suite *MedicalFileServiceTestSuite) TestGetServableFile_ArtifactMissing() {
	ctx := context.Background()
	fileID := uuid.NewString()
	file := &domain.MedicalFile{FileID: fileID, FilePath: "/uploads/gone.png"}

	suite.mockFileRepo.On("FindFileByID", ctx, fileID).Return(file, nil).Once()
	suite.mockFileStore.On("Exists", file.FilePath).Return(false).Once()

	_, err := suite.service.GetServableFile(ctx, fileID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

// --- Listing / Stats Tests ---

func (suite *MedicalFileServiceTestSuite) TestListPatientFiles_UnknownCategory() {
	ctx := context.Background()

	suite.expectPatientExists()

	_, err := suite.service.ListPatientFiles(ctx, suite.patientID, "selfies")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MedicalFileServiceTestSuite) TestPatientFileStats() {
	ctx := context.Background()
	stats := &domain.FileStats{
		Total:      3,
		ByCategory: map[domain.FileCategory]int{domain.CategoryXRay: 2, domain.CategoryReport: 1},
		ByType:     map[domain.FileType]int{domain.FileTypeImage: 2, domain.FileTypePDF: 1},
		TotalSize:  4096,
	}

	suite.expectPatientExists()
	suite.mockFileRepo.On("FileStats", ctx, suite.patientID).Return(stats, nil).Once()

	got, err := suite.service.PatientFileStats(ctx, suite.patientID)

	suite.Require().NoError(err)
	suite.Equal(3, got.Total)
	suite.Equal(int64(4096), got.TotalSize)
}

// --- Update Tests ---

func (suite *MedicalFileServiceTestSuite) TestUpdateFile_ClearsDateTaken() {
	ctx := context.Background()
	fileID := uuid.NewString()
	taken := time.Now()
	file := &domain.MedicalFile{FileID: fileID, Category: domain.CategoryXRay, DateTaken: &taken}

	suite.mockFileRepo.On("FindFileByID", ctx, fileID).Return(file, nil).Once()
	suite.mockFileRepo.On("UpdateFile", ctx, mock.MatchedBy(func(updated domain.MedicalFile) bool {
		return updated.DateTaken == nil
	})).Return(nil).Once()

	empty := ""
	updated, err := suite.service.UpdateFile(ctx, fileID, dto.UpdateFileRequest{DateTaken: &empty})

	suite.Require().NoError(err)
	suite.Nil(updated.DateTaken)
}

func (suite *MedicalFileServiceTestSuite) TestUpdateFile_UnknownCategory() {
	ctx := context.Background()
	fileID := uuid.NewString()
	file := &domain.MedicalFile{FileID: fileID, Category: domain.CategoryXRay}

	suite.mockFileRepo.On("FindFileByID", ctx, fileID).Return(file, nil).Once()

	bad := "selfies"
	_, err := suite.service.UpdateFile(ctx, fileID, dto.UpdateFileRequest{Category: &bad})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockFileRepo.AssertNotCalled(suite.T(), "UpdateFile", mock.Anything, mock.Anything)
}

func TestMedicalFileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MedicalFileServiceTestSuite))
}
