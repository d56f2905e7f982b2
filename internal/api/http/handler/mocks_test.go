package handler

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Pranav7758/digital-setu-hub/internal/model"
	"github.com/Pranav7758/digital-setu-hub/internal/service"
)

// MockShareService mocks the ShareService interface
type MockShareService struct {
	mock.Mock
}

func (m *MockShareService) Unlock(ctx context.Context, userID uuid.UUID, pin string) (model.ShareResult, error) {
	args := m.Called(ctx, userID, pin)
	return args.Get(0).(model.ShareResult), args.Error(1)
}

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignUp(ctx context.Context, params service.SignUpParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) SetPIN(ctx context.Context, userID uuid.UUID, pin string) error {
	args := m.Called(ctx, userID, pin)
	return args.Error(0)
}

// MockDocumentService mocks the DocumentService interface
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, params model.CreateDocumentParams, reader io.Reader, size int64) (model.Document, error) {
	args := m.Called(ctx, params, reader, size)
	return args.Get(0).(model.Document), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, userID uuid.UUID) ([]model.Document, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentService) ViewURL(ctx context.Context, userID, documentID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID, documentID)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, userID, documentID uuid.UUID) error {
	args := m.Called(ctx, userID, documentID)
	return args.Error(0)
}

// MockChecklistService mocks the ChecklistService interface
type MockChecklistService struct {
	mock.Mock
}

func (m *MockChecklistService) Purposes() []model.Purpose {
	args := m.Called()
	return args.Get(0).([]model.Purpose)
}

func (m *MockChecklistService) Evaluate(ctx context.Context, userID uuid.UUID, purposeID string) (model.Checklist, error) {
	args := m.Called(ctx, userID, purposeID)
	return args.Get(0).(model.Checklist), args.Error(1)
}
