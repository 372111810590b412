package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/shotahirama/labshare/internal/domain/entity"
)

// MockDatasetRepository is a mock implementation of repository.DatasetRepository
type MockDatasetRepository struct {
	mock.Mock
}

func NewMockDatasetRepository(t *testing.T) *MockDatasetRepository {
	m := &MockDatasetRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDatasetRepository) Create(ctx context.Context, dataset *entity.Dataset) error {
	args := m.Called(ctx, dataset)
	return args.Error(0)
}

func (m *MockDatasetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Dataset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Dataset), args.Error(1)
}

func (m *MockDatasetRepository) Update(ctx context.Context, dataset *entity.Dataset) error {
	args := m.Called(ctx, dataset)
	return args.Error(0)
}

func (m *MockDatasetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDatasetRepository) FindByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.Dataset, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Dataset), args.Error(1)
}

func (m *MockDatasetRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*entity.Dataset, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Dataset), args.Error(1)
}

func (m *MockDatasetRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Dataset, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Dataset), args.Error(1)
}

// MockProjectRepository is a mock implementation of repository.ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func NewMockProjectRepository(t *testing.T) *MockProjectRepository {
	m := &MockProjectRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Project), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.Project, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Project), args.Error(1)
}

func (m *MockProjectRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Project, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Project), args.Error(1)
}

func (m *MockProjectRepository) FindByNameInGroup(ctx context.Context, groupID uuid.UUID, name string) (*entity.Project, error) {
	args := m.Called(ctx, groupID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Project), args.Error(1)
}

// MockDatasetFileRepository is a mock implementation of repository.DatasetFileRepository
type MockDatasetFileRepository struct {
	mock.Mock
}

func NewMockDatasetFileRepository(t *testing.T) *MockDatasetFileRepository {
	m := &MockDatasetFileRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDatasetFileRepository) Create(ctx context.Context, file *entity.DatasetFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockDatasetFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DatasetFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DatasetFile), args.Error(1)
}

func (m *MockDatasetFileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDatasetFileRepository) FindByDatasetID(ctx context.Context, datasetID uuid.UUID) ([]*entity.DatasetFile, error) {
	args := m.Called(ctx, datasetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.DatasetFile), args.Error(1)
}

func (m *MockDatasetFileRepository) SumSizeByDatasetID(ctx context.Context, datasetID uuid.UUID) (int64, error) {
	args := m.Called(ctx, datasetID)
	return args.Get(0).(int64), args.Error(1)
}
