package mocks

import (
	"context"
	"testing"
)

// MockTransactionManager is a pass-through implementation of repository.TransactionManager.
// It executes the callback directly without a real transaction.
type MockTransactionManager struct{}

func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	t.Helper()
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
