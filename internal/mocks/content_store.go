// Package mocks provides testify mocks for port interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockContentStore is a mock implementation of ports.ContentStore.
type MockContentStore struct {
	mock.Mock
}

// NewMockContentStore creates a new mock and registers cleanup-time
// expectation assertion.
func NewMockContentStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockContentStore {
	m := &MockContentStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// List mocks ContentStore.List.
func (m *MockContentStore) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	var names []string
	if v := args.Get(0); v != nil {
		names = v.([]string)
	}

	return names, args.Error(1)
}

// Get mocks ContentStore.Get.
func (m *MockContentStore) Get(ctx context.Context, name string) ([]byte, error) {
	args := m.Called(ctx, name)

	var data []byte
	if v := args.Get(0); v != nil {
		data = v.([]byte)
	}

	return data, args.Error(1)
}
