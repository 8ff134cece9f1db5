package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sphericalkat/website/internal/ports"
)

// MockHealthRegistry is a mock implementation of ports.HealthRegistry.
type MockHealthRegistry struct {
	mock.Mock
}

// NewMockHealthRegistry creates a new mock and registers cleanup-time
// expectation assertion.
func NewMockHealthRegistry(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHealthRegistry {
	m := &MockHealthRegistry{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockHealthRegistryExpecter provides a typed expectation API.
type MockHealthRegistryExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for setting expectations.
func (m *MockHealthRegistry) EXPECT() *MockHealthRegistryExpecter {
	return &MockHealthRegistryExpecter{mock: &m.Mock}
}

// Register mocks HealthRegistry.Register.
func (m *MockHealthRegistry) Register(checker ports.HealthChecker) error {
	args := m.Called(checker)

	return args.Error(0)
}

// CheckAll mocks HealthRegistry.CheckAll.
func (m *MockHealthRegistry) CheckAll(ctx context.Context) *ports.HealthResult {
	args := m.Called(ctx)

	var result *ports.HealthResult
	if v := args.Get(0); v != nil {
		result = v.(*ports.HealthResult)
	}

	return result
}

// MockHealthRegistryRegisterCall wraps a Register expectation.
type MockHealthRegistryRegisterCall struct {
	*mock.Call
}

// Register sets an expectation on Register.
func (e *MockHealthRegistryExpecter) Register(checker any) *MockHealthRegistryRegisterCall {
	return &MockHealthRegistryRegisterCall{Call: e.mock.On("Register", checker)}
}

// Return sets the return value for the Register expectation.
func (c *MockHealthRegistryRegisterCall) Return(err error) *MockHealthRegistryRegisterCall {
	c.Call.Return(err)
	return c
}

// MockHealthRegistryCheckAllCall wraps a CheckAll expectation.
type MockHealthRegistryCheckAllCall struct {
	*mock.Call
}

// CheckAll sets an expectation on CheckAll.
func (e *MockHealthRegistryExpecter) CheckAll(ctx any) *MockHealthRegistryCheckAllCall {
	return &MockHealthRegistryCheckAllCall{Call: e.mock.On("CheckAll", ctx)}
}

// Return sets the return value for the CheckAll expectation.
func (c *MockHealthRegistryCheckAllCall) Return(result *ports.HealthResult) *MockHealthRegistryCheckAllCall {
	c.Call.Return(result)
	return c
}

// Maybe marks the CheckAll expectation as optional.
func (c *MockHealthRegistryCheckAllCall) Maybe() *MockHealthRegistryCheckAllCall {
	c.Call.Maybe()
	return c
}
