package mocks

import "github.com/stretchr/testify/mock"

// MockMarkdownRenderer is a mock implementation of ports.MarkdownRenderer.
type MockMarkdownRenderer struct {
	mock.Mock
}

// NewMockMarkdownRenderer creates a new mock and registers cleanup-time
// expectation assertion.
func NewMockMarkdownRenderer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMarkdownRenderer {
	m := &MockMarkdownRenderer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Render mocks MarkdownRenderer.Render.
func (m *MockMarkdownRenderer) Render(markdown []byte) (string, error) {
	args := m.Called(markdown)
	return args.String(0), args.Error(1)
}
