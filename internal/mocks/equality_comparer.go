// Package mocks provide gomock doubles for the collaborator interfaces of bcl.
// The files follow mockgen's layout, but are maintained by hand,
// because mockgen v1.6 can't render generic interfaces.
// The primary goal for this pkg to test rainy paths, like an equality comparer that lies about its hash codes.
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockEqualityComparer is a mock of EqualityComparer interface.
type MockEqualityComparer[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockEqualityComparerMockRecorder[T]
}

// MockEqualityComparerMockRecorder is the mock recorder for MockEqualityComparer.
type MockEqualityComparerMockRecorder[T any] struct {
	mock *MockEqualityComparer[T]
}

// NewMockEqualityComparer creates a new mock instance.
func NewMockEqualityComparer[T any](ctrl *gomock.Controller) *MockEqualityComparer[T] {
	mock := &MockEqualityComparer[T]{ctrl: ctrl}
	mock.recorder = &MockEqualityComparerMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEqualityComparer[T]) EXPECT() *MockEqualityComparerMockRecorder[T] {
	return m.recorder
}

// Equals mocks base method.
func (m *MockEqualityComparer[T]) Equals(a, b T) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Equals", a, b)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Equals indicates an expected call of Equals.
func (mr *MockEqualityComparerMockRecorder[T]) Equals(a, b interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Equals", reflect.TypeOf((*MockEqualityComparer[T])(nil).Equals), a, b)
}

// HashCode mocks base method.
func (m *MockEqualityComparer[T]) HashCode(v T) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HashCode", v)
	ret0, _ := ret[0].(int)
	return ret0
}

// HashCode indicates an expected call of HashCode.
func (mr *MockEqualityComparerMockRecorder[T]) HashCode(v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HashCode", reflect.TypeOf((*MockEqualityComparer[T])(nil).HashCode), v)
}
