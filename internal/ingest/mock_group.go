package ingest

import "github.com/stretchr/testify/mock"

// MockGroup is a mock implementation of the Group interface.
type MockGroup struct {
	mock.Mock
}

// Dataset mocks the Dataset method.
func (m *MockGroup) Dataset(path string) (Dataset, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(Dataset), args.Error(1)
}

// Attribute mocks the Attribute method.
func (m *MockGroup) Attribute(path string) (Attribute, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(Attribute), args.Error(1)
}

// Group mocks the Group method.
func (m *MockGroup) Group(name string) (Group, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(Group), args.Error(1)
}

// ExpectDataset sets up an expectation for Dataset.
func (m *MockGroup) ExpectDataset(path string, ds Dataset, err error) *mock.Call {
	return m.On("Dataset", path).Return(ds, err)
}

// ExpectAttribute sets up an expectation for Attribute.
func (m *MockGroup) ExpectAttribute(path string, attr Attribute, err error) *mock.Call {
	return m.On("Attribute", path).Return(attr, err)
}

// ExpectGroup sets up an expectation for Group.
func (m *MockGroup) ExpectGroup(name string, g Group, err error) *mock.Call {
	return m.On("Group", name).Return(g, err)
}

// MockDataset is a mock implementation of the Dataset interface.
type MockDataset struct {
	mock.Mock
	name string
}

// NewMockDataset builds a MockDataset that reports name from Name().
func NewMockDataset(name string) *MockDataset {
	return &MockDataset{name: name}
}

func (m *MockDataset) Name() string { return m.name }

func (m *MockDataset) Float64() ([]float64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *MockDataset) Int64() ([]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockAttribute is a mock implementation of the Attribute interface.
type MockAttribute struct {
	mock.Mock
	name string
}

// NewMockAttribute builds a MockAttribute that reports name from Name().
func NewMockAttribute(name string) *MockAttribute {
	return &MockAttribute{name: name}
}

func (m *MockAttribute) Name() string { return m.name }

func (m *MockAttribute) Float64() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockAttribute) Int64() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttribute) String() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
