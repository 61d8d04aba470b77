package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Load(key string) ([]byte, error) {
	args := m.Called(key)
	if res := args.Get(0); res != nil {
		return res.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBlobStore) Save(key string, data []byte) error {
	args := m.Called(key, data)
	return args.Error(0)
}

func (m *MockBlobStore) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}
