package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/userdirectory/internal/model"
	"github.com/dtroode/userdirectory/internal/view"
)

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) ReplaceAll(users []model.User) { m.Called(users) }
func (m *MockUserStore) Add(user model.User)           { m.Called(user) }
func (m *MockUserStore) Update(user model.User)        { m.Called(user) }
func (m *MockUserStore) Delete(id int64)               { m.Called(id) }

// MockListRenderer mocks the ListRenderer interface
type MockListRenderer struct {
	mock.Mock
}

func (m *MockListRenderer) Render() view.ListPage {
	args := m.Called()
	return args.Get(0).(view.ListPage)
}

func (m *MockListRenderer) Watch(ctx context.Context, send func(view.ListPage) error) error {
	args := m.Called(ctx, send)
	return args.Error(0)
}

// MockDetailRenderer mocks the DetailRenderer interface
type MockDetailRenderer struct {
	mock.Mock
}

func (m *MockDetailRenderer) Render(rawID string) view.DetailPage {
	args := m.Called(rawID)
	return args.Get(0).(view.DetailPage)
}
