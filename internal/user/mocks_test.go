package user

import (
	"context"

	"github.com/stretchr/testify/mock"

	"station-service/internal/station"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Add(ctx context.Context, u *User) (*User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockStore) GetByID(ctx context.Context, userID string) (*User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockStore) GetByUsername(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockStore) Update(ctx context.Context, userID, fullname string) (*UpdatedUser, error) {
	args := m.Called(ctx, userID, fullname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UpdatedUser), args.Error(1)
}

func (m *MockStore) Remove(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockStore) Query(ctx context.Context, txt string) ([]User, error) {
	args := m.Called(ctx, txt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockStore) AddLikedSong(ctx context.Context, userID string, song station.Song) error {
	args := m.Called(ctx, userID, song)
	return args.Error(0)
}

func (m *MockStore) RemoveLikedSong(ctx context.Context, userID, songID string) (*station.UpdateSummary, error) {
	args := m.Called(ctx, userID, songID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.UpdateSummary), args.Error(1)
}
