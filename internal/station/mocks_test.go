package station

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Query(ctx context.Context, filter Filter) ([]Station, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Station), args.Error(1)
}

func (m *MockStore) GetByID(ctx context.Context, stationID string) (*Station, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Station), args.Error(1)
}

func (m *MockStore) Add(ctx context.Context, st *Station) (*Station, error) {
	args := m.Called(ctx, st)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Station), args.Error(1)
}

func (m *MockStore) Update(ctx context.Context, stationID string, patch *Station) (*Station, error) {
	args := m.Called(ctx, stationID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Station), args.Error(1)
}

func (m *MockStore) Remove(ctx context.Context, stationID string) error {
	args := m.Called(ctx, stationID)
	return args.Error(0)
}

func (m *MockStore) AddSong(ctx context.Context, stationID string, song *Song) (*Song, error) {
	args := m.Called(ctx, stationID, song)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Song), args.Error(1)
}

func (m *MockStore) RemoveSong(ctx context.Context, stationID, songID string) error {
	args := m.Called(ctx, stationID, songID)
	return args.Error(0)
}

func (m *MockStore) AddMessage(ctx context.Context, stationID string, msg *Message) (*Message, error) {
	args := m.Called(ctx, stationID, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Message), args.Error(1)
}

func (m *MockStore) RemoveMessage(ctx context.Context, stationID, msgID string) (string, error) {
	args := m.Called(ctx, stationID, msgID)
	return args.String(0), args.Error(1)
}

func (m *MockStore) LikeSong(ctx context.Context, stationID, songID, userID string) (*Song, error) {
	args := m.Called(ctx, stationID, songID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Song), args.Error(1)
}

func (m *MockStore) UnlikeSong(ctx context.Context, stationID, songID, userID string) error {
	args := m.Called(ctx, stationID, songID, userID)
	return args.Error(0)
}

type MockLikedSongs struct {
	mock.Mock
}

func (m *MockLikedSongs) AddLikedSong(ctx context.Context, userID string, song Song) error {
	args := m.Called(ctx, userID, song)
	return args.Error(0)
}

func (m *MockLikedSongs) RemoveLikedSong(ctx context.Context, userID, songID string) (*UpdateSummary, error) {
	args := m.Called(ctx, userID, songID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UpdateSummary), args.Error(1)
}

type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) LikeSong(ctx context.Context, stationID, songID, userID string) (*Song, error) {
	args := m.Called(ctx, stationID, songID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Song), args.Error(1)
}

func (m *MockLikeService) UnlikeSong(ctx context.Context, stationID, songID, userID string) (*UpdateSummary, error) {
	args := m.Called(ctx, stationID, songID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UpdateSummary), args.Error(1)
}
