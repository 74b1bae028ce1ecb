package station

import "context"

// LikedSongsStore is the user-collection half of the like sequence: the
// liker's personal liked-songs playlist.
type LikedSongsStore interface {
	AddLikedSong(ctx context.Context, userID string, song Song) error
	RemoveLikedSong(ctx context.Context, userID, songID string) (*UpdateSummary, error)
}

// Likes couples the two collections a like touches: the song's likedByUsers
// set on the station and the liker's personal playlist on the user record.
//
// The two writes are not transactional. A failure between them leaves the
// station and the user's liked list disagreeing about membership, and
// concurrent like/unlike on the same (station, song, user) triple can land
// in either order per collection. Both halves are idempotent set operations,
// so repeating the whole call converges; nothing here compensates or retries.
type Likes struct {
	stations Store
	liked    LikedSongsStore
}

func NewLikes(stations Store, liked LikedSongsStore) *Likes {
	return &Likes{stations: stations, liked: liked}
}

// LikeSong updates the station first, then appends the updated song snapshot
// to the user's liked-songs playlist. The snapshot is returned.
func (l *Likes) LikeSong(ctx context.Context, stationID, songID, userID string) (*Song, error) {
	song, err := l.stations.LikeSong(ctx, stationID, songID, userID)
	if err != nil {
		return nil, err
	}
	if err := l.liked.AddLikedSong(ctx, userID, *song); err != nil {
		return nil, err
	}
	return song, nil
}

// UnlikeSong removes the user from the station song's likedByUsers set, then
// drops the song from the user's liked-songs playlist. It reports the result
// of the user-side removal.
func (l *Likes) UnlikeSong(ctx context.Context, stationID, songID, userID string) (*UpdateSummary, error) {
	if err := l.stations.UnlikeSong(ctx, stationID, songID, userID); err != nil {
		return nil, err
	}
	return l.liked.RemoveLikedSong(ctx, userID, songID)
}
