package station

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the persistence surface for stations. LikeSong and UnlikeSong are
// the station-collection half of the like sequence; the user-collection half
// lives behind LikedSongsStore.
type Store interface {
	Query(ctx context.Context, filter Filter) ([]Station, error)
	GetByID(ctx context.Context, stationID string) (*Station, error)
	Add(ctx context.Context, st *Station) (*Station, error)
	Update(ctx context.Context, stationID string, patch *Station) (*Station, error)
	Remove(ctx context.Context, stationID string) error
	AddSong(ctx context.Context, stationID string, song *Song) (*Song, error)
	RemoveSong(ctx context.Context, stationID, songID string) error
	AddMessage(ctx context.Context, stationID string, msg *Message) (*Message, error)
	RemoveMessage(ctx context.Context, stationID, msgID string) (string, error)
	LikeSong(ctx context.Context, stationID, songID, userID string) (*Song, error)
	UnlikeSong(ctx context.Context, stationID, songID, userID string) error
}

type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("stations")}
}

func (s *MongoStore) Query(ctx context.Context, filter Filter) ([]Station, error) {
	criteria := buildCriteria(filter)

	opts := options.Find()
	if filter.SortField != "" {
		dir := 1
		if filter.SortDir < 0 {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: filter.SortField, Value: dir}})
	}

	cur, err := s.col.Find(ctx, criteria, opts)
	if err != nil {
		log.Printf("station store: cannot find stations: %v", err)
		return nil, err
	}
	defer cur.Close(ctx)

	stations := []Station{}
	if err := cur.All(ctx, &stations); err != nil {
		log.Printf("station store: cannot decode stations: %v", err)
		return nil, err
	}
	for i := range stations {
		stations[i].CreatedAt = stations[i].ID.Timestamp()
	}
	return stations, nil
}

func (s *MongoStore) GetByID(ctx context.Context, stationID string) (*Station, error) {
	oid, err := primitive.ObjectIDFromHex(stationID)
	if err != nil {
		log.Printf("station store: invalid station id %s: %v", stationID, err)
		return nil, err
	}

	var st Station
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&st)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("station store: cannot find station %s: %v", stationID, err)
		return nil, err
	}

	st.CreatedAt = st.ID.Timestamp()
	return &st, nil
}

func (s *MongoStore) Add(ctx context.Context, st *Station) (*Station, error) {
	if st.Songs == nil {
		st.Songs = []Song{}
	}
	res, err := s.col.InsertOne(ctx, st)
	if err != nil {
		log.Printf("station store: cannot insert station: %v", err)
		return nil, err
	}
	st.ID = res.InsertedID.(primitive.ObjectID)
	return st, nil
}

// Update applies a partial update: only present, non-empty fields of the
// patch are written, everything else is left untouched in storage.
func (s *MongoStore) Update(ctx context.Context, stationID string, patch *Station) (*Station, error) {
	oid, err := primitive.ObjectIDFromHex(stationID)
	if err != nil {
		log.Printf("station store: invalid station id %s: %v", stationID, err)
		return nil, err
	}

	set := buildUpdate(patch)
	if len(set) == 0 {
		patch.ID = oid
		return patch, nil
	}

	if _, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set}); err != nil {
		log.Printf("station store: cannot update station %s: %v", stationID, err)
		return nil, err
	}

	patch.ID = oid
	return patch, nil
}

func (s *MongoStore) Remove(ctx context.Context, stationID string) error {
	oid, err := primitive.ObjectIDFromHex(stationID)
	if err != nil {
		log.Printf("station store: invalid station id %s: %v", stationID, err)
		return err
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		log.Printf("station store: cannot remove station %s: %v", stationID, err)
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddSong appends a song unless one with the same yt_id is already in the
// list, in which case it is a no-op.
func (s *MongoStore) AddSong(ctx context.Context, stationID string, song *Song) (*Song, error) {
	oid, err := primitive.ObjectIDFromHex(stationID)
	if err != nil {
		log.Printf("station store: invalid station id %s: %v", stationID, err)
		return nil, err
	}

	criteria := bson.M{
		"_id":         oid,
		"songs.yt_id": bson.M{"$ne": song.YtID},
	}
	if _, err := s.col.UpdateOne(ctx, criteria, bson.M{"$addToSet": bson.M{"songs": song}}); err != nil {
		log.Printf("station store: cannot add song to station %s: %v", stationID, err)
		return nil, err
	}
	return song, nil
}

func (s *MongoStore) RemoveSong(ctx context.Context, stationID, songID string) error {
	oid, err := primitive.ObjectIDFromHex(stationID)
	if err != nil {
		log.Printf("station store: invalid station id %s: %v", stationID, err)
		return err
	}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$pull": bson.M{"songs": bson.M{"yt_id": songID}},
	})
	if err != nil {
		log.Printf("station store: cannot remove song %s from station %s: %v", songID, stationID, err)
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) AddMessage(ctx context.Context, stationID string, msg *Message) (*Message, error) {
	oid, err := primitive.ObjectIDFromHex(stationID)
	if err != nil {
		log.Printf("station store: invalid station id %s: %v", stationID, err)
		return nil, err
	}

	msg.ID = makeID(6)
	if _, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$push": bson.M{"msgs": msg}}); err != nil {
		log.Printf("station store: cannot add msg to station %s: %v", stationID, err)
		return nil, err
	}
	return msg, nil
}

// RemoveMessage pulls a message by id. A missing id is a no-op that leaves
// the other messages alone.
func (s *MongoStore) RemoveMessage(ctx context.Context, stationID, msgID string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(stationID)
	if err != nil {
		log.Printf("station store: invalid station id %s: %v", stationID, err)
		return "", err
	}

	if _, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$pull": bson.M{"msgs": bson.M{"id": msgID}},
	}); err != nil {
		log.Printf("station store: cannot remove msg %s from station %s: %v", msgID, stationID, err)
		return "", err
	}
	return msgID, nil
}

// LikeSong adds userID to the matching song's likedByUsers set (set-add, so
// liking twice is harmless) and returns the updated song snapshot.
func (s *MongoStore) LikeSong(ctx context.Context, stationID, songID, userID string) (*Song, error) {
	oid, err := primitive.ObjectIDFromHex(stationID)
	if err != nil {
		log.Printf("station store: invalid station id %s: %v", stationID, err)
		return nil, err
	}

	criteria := bson.M{"_id": oid, "songs.yt_id": songID}
	if _, err := s.col.UpdateOne(ctx, criteria, bson.M{
		"$addToSet": bson.M{"songs.$.likedByUsers": userID},
	}); err != nil {
		log.Printf("station store: cannot like song %s in station %s: %v", songID, stationID, err)
		return nil, err
	}

	var result struct {
		Songs []Song `bson:"songs"`
	}
	opts := options.FindOne().SetProjection(bson.M{
		"songs": bson.M{"$elemMatch": bson.M{"yt_id": songID}},
	})
	err = s.col.FindOne(ctx, criteria, opts).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("station store: cannot read liked song %s in station %s: %v", songID, stationID, err)
		return nil, err
	}
	if len(result.Songs) == 0 {
		return nil, ErrNotFound
	}
	return &result.Songs[0], nil
}

func (s *MongoStore) UnlikeSong(ctx context.Context, stationID, songID, userID string) error {
	oid, err := primitive.ObjectIDFromHex(stationID)
	if err != nil {
		log.Printf("station store: invalid station id %s: %v", stationID, err)
		return err
	}

	criteria := bson.M{"_id": oid, "songs.yt_id": songID}
	if _, err := s.col.UpdateOne(ctx, criteria, bson.M{
		"$pull": bson.M{"songs.$.likedByUsers": userID},
	}); err != nil {
		log.Printf("station store: cannot unlike song %s in station %s: %v", songID, stationID, err)
		return err
	}
	return nil
}

func buildCriteria(filter Filter) bson.M {
	criteria := bson.M{}

	if name := strings.TrimSpace(filter.Name); name != "" {
		criteria["name"] = bson.M{"$regex": regexp.QuoteMeta(name), "$options": "i"}
	}
	if len(filter.Tags) > 0 {
		criteria["tags"] = bson.M{"$in": filter.Tags}
	}
	return criteria
}

func buildUpdate(patch *Station) bson.M {
	set := bson.M{}

	if patch.Name != "" {
		set["name"] = patch.Name
	}
	if patch.Description != "" {
		set["description"] = patch.Description
	}
	if patch.CreatedBy.ImgURL != "" {
		set["createdBy.imgUrl"] = patch.CreatedBy.ImgURL
	}
	if patch.Tags != nil {
		set["tags"] = patch.Tags
	}
	return set
}

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func makeID(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i := range b {
		b[i] = idAlphabet[int(b[i])%len(idAlphabet)]
	}
	return string(b)
}
