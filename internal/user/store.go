package user

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"station-service/internal/station"
)

// Store is the persistence surface for user records. AddLikedSong and
// RemoveLikedSong are the user-collection half of the station like sequence
// (they satisfy station.LikedSongsStore).
type Store interface {
	Add(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, userID, fullname string) (*UpdatedUser, error)
	Remove(ctx context.Context, userID string) error
	Query(ctx context.Context, txt string) ([]User, error)
	AddLikedSong(ctx context.Context, userID string, song station.Song) error
	RemoveLikedSong(ctx context.Context, userID, songID string) (*station.UpdateSummary, error)
}

type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("users")}
}

// EnsureIndexes enforces username uniqueness at the collection level, which
// closes the signup check-then-insert race for concurrent registrations.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Add inserts only the allow-listed fields; anything else on the input is
// discarded. The returned record still carries the password hash, callers
// strip it before transmission.
func (s *MongoStore) Add(ctx context.Context, u *User) (*User, error) {
	doc := bson.M{
		"username":          u.Username,
		"password":          u.Password,
		"fullname":          u.Fullname,
		"imgUrl":            u.ImgURL,
		"isAdmin":           u.IsAdmin,
		"likedSongsStation": u.LikedSongsStation,
	}

	res, err := s.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUsernameTaken
		}
		log.Printf("user store: cannot add user: %v", err)
		return nil, err
	}

	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

func (s *MongoStore) GetByID(ctx context.Context, userID string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		log.Printf("user store: invalid user id %s: %v", userID, err)
		return nil, err
	}

	var u User
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("user store: cannot find user %s: %v", userID, err)
		return nil, err
	}

	u.Password = ""
	u.CreatedAt = u.ID.Timestamp()
	return &u, nil
}

// GetByUsername is the exact-match lookup behind login. It keeps the
// password hash on the record and returns (nil, nil) when no such user
// exists, which callers must treat as "no such user".
func (s *MongoStore) GetByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		log.Printf("user store: cannot find user by username %s: %v", username, err)
		return nil, err
	}
	return &u, nil
}

// Update allow-lists the display name: every other field on the input is
// ignored, an intentionally narrow mutation surface.
func (s *MongoStore) Update(ctx context.Context, userID, fullname string) (*UpdatedUser, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		log.Printf("user store: invalid user id %s: %v", userID, err)
		return nil, err
	}

	updated := &UpdatedUser{ID: oid, Fullname: fullname}
	if _, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"fullname": fullname}}); err != nil {
		log.Printf("user store: cannot update user %s: %v", userID, err)
		return nil, err
	}
	return updated, nil
}

func (s *MongoStore) Remove(ctx context.Context, userID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		log.Printf("user store: invalid user id %s: %v", userID, err)
		return err
	}

	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		log.Printf("user store: cannot remove user %s: %v", userID, err)
		return err
	}
	return nil
}

func (s *MongoStore) Query(ctx context.Context, txt string) ([]User, error) {
	cur, err := s.col.Find(ctx, buildCriteria(txt))
	if err != nil {
		log.Printf("user store: cannot find users: %v", err)
		return nil, err
	}
	defer cur.Close(ctx)

	users := []User{}
	if err := cur.All(ctx, &users); err != nil {
		log.Printf("user store: cannot decode users: %v", err)
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
		users[i].CreatedAt = users[i].ID.Timestamp()
	}
	return users, nil
}

func (s *MongoStore) AddLikedSong(ctx context.Context, userID string, song station.Song) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		log.Printf("user store: invalid user id %s: %v", userID, err)
		return err
	}

	if _, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$addToSet": bson.M{"likedSongsStation.songs": song},
	}); err != nil {
		log.Printf("user store: cannot add liked song for user %s: %v", userID, err)
		return err
	}
	return nil
}

func (s *MongoStore) RemoveLikedSong(ctx context.Context, userID, songID string) (*station.UpdateSummary, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		log.Printf("user store: invalid user id %s: %v", userID, err)
		return nil, err
	}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$pull": bson.M{"likedSongsStation.songs": bson.M{"yt_id": songID}},
	})
	if err != nil {
		log.Printf("user store: cannot remove liked song for user %s: %v", userID, err)
		return nil, err
	}
	return &station.UpdateSummary{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// buildCriteria matches the text case-insensitively as a substring of either
// the username or the display name. No text means every user.
func buildCriteria(txt string) bson.M {
	txt = strings.TrimSpace(txt)
	if txt == "" {
		return bson.M{}
	}

	re := bson.M{"$regex": regexp.QuoteMeta(txt), "$options": "i"}
	return bson.M{"$or": []bson.M{
		{"username": re},
		{"fullname": re},
	}}
}
