package user

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"station-service/internal/station"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// User is an account record. The password hash never leaves the process:
// reads clear it and the JSON tag keeps it out of every response.
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username          string             `bson:"username" json:"username"`
	Password          string             `bson:"password,omitempty" json:"-"`
	Fullname          string             `bson:"fullname,omitempty" json:"fullname"`
	ImgURL            string             `bson:"imgUrl,omitempty" json:"imgUrl,omitempty"`
	IsAdmin           bool               `bson:"isAdmin" json:"isAdmin"`
	LikedSongsStation LikedSongsStation  `bson:"likedSongsStation" json:"likedSongsStation"`
	CreatedAt         time.Time          `bson:"-" json:"createdAt,omitempty"`
}

// LikedSongsStation is the station-shaped playlist embedded in every user
// record, holding the songs they liked across all stations.
type LikedSongsStation struct {
	YtID      string          `bson:"yt_id" json:"yt_id"`
	Name      string          `bson:"name" json:"name"`
	CreatedBy station.Creator `bson:"createdBy" json:"createdBy"`
	Songs     []station.Song  `bson:"songs" json:"songs"`
}

const (
	likedSongsName   = "Liked Songs"
	likedSongsID     = "THE-CAKE-IS-A-LIE"
	likedSongsImgURL = "https://res.cloudinary.com/dsw8rfwb7/image/upload/v1740086846/ohum8u1qpefvb0lmwgkt.jpg"
)

// NewLikedSongsStation returns the empty, well-known shape every account
// starts with.
func NewLikedSongsStation() LikedSongsStation {
	return LikedSongsStation{
		YtID: likedSongsID,
		Name: likedSongsName,
		CreatedBy: station.Creator{
			ImgURL: likedSongsImgURL,
		},
		Songs: []station.Song{},
	}
}

// UpdatedUser is what Update returns: the carried-over identifier plus the
// one field the update surface allows.
type UpdatedUser struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Fullname string             `bson:"fullname" json:"fullname"`
}
