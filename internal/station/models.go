package station

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("station not found or not permitted")

// Station is a collaborative playlist: an ordered song list, free-form tags
// and a chat-style message thread.
type Station struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Tags        []string           `bson:"tags,omitempty" json:"tags"`
	CreatedBy   Creator            `bson:"createdBy" json:"createdBy"`
	Songs       []Song             `bson:"songs" json:"songs"`
	Msgs        []Message          `bson:"msgs,omitempty" json:"msgs,omitempty"`
	CreatedAt   time.Time          `bson:"-" json:"createdAt,omitempty"`
}

// Creator is the denormalized identity stamped on stations and messages.
type Creator struct {
	ID       string `bson:"_id,omitempty" json:"_id,omitempty"`
	Fullname string `bson:"fullname,omitempty" json:"fullname,omitempty"`
	ImgURL   string `bson:"imgUrl,omitempty" json:"imgUrl,omitempty"`
	IsAdmin  bool   `bson:"isAdmin,omitempty" json:"isAdmin,omitempty"`
}

// Song is embedded in a station's song list and duplicated into the liker's
// personal liked-songs playlist. YtID is the external source identifier and
// is unique within one station's list.
type Song struct {
	YtID         string   `bson:"yt_id" json:"yt_id"`
	Title        string   `bson:"title,omitempty" json:"title,omitempty"`
	Artist       string   `bson:"artist,omitempty" json:"artist,omitempty"`
	ImgURL       string   `bson:"imgUrl,omitempty" json:"imgUrl,omitempty"`
	DurationMs   int      `bson:"durationMs,omitempty" json:"durationMs,omitempty"`
	LikedByUsers []string `bson:"likedByUsers,omitempty" json:"likedByUsers,omitempty"`
}

// Message is a chat entry on a station. The ID is assigned by the store
// right before insertion.
type Message struct {
	ID  string  `bson:"id" json:"id"`
	Txt string  `bson:"txt" json:"txt"`
	By  Creator `bson:"by" json:"by"`
}

// Filter narrows a station query. Name matches case-insensitively as a
// substring; Tags matches stations whose tag set intersects it. Results are
// unsorted unless SortField is set (SortDir -1 for descending).
type Filter struct {
	Name      string
	Tags      []string
	SortField string
	SortDir   int
}

// UpdateSummary reports how many documents a mutation touched.
type UpdateSummary struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
