package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildCriteria(t *testing.T) {
	t.Run("Empty Text Matches Everyone", func(t *testing.T) {
		assert.Equal(t, bson.M{}, buildCriteria(""))
		assert.Equal(t, bson.M{}, buildCriteria("   "))
	})

	t.Run("Text Searches Username And Fullname", func(t *testing.T) {
		re := bson.M{"$regex": "puki", "$options": "i"}
		assert.Equal(t, bson.M{"$or": []bson.M{
			{"username": re},
			{"fullname": re},
		}}, buildCriteria("puki"))
	})

	t.Run("Regex Metacharacters Are Escaped", func(t *testing.T) {
		criteria := buildCriteria("a.b")
		re := criteria["$or"].([]bson.M)[0]["username"].(bson.M)
		assert.Equal(t, `a\.b`, re["$regex"])
	})
}

func TestNewLikedSongsStation(t *testing.T) {
	st := NewLikedSongsStation()

	assert.Equal(t, "THE-CAKE-IS-A-LIE", st.YtID)
	assert.Equal(t, "Liked Songs", st.Name)
	assert.NotEmpty(t, st.CreatedBy.ImgURL)
	// songs must be an empty list, not nil, so it serializes as []
	assert.NotNil(t, st.Songs)
	assert.Empty(t, st.Songs)
}
