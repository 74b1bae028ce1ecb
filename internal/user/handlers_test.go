package user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"station-service/internal/token"
)

func fakeAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := &token.Claims{UserID: "user-1", Fullname: "Puki Ben David"}
		next.ServeHTTP(w, r.WithContext(token.NewContext(r.Context(), claims)))
	})
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var data []byte
	if body != nil {
		var err error
		data, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleQueryUsers(t *testing.T) {
	store := new(MockStore)
	store.On("Query", mock.Anything, "puki").Return([]User{{Username: "puki"}}, nil)

	rec := doJSON(t, NewServer(store).Router(fakeAuth), "GET", "/?txt=puki", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var users []User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "puki", users[0].Username)
	store.AssertExpectations(t)
}

func TestHandleGetUser(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetByID", mock.Anything, "user-1").Return(&User{
			Username: "puki",
			Password: "should-never-leak",
		}, nil)

		rec := doJSON(t, NewServer(store).Router(fakeAuth), "GET", "/user-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		// the json tag keeps the hash out even if a store forgets to clear it
		var raw map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
		assert.NotContains(t, raw, "password")
		assert.Equal(t, "puki", raw["username"])
	})

	t.Run("Not Found", func(t *testing.T) {
		store := new(MockStore)
		store.On("GetByID", mock.Anything, "missing").Return(nil, ErrNotFound)

		rec := doJSON(t, NewServer(store).Router(fakeAuth), "GET", "/missing", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Failed to get user", body["err"])
	})
}

func TestHandleUpdateUser(t *testing.T) {
	t.Run("Updated", func(t *testing.T) {
		store := new(MockStore)
		oid := primitive.NewObjectID()
		store.On("Update", mock.Anything, oid.Hex(), "New Name").
			Return(&UpdatedUser{ID: oid, Fullname: "New Name"}, nil)

		rec := doJSON(t, NewServer(store).Router(fakeAuth), "PUT", "/"+oid.Hex(), map[string]string{
			"fullname": "New Name",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated UpdatedUser
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, "New Name", updated.Fullname)
		store.AssertExpectations(t)
	})

	t.Run("Missing Fullname", func(t *testing.T) {
		store := new(MockStore)
		rec := doJSON(t, NewServer(store).Router(fakeAuth), "PUT", "/user-1", map[string]string{
			"fullname": "   ",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleRemoveUser(t *testing.T) {
	store := new(MockStore)
	store.On("Remove", mock.Anything, "user-1").Return(nil)

	rec := doJSON(t, NewServer(store).Router(fakeAuth), "DELETE", "/user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var removedID string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &removedID))
	assert.Equal(t, "user-1", removedID)
}
