package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"media04/auth"
	"media04/feed"
	"media04/hashtags"
	"media04/profile"
	"media04/ratelim"
	"media04/search"
	"media04/store"
	"media04/stories"
	"media04/suggestions"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *httprouter.Router {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)

	return NewRouter(Deps{
		Auth:        auth.NewHandler(st),
		Feed:        feed.NewService(st),
		Stories:     stories.NewService(st),
		Profile:     profile.NewHandler(st),
		Suggestions: suggestions.NewHandler(st),
		Search:      search.NewHandler(st),
		Hashtags:    hashtags.NewHandler(st),
		RateLimiter: ratelim.NewRateLimiter(),
	})
}

func doJSON(t *testing.T, router *httprouter.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	r := httptest.NewRequest(method, path, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health", "/api/health"} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		var health map[string]any
		decode(t, w, &health)
		assert.Equal(t, "OK", health["status"], path)
	}
}

func TestFullScenarioOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	// signup
	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", map[string]string{
		"name": "Alice", "email": "alice@x.com", "password": "pw",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// duplicate signup is rejected
	w = doJSON(t, router, http.MethodPost, "/api/auth/signup", map[string]string{
		"name": "Alice", "email": "alice@x.com", "password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// login
	w = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "alice@x.com", "password": "pw",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var loginResp struct {
		User  map[string]any `json:"user"`
		Token string         `json:"token"`
	}
	decode(t, w, &loginResp)
	assert.NotEmpty(t, loginResp.Token)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "alice@x.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// user listing carries no credentials
	w = doJSON(t, router, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users []map[string]any
	decode(t, w, &users)
	require.Len(t, users, 1)
	assert.NotContains(t, users[0], "passwordHash")

	// create a post
	w = doJSON(t, router, http.MethodPost, "/api/posts", map[string]any{
		"authorEmail": "alice@x.com", "authorName": "Alice",
		"caption": "hello", "tags": []string{"intro"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var post map[string]any
	decode(t, w, &post)
	postID := post["id"].(string)
	require.NotEmpty(t, postID)

	// feed contains it, likes=0, comments=[]
	w = doJSON(t, router, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var posts []map[string]any
	decode(t, w, &posts)
	require.Len(t, posts, 1)
	assert.Equal(t, float64(0), posts[0]["likes"])
	assert.Empty(t, posts[0]["comments"])

	// like
	w = doJSON(t, router, http.MethodPut, "/api/posts/"+postID+"/like", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var likeResp map[string]any
	decode(t, w, &likeResp)
	assert.Equal(t, float64(1), likeResp["likes"])

	w = doJSON(t, router, http.MethodPut, "/api/posts/unknown/like", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// comment
	w = doJSON(t, router, http.MethodPost, "/api/posts/"+postID+"/comment", map[string]string{
		"author": "Bob", "text": "hi",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var comment map[string]any
	decode(t, w, &comment)
	assert.Equal(t, "Bob", comment["author"])
	assert.Equal(t, "hi", comment["text"])

	// delete by non-author is forbidden
	w = doJSON(t, router, http.MethodDelete, "/api/posts/"+postID+"?userEmail=mallory@x.com", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// delete by author works
	w = doJSON(t, router, http.MethodDelete, "/api/posts/"+postID+"?userEmail=alice@x.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/posts", nil)
	decode(t, w, &posts)
	assert.Empty(t, posts)
}

func TestStoriesOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	// no image → 400
	w := doJSON(t, router, http.MethodPost, "/api/stories", map[string]string{
		"authorEmail": "alice@x.com", "authorName": "Alice", "caption": "no pic",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/stories", map[string]string{
		"authorEmail": "alice@x.com", "authorName": "Alice",
		"authorPhoto": "pic.png", "imageData": "data:image/png;base64,AAAA",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/stories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var active []map[string]any
	decode(t, w, &active)
	require.Len(t, active, 1)
	assert.Equal(t, "alice@x.com", active[0]["authorEmail"])

	w = doJSON(t, router, http.MethodGet, "/api/stories/authors", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rail []map[string]any
	decode(t, w, &rail)
	require.Len(t, rail, 1)
	assert.Equal(t, "Alice", rail[0]["authorName"])
	assert.Equal(t, "pic.png", rail[0]["authorPhoto"])
}

func TestFollowsOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	// self-follow rejected
	w := doJSON(t, router, http.MethodPost, "/api/follows", map[string]string{
		"followerEmail": "a@x.com", "followingEmail": "a@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/follows", map[string]string{
		"followerEmail": "a@x.com", "followingEmail": "b@x.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/follows/a@x.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var pair struct {
		Following []string `json:"following"`
		Followers []string `json:"followers"`
	}
	decode(t, w, &pair)
	assert.Equal(t, []string{"b@x.com"}, pair.Following)
	assert.Empty(t, pair.Followers)

	w = doJSON(t, router, http.MethodDelete, "/api/follows", map[string]string{
		"followerEmail": "a@x.com", "followingEmail": "b@x.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/follows/b@x.com", nil)
	decode(t, w, &pair)
	assert.Empty(t, pair.Followers)
}

func TestSearchAndTrendingOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	for i, tags := range [][]string{{"nature", "coffee"}, {"coffee"}} {
		w := doJSON(t, router, http.MethodPost, "/api/posts", map[string]any{
			"authorEmail": "alice@x.com", "authorName": "Alice",
			"caption": fmt.Sprintf("post %d", i), "tags": tags,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/api/search?q=coffee&type=hashtags", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var results struct {
		Users    []any    `json:"users"`
		Posts    []any    `json:"posts"`
		Hashtags []string `json:"hashtags"`
	}
	decode(t, w, &results)
	assert.Equal(t, []string{"coffee"}, results.Hashtags)
	assert.Empty(t, results.Posts)

	w = doJSON(t, router, http.MethodGet, "/api/search?q=", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &results)
	assert.Empty(t, results.Users)
	assert.Empty(t, results.Posts)
	assert.Empty(t, results.Hashtags)

	w = doJSON(t, router, http.MethodGet, "/api/hashtags/trending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var trending []map[string]any
	decode(t, w, &trending)
	require.Len(t, trending, 2)
	assert.Equal(t, "coffee", trending[0]["tag"])
	assert.Equal(t, float64(2), trending[0]["count"])
}

func TestEditProfileOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", map[string]string{
		"name": "Alice", "email": "alice@x.com", "password": "pw",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/users/alice@x.com", map[string]string{
		"name": "Alice A.", "bio": "hello", "photo": "p.png",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		User map[string]any `json:"user"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "Alice A.", resp.User["name"])
	assert.Equal(t, "hello", resp.User["bio"])

	w = doJSON(t, router, http.MethodPut, "/api/users/nobody@x.com", map[string]string{
		"name": "X", "bio": "", "photo": "",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSuggestedUsersOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	for _, u := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		w := doJSON(t, router, http.MethodPost, "/api/auth/signup", map[string]string{
			"name": u, "email": u, "password": "pw",
		})
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := doJSON(t, router, http.MethodPost, "/api/follows", map[string]string{
		"followerEmail": "a@x.com", "followingEmail": "b@x.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/follows/a@x.com/suggested?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var suggested []map[string]any
	decode(t, w, &suggested)
	require.Len(t, suggested, 1)
	assert.Equal(t, "c@x.com", suggested[0]["email"])
}
