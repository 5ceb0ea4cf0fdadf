package search

import (
	"net/http"
	"sort"

	"media04/store"
	"media04/structs"
	"media04/utils"

	"github.com/julienschmidt/httprouter"
)

// -------------------------
// Types
// -------------------------

type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeUsers    Scope = "users"
	ScopePosts    Scope = "posts"
	ScopeHashtags Scope = "hashtags"
)

type Handler struct {
	Store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{Store: s}
}

// GET /api/search?q=&type=
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query().Get("q")
	scope := Scope(r.URL.Query().Get("type"))
	if scope == "" {
		scope = ScopeAll
	}

	results, err := h.Search(query, scope)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Search failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, results)
}

// Search runs a case-insensitive substring match per scope. An empty query
// matches nothing in every scope; that is a valid empty result, not an
// error.
func (h *Handler) Search(query string, scope Scope) (structs.SearchResults, error) {
	results := structs.SearchResults{
		Users:    []structs.User{},
		Posts:    []structs.Post{},
		Hashtags: []string{},
	}
	if query == "" {
		return results, nil
	}

	if scope == ScopeAll || scope == ScopeUsers {
		users, err := h.Store.GetUsers()
		if err != nil {
			return results, err
		}
		matched := []structs.User{}
		for _, user := range users {
			if utils.ContainsIgnoreCase(user.Name, query) || utils.ContainsIgnoreCase(user.Bio, query) {
				matched = append(matched, user.Sanitized())
			}
		}
		sort.Slice(matched, func(i, j int) bool { return matched[i].Email < matched[j].Email })
		results.Users = matched
	}

	if scope == ScopeAll || scope == ScopePosts || scope == ScopeHashtags {
		posts, err := h.Store.GetPosts()
		if err != nil {
			return results, err
		}

		if scope == ScopeAll || scope == ScopePosts {
			for _, post := range posts {
				if matchesPost(post, query) {
					results.Posts = append(results.Posts, post)
				}
			}
		}

		if scope == ScopeAll || scope == ScopeHashtags {
			// dedup keeps first-seen order across the feed
			seen := map[string]bool{}
			for _, post := range posts {
				for _, tag := range post.Tags {
					if seen[tag] || !utils.ContainsIgnoreCase(tag, query) {
						continue
					}
					seen[tag] = true
					results.Hashtags = append(results.Hashtags, tag)
				}
			}
		}
	}

	return results, nil
}

func matchesPost(post structs.Post, query string) bool {
	if utils.ContainsIgnoreCase(post.Caption, query) || utils.ContainsIgnoreCase(post.AuthorName, query) {
		return true
	}
	for _, tag := range post.Tags {
		if utils.ContainsIgnoreCase(tag, query) {
			return true
		}
	}
	return false
}
