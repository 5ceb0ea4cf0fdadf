package hashtags

import (
	"net/http"
	"sort"

	"media04/store"
	"media04/structs"
	"media04/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{Store: s}
}

// GET /api/hashtags/trending?limit=
func (h *Handler) GetTrendingHashtags(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit := utils.ParseLimit(r, 20, 100)

	trending, err := h.Trending(limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch hashtags")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, trending)
}

// Trending counts tag usage across the whole feed, descending by count,
// ties broken by first appearance.
func (h *Handler) Trending(limit int) ([]structs.TrendingHashtag, error) {
	posts, err := h.Store.GetPosts()
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	firstSeen := map[string]int{}
	order := 0
	for _, post := range posts {
		for _, tag := range post.Tags {
			if _, seen := counts[tag]; !seen {
				firstSeen[tag] = order
				order++
			}
			counts[tag]++
		}
	}

	trending := make([]structs.TrendingHashtag, 0, len(counts))
	for tag, count := range counts {
		trending = append(trending, structs.TrendingHashtag{Tag: tag, Count: count})
	}
	sort.Slice(trending, func(i, j int) bool {
		if trending[i].Count != trending[j].Count {
			return trending[i].Count > trending[j].Count
		}
		return firstSeen[trending[i].Tag] < firstSeen[trending[j].Tag]
	})

	if limit > 0 && len(trending) > limit {
		trending = trending[:limit]
	}
	return trending, nil
}
