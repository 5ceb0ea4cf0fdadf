package suggestions

import (
	"net/http"
	"slices"
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

// GET /api/follows/:email/suggested?limit=
func (h *Handler) SuggestUsers(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	limit := utils.ParseLimit(r, 10, 100)

	suggested, err := h.SuggestedUsers(ps.ByName("email"), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch suggestions")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, suggested)
}

// SuggestedUsers returns everyone except the caller and accounts already
// followed, truncated to limit. There is no ranking; the map collection has
// no storage order, so ascending email keeps the result stable.
func (h *Handler) SuggestedUsers(currentEmail string, limit int) ([]structs.User, error) {
	users, err := h.Store.GetUsers()
	if err != nil {
		return nil, err
	}
	follows, err := h.Store.GetFollows()
	if err != nil {
		return nil, err
	}

	excluded := append(slices.Clone(follows[currentEmail].Following), currentEmail)

	emails := make([]string, 0, len(users))
	for email := range users {
		if !slices.Contains(excluded, email) {
			emails = append(emails, email)
		}
	}
	sort.Strings(emails)

	suggested := []structs.User{}
	for _, email := range emails {
		if limit > 0 && len(suggested) >= limit {
			break
		}
		suggested = append(suggested, users[email].Sanitized())
	}
	return suggested, nil
}
