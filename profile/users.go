package profile

import (
	"encoding/json"
	"net/http"
	"sort"

	"media04/errs"
	"media04/mq"
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

type editPayload struct {
	Name  string `json:"name"`
	Bio   string `json:"bio"`
	Photo string `json:"photo"`
}

// GET /api/users — every account, credentials stripped, ascending email.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	users, err := h.Store.GetUsers()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	public := []structs.User{}
	for _, user := range users {
		public = append(public, user.Sanitized())
	}
	sort.Slice(public, func(i, j int) bool { return public[i].Email < public[j].Email })

	utils.RespondWithJSON(w, http.StatusOK, public)
}

// PUT /api/users/:email — replaces name/bio/photo as a triple; email and id
// never change.
func (h *Handler) EditProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := ps.ByName("email")

	var payload editPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	updated, err := h.UpdateProfile(email, payload.Name, payload.Bio, payload.Photo)
	if err != nil {
		utils.RespondWithError(w, errs.HTTPStatus(err), "User not found")
		return
	}

	go mq.Emit("profile-edited", structs.Index{EntityType: "profile", EntityId: email, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"user": updated.Sanitized()})
}

func (h *Handler) UpdateProfile(email, name, bio, photo string) (structs.User, error) {
	var updated structs.User
	err := h.Store.UpdateUsers(func(users map[string]structs.User) error {
		user, exists := users[email]
		if !exists {
			return errs.NotFoundf("user %s", email)
		}
		user.Name = name
		user.Bio = bio
		user.Photo = photo
		users[email] = user
		updated = user
		return nil
	})
	if err != nil {
		return structs.User{}, err
	}
	return updated, nil
}
