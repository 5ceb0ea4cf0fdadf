package profile

import (
	"encoding/json"
	"net/http"
	"slices"

	"media04/errs"
	"media04/mq"
	"media04/structs"
	"media04/utils"

	"github.com/julienschmidt/httprouter"
)

type followPayload struct {
	FollowerEmail  string `json:"followerEmail" validate:"required"`
	FollowingEmail string `json:"followingEmail" validate:"required"`
}

// GET /api/follows/:email
func (h *Handler) GetFollows(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	follows, err := h.Store.GetFollows()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	pair := follows[ps.ByName("email")]
	if pair.Following == nil {
		pair.Following = []string{}
	}
	if pair.Followers == nil {
		pair.Followers = []string{}
	}
	utils.RespondWithJSON(w, http.StatusOK, pair)
}

// POST /api/follows
func (h *Handler) HandleFollow(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload followPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := utils.Validate.Struct(payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Both emails are required")
		return
	}

	if err := h.Follow(payload.FollowerEmail, payload.FollowingEmail); err != nil {
		status := errs.HTTPStatus(err)
		switch status {
		case http.StatusBadRequest:
			utils.RespondWithError(w, status, "Cannot follow yourself")
		default:
			utils.RespondWithError(w, status, "Server error")
		}
		return
	}

	go mq.Emit("user-followed", structs.Index{EntityType: "follow", EntityId: payload.FollowerEmail, Method: "POST", ItemId: payload.FollowingEmail})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Followed successfully"})
}

// DELETE /api/follows
func (h *Handler) HandleUnfollow(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload followPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.Unfollow(payload.FollowerEmail, payload.FollowingEmail); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	go mq.Emit("user-unfollowed", structs.Index{EntityType: "follow", EntityId: payload.FollowerEmail, Method: "DELETE", ItemId: payload.FollowingEmail})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Unfollowed successfully"})
}

// Follow inserts the edge into both directions inside one follows-document
// write. An existing edge is a no-op, never an error.
func (h *Handler) Follow(followerEmail, followingEmail string) error {
	if followerEmail == followingEmail {
		return errs.Validationf("cannot follow yourself")
	}

	return h.Store.UpdateFollows(func(follows map[string]structs.FollowPair) error {
		follower := follows[followerEmail]
		followee := follows[followingEmail]

		if !slices.Contains(follower.Following, followingEmail) {
			follower.Following = append(follower.Following, followingEmail)
		}
		if !slices.Contains(followee.Followers, followerEmail) {
			followee.Followers = append(followee.Followers, followerEmail)
		}

		follows[followerEmail] = follower
		follows[followingEmail] = followee
		return nil
	})
}

// Unfollow removes both sides; a missing edge is a no-op.
func (h *Handler) Unfollow(followerEmail, followingEmail string) error {
	return h.Store.UpdateFollows(func(follows map[string]structs.FollowPair) error {
		if follower, exists := follows[followerEmail]; exists {
			follower.Following = slices.DeleteFunc(follower.Following, func(e string) bool { return e == followingEmail })
			follows[followerEmail] = follower
		}
		if followee, exists := follows[followingEmail]; exists {
			followee.Followers = slices.DeleteFunc(followee.Followers, func(e string) bool { return e == followerEmail })
			follows[followingEmail] = followee
		}
		return nil
	})
}

func (h *Handler) IsFollowing(a, b string) (bool, error) {
	follows, err := h.Store.GetFollows()
	if err != nil {
		return false, err
	}
	return slices.Contains(follows[a].Following, b), nil
}

func (h *Handler) Following(email string) ([]string, error) {
	follows, err := h.Store.GetFollows()
	if err != nil {
		return nil, err
	}
	return follows[email].Following, nil
}

func (h *Handler) Followers(email string) ([]string, error) {
	follows, err := h.Store.GetFollows()
	if err != nil {
		return nil, err
	}
	return follows[email].Followers, nil
}
