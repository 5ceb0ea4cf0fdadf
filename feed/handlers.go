package feed

import (
	"encoding/json"
	"net/http"

	"media04/errs"
	"media04/globals"
	"media04/mq"
	"media04/structs"
	"media04/utils"

	"github.com/julienschmidt/httprouter"
)

type postPayload struct {
	AuthorEmail string   `json:"authorEmail" validate:"required,email"`
	AuthorName  string   `json:"authorName" validate:"required"`
	Caption     string   `json:"caption" validate:"required_without=ImageData"`
	Tags        []string `json:"tags"`
	ImageData   string   `json:"imageData"`
}

type commentPayload struct {
	Author string `json:"author" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

// GET /api/posts
func (s *Service) HandleListPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	posts, err := s.ListPosts()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, posts)
}

// GET /api/posts/:id
func (s *Service) HandleGetPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	post, err := s.GetPost(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, errs.HTTPStatus(err), "Post not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, post)
}

// POST /api/posts
func (s *Service) HandleCreatePost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload postPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := utils.Validate.Struct(payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Post needs a caption or an image")
		return
	}

	post, err := s.CreatePost(payload.AuthorEmail, payload.AuthorName, payload.Caption, payload.Tags, payload.ImageData)
	if err != nil {
		utils.RespondWithError(w, errs.HTTPStatus(err), "Post needs a caption or an image")
		return
	}

	go mq.Emit("post-created", structs.Index{EntityType: "feedpost", EntityId: post.ID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusOK, post)
}

// PUT /api/posts/:id/like
func (s *Service) HandleLikePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	likes, err := s.LikePost(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, errs.HTTPStatus(err), "Post not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"likes": likes})
}

// POST /api/posts/:id/comment
func (s *Service) HandleAddComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payload commentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := utils.Validate.Struct(payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Comment cannot be empty")
		return
	}

	comment, err := s.AddComment(ps.ByName("id"), payload.Author, payload.Text)
	if err != nil {
		status := errs.HTTPStatus(err)
		if status == http.StatusNotFound {
			utils.RespondWithError(w, status, "Post not found")
		} else {
			utils.RespondWithError(w, status, "Comment cannot be empty")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, comment)
}

// DELETE /api/posts/:id?userEmail=…
// Falls back to the bearer token's email when the query param is absent.
func (s *Service) HandleDeletePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	requester := r.URL.Query().Get("userEmail")
	if requester == "" {
		if email, ok := r.Context().Value(globals.EmailKey).(string); ok {
			requester = email
		}
	}

	id := ps.ByName("id")
	if err := s.DeletePost(id, requester); err != nil {
		status := errs.HTTPStatus(err)
		switch status {
		case http.StatusForbidden:
			utils.RespondWithError(w, status, "Not authorized")
		case http.StatusNotFound:
			utils.RespondWithError(w, status, "Post not found")
		default:
			utils.RespondWithError(w, status, "Server error")
		}
		return
	}

	go mq.Emit("post-deleted", structs.Index{EntityType: "feedpost", EntityId: id, Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Post deleted"})
}
