package stories

import (
	"encoding/json"
	"net/http"

	"media04/errs"
	"media04/mq"
	"media04/structs"
	"media04/utils"

	"github.com/julienschmidt/httprouter"
)

type storyPayload struct {
	AuthorEmail string `json:"authorEmail" validate:"required,email"`
	AuthorName  string `json:"authorName" validate:"required"`
	AuthorPhoto string `json:"authorPhoto"`
	ImageData   string `json:"imageData" validate:"required"`
	Caption     string `json:"caption"`
}

// GET /api/stories
func (s *Service) HandleListStories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	active, err := s.ListActive()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch stories")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, active)
}

// GET /api/stories/authors
func (s *Service) HandleStoryAuthors(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	active, err := s.ListActive()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch stories")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, GroupByAuthor(active))
}

// POST /api/stories
func (s *Service) HandleCreateStory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload storyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := utils.Validate.Struct(payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Story needs an image")
		return
	}

	story, err := s.CreateStory(payload.AuthorEmail, payload.AuthorName, payload.AuthorPhoto, payload.ImageData, payload.Caption)
	if err != nil {
		utils.RespondWithError(w, errs.HTTPStatus(err), "Story needs an image")
		return
	}

	go mq.Emit("story-created", structs.Index{EntityType: "story", EntityId: story.ID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusOK, story)
}
