package routes

import (
	"net/http"

	"media04/utils"

	"github.com/julienschmidt/httprouter"
)

func health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status":  "OK",
		"message": "Media04 Backend is running! 🌟",
	})
}

func AddUtilityRoutes(router *httprouter.Router) {
	router.GET("/health", health)
	router.GET("/api/health", health)
}
