package routes

import (
	"media04/auth"
	"media04/feed"
	"media04/hashtags"
	"media04/middleware"
	"media04/profile"
	"media04/ratelim"
	"media04/search"
	"media04/stories"
	"media04/suggestions"

	"github.com/julienschmidt/httprouter"
)

// Deps carries every handler the router mounts. main builds one for the
// real store; tests build one over t.TempDir().
type Deps struct {
	Auth        *auth.Handler
	Feed        *feed.Service
	Stories     *stories.Service
	Profile     *profile.Handler
	Suggestions *suggestions.Handler
	Search      *search.Handler
	Hashtags    *hashtags.Handler
	RateLimiter *ratelim.RateLimiter
}

// NewRouter mounts the whole API surface.
func NewRouter(d Deps) *httprouter.Router {
	router := httprouter.New()

	AddAuthRoutes(router, d.Auth, d.RateLimiter)
	AddUserRoutes(router, d.Profile)
	AddFeedRoutes(router, d.Feed)
	AddStoryRoutes(router, d.Stories)
	AddFollowRoutes(router, d.Profile, d.Suggestions)
	AddSearchRoutes(router, d.Search)
	AddHashtagRoutes(router, d.Hashtags)
	AddUtilityRoutes(router)

	return router
}

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/signup", rl.Limit(h.Signup))
	router.POST("/api/auth/login", rl.Limit(h.Login))
	router.GET("/api/auth/me", middleware.Authenticate(h.Me))
}

func AddUserRoutes(router *httprouter.Router, h *profile.Handler) {
	router.GET("/api/users", h.ListUsers)
	router.PUT("/api/users/:email", h.EditProfile)
}

func AddFeedRoutes(router *httprouter.Router, s *feed.Service) {
	router.GET("/api/posts", s.HandleListPosts)
	router.POST("/api/posts", middleware.OptionalAuth(s.HandleCreatePost))
	router.GET("/api/posts/:id", s.HandleGetPost)
	router.PUT("/api/posts/:id/like", s.HandleLikePost)
	router.POST("/api/posts/:id/comment", s.HandleAddComment)
	router.DELETE("/api/posts/:id", middleware.OptionalAuth(s.HandleDeletePost))
}

func AddStoryRoutes(router *httprouter.Router, s *stories.Service) {
	router.GET("/api/stories", s.HandleListStories)
	router.GET("/api/stories/authors", s.HandleStoryAuthors)
	router.POST("/api/stories", middleware.OptionalAuth(s.HandleCreateStory))
}

func AddFollowRoutes(router *httprouter.Router, h *profile.Handler, sg *suggestions.Handler) {
	router.GET("/api/follows/:email", h.GetFollows)
	router.GET("/api/follows/:email/suggested", sg.SuggestUsers)
	router.POST("/api/follows", h.HandleFollow)
	router.DELETE("/api/follows", h.HandleUnfollow)
}

func AddSearchRoutes(router *httprouter.Router, h *search.Handler) {
	router.GET("/api/search", h.HandleSearch)
}

func AddHashtagRoutes(router *httprouter.Router, h *hashtags.Handler) {
	router.GET("/api/hashtags/trending", h.GetTrendingHashtags)
}
