package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"media04/errs"
	"media04/globals"
	"media04/middleware"
	"media04/mq"
	"media04/store"
	"media04/structs"
	"media04/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

const tokenTTL = 12 * time.Hour

type Handler struct {
	Store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{Store: s}
}

type signupPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload signupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := utils.Validate.Struct(payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	user, err := h.SignupUser(payload.Name, payload.Email, payload.Password)
	if err != nil {
		utils.RespondWithError(w, errs.HTTPStatus(err), userFacing(err, "Email already exists"))
		return
	}

	token, err := generateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	go mq.Emit("user-registered", structs.Index{EntityType: "user", EntityId: user.Email, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"user": user.Sanitized(), "token": token})
}

// POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := h.LoginUser(payload.Email, payload.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := generateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"user": user.Sanitized(), "token": token})
}

// GET /api/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email, ok := r.Context().Value(globals.EmailKey).(string)
	if !ok || email == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	users, err := h.Store.GetUsers()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}
	user, exists := users[email]
	if !exists {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"user": user.Sanitized()})
}

// SignupUser inserts a new account. The duplicate check and the insert run
// inside one users-collection write, so two racing signups cannot both win.
func (h *Handler) SignupUser(name, email, password string) (structs.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user := structs.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
		// stored verbatim; hashing is out of scope for this app
		PasswordHash: password,
		Photo:        "",
		Bio:          "",
		CreatedAt:    time.Now().UTC(),
	}

	err := h.Store.UpdateUsers(func(users map[string]structs.User) error {
		if _, exists := users[email]; exists {
			return errs.Conflictf("signup %s", email)
		}
		users[email] = user
		return nil
	})
	if err != nil {
		return structs.User{}, err
	}

	log.Printf("Registered user: %s", email)
	return user, nil
}

// LoginUser checks the stored credential. Callers only learn that the pair
// was invalid, not which half.
func (h *Handler) LoginUser(email, password string) (structs.User, error) {
	users, err := h.Store.GetUsers()
	if err != nil {
		return structs.User{}, err
	}

	user, exists := users[strings.ToLower(strings.TrimSpace(email))]
	if !exists || user.PasswordHash != password {
		return structs.User{}, errs.Authorizationf("login %s", email)
	}
	return user, nil
}

func generateToken(user structs.User) (string, error) {
	claims := &middleware.Claims{
		Email:  user.Email,
		Name:   user.Name,
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

// userFacing picks the message for expected failures and hides the rest.
func userFacing(err error, conflictMsg string) string {
	switch errs.HTTPStatus(err) {
	case http.StatusBadRequest:
		return conflictMsg
	case http.StatusInternalServerError:
		return "Server error"
	default:
		return err.Error()
	}
}
