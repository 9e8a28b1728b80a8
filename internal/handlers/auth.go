package handlers

import (
	"encoding/json"
	"net/http"

	"couple-space-backend/internal/middleware"
	"couple-space-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// AuthHandler handles account and pairing HTTP requests
type AuthHandler struct {
	userService    *services.UserService
	pairingService *services.PairingService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService *services.UserService, pairingService *services.PairingService) *AuthHandler {
	return &AuthHandler{
		userService:    userService,
		pairingService: pairingService,
	}
}

// SignupRequest is the body for creating a couple with its founding partner
type SignupRequest struct {
	CoupleName  string `json:"couple_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.CoupleName == "" || req.Email == "" || req.Password == "" || req.DisplayName == "" {
		respondError(w, "couple_name, email, password and display_name are required", http.StatusBadRequest)
		return
	}
	if len(req.Password) < 6 {
		respondError(w, "password must be at least 6 characters", http.StatusBadRequest)
		return
	}

	result, err := h.pairingService.CreateCouple(r.Context(), req.CoupleName, req.Email, req.Password, req.DisplayName)
	if err != nil {
		log.Error().
			Err(err).
			Str("email", req.Email).
			Msg("Failed to create couple")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	log.Info().
		Str("user_id", result.User.ID).
		Str("couple_id", result.Couple.ID).
		Msg("Couple created")

	respondJSON(w, http.StatusCreated, result)
}

// JoinRequest is the body for joining an existing couple by invite code
type JoinRequest struct {
	InviteCode  string `json:"invite_code"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// Join handles POST /api/v1/auth/join
func (h *AuthHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.InviteCode == "" || req.Email == "" || req.Password == "" || req.DisplayName == "" {
		respondError(w, "invite_code, email, password and display_name are required", http.StatusBadRequest)
		return
	}
	if len(req.Password) < 6 {
		respondError(w, "password must be at least 6 characters", http.StatusBadRequest)
		return
	}

	result, err := h.pairingService.JoinCouple(r.Context(), req.InviteCode, req.Email, req.Password, req.DisplayName)
	if err != nil {
		log.Error().
			Err(err).
			Str("email", req.Email).
			Str("invite_code", req.InviteCode).
			Msg("Failed to join couple")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	log.Info().
		Str("user_id", result.User.ID).
		Str("couple_id", result.Couple.ID).
		Msg("Partner joined couple")

	respondJSON(w, http.StatusOK, result)
}

// RegisterRequest is the body for creating a standalone account
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// Register handles POST /api/v1/auth/register. The account starts unpaired;
// the profile joins a couple later through the signup or join flows.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" || req.DisplayName == "" {
		respondError(w, "email, password and display_name are required", http.StatusBadRequest)
		return
	}
	if len(req.Password) < 6 {
		respondError(w, "password must be at least 6 characters", http.StatusBadRequest)
		return
	}

	user, token, err := h.userService.Register(r.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		log.Error().
			Err(err).
			Str("email", req.Email).
			Msg("Failed to register account")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	log.Info().Str("user_id", user.ID).Msg("Account registered")

	respondJSON(w, http.StatusCreated, SignInResponse{User: user, Token: token})
}

// SignInRequest is the body for signing in
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse carries the profile and session token
type SignInResponse struct {
	User  any    `json:"user"`
	Token string `json:"token"`
}

// SignIn handles POST /api/v1/auth/signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, "email and password are required", http.StatusBadRequest)
		return
	}

	user, token, err := h.userService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Warn().
			Err(err).
			Str("email", req.Email).
			Msg("Sign-in failed")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, SignInResponse{User: user, Token: token})
}

// SignOut handles POST /api/v1/auth/signout. Sessions are stateless JWTs, so
// there is nothing to revoke server-side; the client drops its token.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/v1/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	profile, err := h.userService.GetProfile(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load profile")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	response := map[string]any{"user": profile}
	if profile.CoupleID != nil {
		info, err := h.pairingService.GetCoupleInfo(ctx, *profile.CoupleID)
		if err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("Failed to load couple info")
			respondError(w, err.Error(), statusForError(err))
			return
		}
		response["couple"] = info.Couple
		response["members"] = info.Members
	}

	respondJSON(w, http.StatusOK, response)
}

// UpdateMeRequest is the body for editing the caller's profile
type UpdateMeRequest struct {
	DisplayName string  `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
}

// UpdateMe handles PATCH /api/v1/me
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var req UpdateMeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.DisplayName == "" {
		respondError(w, "display_name is required", http.StatusBadRequest)
		return
	}

	profile, err := h.userService.UpdateProfile(ctx, userID, req.DisplayName, req.AvatarURL)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to update profile")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"user": profile})
}

// GetCouple handles GET /api/v1/couple
func (h *AuthHandler) GetCouple(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)

	info, err := h.pairingService.GetCoupleInfo(ctx, coupleID)
	if err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Msg("Failed to load couple info")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, info)
}

// UpdateCoupleRequest is the body for renaming the couple
type UpdateCoupleRequest struct {
	Name string `json:"name"`
}

// UpdateCouple handles PATCH /api/v1/couple
func (h *AuthHandler) UpdateCouple(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	coupleID := middleware.GetCoupleID(ctx)

	var req UpdateCoupleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		respondError(w, "name is required", http.StatusBadRequest)
		return
	}

	couple, err := h.pairingService.RenameCouple(ctx, coupleID, req.Name)
	if err != nil {
		log.Error().Err(err).Str("couple_id", coupleID).Msg("Failed to rename couple")
		respondError(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, couple)
}
