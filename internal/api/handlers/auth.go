package handlers

import (
	"log"
	"net/http"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"vacation-planner-service/internal/api/dto"
	"vacation-planner-service/internal/domain"
	"vacation-planner-service/internal/platform/token"
	"vacation-planner-service/internal/ports"
)

const minPasswordLength = 8

type AuthHandler struct {
	Users  ports.UserRepository
	Tokens *token.Manager
}

// Signup creates an account and returns a signed access token.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid email address")
		return
	}
	if len(req.Password) < minPasswordLength {
		writeError(w, r, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	existing, err := h.Users.GetUserByEmail(r.Context(), email)
	if err != nil {
		log.Printf("signup lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing != nil {
		writeError(w, r, http.StatusConflict, "email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("signup hash failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	user := &domain.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		HomeBase:     strings.TrimSpace(req.HomeBase),
	}
	if err := h.Users.CreateUser(r.Context(), user); err != nil {
		log.Printf("signup create failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	signed, err := h.Tokens.Issue(user.UserID, user.Name)
	if err != nil {
		log.Printf("signup token failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.AuthResponse{
		Token:  signed,
		UserID: user.UserID,
		Name:   user.Name,
	})
}

// Login verifies credentials and returns a signed access token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		writeError(w, r, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.Users.GetUserByEmail(r.Context(), email)
	if err != nil {
		log.Printf("login lookup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if user == nil {
		writeError(w, r, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, r, http.StatusUnauthorized, "invalid email or password")
		return
	}

	signed, err := h.Tokens.Issue(user.UserID, user.Name)
	if err != nil {
		log.Printf("login token failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.AuthResponse{
		Token:  signed,
		UserID: user.UserID,
		Name:   user.Name,
	})
}
