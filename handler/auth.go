package handler

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	gymapi "github.com/ethiofit/gym-api"
	"github.com/ethiofit/gym-api/auth"
)

// errInvalidCredentials is deliberately the same for an unknown email and a
// wrong password, so login responses cannot be used to enumerate accounts.
var errInvalidCredentials = errors.New("Invalid Credentials")

type AuthHandler struct {
	accounts gymapi.AccountService
	tokens   *auth.Tokens
	log      *zap.SugaredLogger
}

func NewAuthHandler(accounts gymapi.AccountService, tokens *auth.Tokens, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		tokens:   tokens,
		log:      log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

func (ah AuthHandler) Login(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := decode(r, &req); err != nil {
		respondErr(ctx, rw, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		respondErr(ctx, rw, http.StatusBadRequest, errors.New("email and password are required"))
		return
	}

	account, err := ah.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gymapi.ErrAccountNotFound) {
			respondErr(ctx, rw, http.StatusBadRequest, errInvalidCredentials)
			return
		}
		ah.log.Errorw("login", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, errInternal)
		return
	}

	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		respondErr(ctx, rw, http.StatusBadRequest, errInvalidCredentials)
		return
	}

	token, err := ah.tokens.Issue(account.ID)
	if err != nil {
		ah.log.Errorw("login", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, errInternal)
		return
	}

	respond(ctx, rw, http.StatusOK, loginResponse{Success: true, Token: token})
}
