package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/TedMN/mplsjrdevs/internal/delivery/http/helpers"
	"github.com/TedMN/mplsjrdevs/internal/domain"
)

// TokenRequest is the request body for POST /auth/token.
type TokenRequest struct {
	Password string `json:"password"`
}

// Validate implements Validator.
func (r TokenRequest) Validate() []string {
	var errs []string
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// TokenResponse is the body of a successful POST /auth/token.
type TokenResponse struct {
	Token string `json:"token"`
}

// TokenSuccessResponse is the success response envelope for POST /auth/token (200).
type TokenSuccessResponse struct {
	Data  TokenResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{Logger: logger, Service: svc}
}

// IssueToken godoc
// @Summary Exchange the admin password for a token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body TokenRequest true "Admin password"
// @Success 200 {object} controllers.TokenSuccessResponse "data.token is a bearer token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/token [post]
func (c *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.Login(r.Context(), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid credentials")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, TokenResponse{Token: token})
}
