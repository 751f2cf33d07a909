package http

import (
	"net/http"

	"github.com/aussiebroadwan/securestory/internal/securestory/domain"
	"github.com/aussiebroadwan/securestory/internal/securestory/service"
	"github.com/aussiebroadwan/securestory/pkg/httpx"
	"github.com/aussiebroadwan/securestory/pkg/sdk"
	"github.com/aussiebroadwan/securestory/pkg/slogx"
)

type AuthHandler struct {
	AuthService  *service.AuthService
	ResetService *service.PasswordResetService
}

// HandleRegister creates an account.
//
//	@Summary		Register a user
//	@Description	Creates an account. The first account may be created anonymously; afterwards an admin token is required.
//	@Description	The role defaults to viewer.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		sdk.RegisterRequest	true	"New account"
//	@Success		201		{object}	sdk.UserResponse
//	@Failure		400		{object}	sdk.ErrorResponse	"Invalid payload or validation failed"
//	@Failure		401		{object}	sdk.ErrorResponse	"Anonymous registration after the first account"
//	@Failure		403		{object}	sdk.ErrorResponse	"Caller is not an admin"
//	@Failure		409		{object}	sdk.ErrorResponse	"Email already exists"
//	@Router			/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req sdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeInvalidPayload(w)
		return
	}
	if err := httpx.Validate(req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := h.AuthService.Register(r.Context(), callerFrom(r), req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, sdk.UserResponse{User: toUser(user)})
}

// HandleLogin exchanges credentials for an access token.
//
//	@Summary		Log in
//	@Description	Verifies email and password and returns an HS256 access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	sdk.LoginResponse
//	@Failure		400		{object}	sdk.ErrorResponse	"Invalid payload"
//	@Failure		401		{object}	sdk.ErrorResponse	"Invalid credentials"
//	@Failure		429		{object}	sdk.ErrorResponse	"Too many attempts"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req sdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeInvalidPayload(w)
		return
	}
	if err := httpx.Validate(req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, user, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sdk.LoginResponse{Token: token, User: toUser(user)})
}

// HandleMe returns the authenticated user.
//
//	@Summary	Current user
//	@Tags		Auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	sdk.UserResponse
//	@Failure	401	{object}	sdk.ErrorResponse
//	@Router		/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthService.GetUser(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sdk.UserResponse{User: toUser(user)})
}

// HandleForgotPassword starts a password reset.
//
//	@Summary		Request a password reset
//	@Description	Mails a single-use reset link valid for 30 minutes when the email belongs to an account.
//	@Description	The response is identical whether or not the account exists.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.ForgotPasswordRequest	true	"Account email"
//	@Success		200		{object}	sdk.OKResponse
//	@Failure		429		{object}	sdk.ErrorResponse	"Too many attempts"
//	@Router			/auth/forgot_password [post].
func (h *AuthHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req sdk.ForgotPasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		slogx.FromContext(r.Context()).Warn("forgot password: unreadable body")
		httpx.WriteJSON(w, http.StatusOK, sdk.OKResponse{OK: true})
		return
	}

	// Store failures are logged by the service and never reach the client.
	_ = h.ResetService.RequestReset(r.Context(), req.Email)
	httpx.WriteJSON(w, http.StatusOK, sdk.OKResponse{OK: true})
}

// HandleResetPassword redeems a reset token.
//
//	@Summary		Reset a password
//	@Description	Sets a new password using the token from the reset email. Each token works once.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.ResetPasswordRequest	true	"Email, token and new password"
//	@Success		200		{object}	sdk.OKResponse
//	@Failure		400		{object}	sdk.ErrorResponse	"Invalid payload, Invalid token, Token already used or Token expired"
//	@Failure		429		{object}	sdk.ErrorResponse	"Too many attempts"
//	@Router			/auth/reset_password [post].
func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req sdk.ResetPasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeInvalidPayload(w)
		return
	}

	if err := h.ResetService.RedeemReset(r.Context(), req.Email, req.Token, req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sdk.OKResponse{OK: true})
}
