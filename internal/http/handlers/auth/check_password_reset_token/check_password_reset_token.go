package checkpasswordresettoken

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	service "accounts/internal/core/services/check_password_reset_token"
	"accounts/internal/http/handlers/response"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UIDB64  string `json:"uidb64"`
	Token   string `json:"token"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	encodedID := chi.URLParam(r, "uidb64")
	token := chi.URLParam(r, "token")

	_, err := h.service.Run(
		r.Context(),
		service.Input{
			EncodedID: user.EncodedID(encodedID),
			Token:     user.PasswordResetToken(token),
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidPasswordResetToken):
			response.RenderError(rw, "Token is not valid, please request a new one", http.StatusUnauthorized)
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderError(rw, "User not found", http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(
		rw,
		Result{
			Success: true,
			Message: "Credentials Valid",
			UIDB64:  encodedID,
			Token:   token,
		},
		http.StatusOK,
	)
}
