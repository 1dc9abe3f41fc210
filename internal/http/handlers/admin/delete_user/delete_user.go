package deleteuser

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	deleteuser "accounts/internal/core/services/delete_user"
	"accounts/internal/http/handlers/response"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[deleteuser.Input, deleteuser.Result]
}

func New(
	service services.Service[deleteuser.Input, deleteuser.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Success string `json:"success"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawUserID := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil || userID <= 0 {
		response.RenderError(rw, "User not found", http.StatusNotFound)
		return
	}

	_, err = h.service.Run(
		r.Context(),
		deleteuser.Input{UserID: user.ID(userID)},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrSessionDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderError(rw, "User not found", http.StatusNotFound)
		case errors.Is(err, user.ErrPermissionDenied):
			response.RenderForbidden(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, Result{Success: "User deleted successfully"}, http.StatusOK)
}
