package listusers

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	listusers "accounts/internal/core/services/list_users"
	"accounts/internal/http/handlers/response"
	"errors"
	"net/http"
)

type Handler struct {
	service services.Service[listusers.Input, listusers.Result]
}

func New(
	service services.Service[listusers.Input, listusers.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Users []response.User `json:"users"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listusers.Input{})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrSessionDoesNotExist), errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, user.ErrPermissionDenied):
			response.RenderForbidden(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	users := make([]response.User, 0, len(result.Users))
	for _, domainUser := range result.Users {
		u := response.User{}
		u.FromDomainUser(domainUser)
		users = append(users, u)
	}
	response.Render(rw, Result{Users: users}, http.StatusOK)
}
