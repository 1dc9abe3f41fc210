package register

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	signup "accounts/internal/core/services/sign_up"
	"accounts/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[signup.Input, signup.Result]
}

func New(
	service services.Service[signup.Input, signup.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	EmployeeID  string `json:"employee_id"`
	Password    string `json:"password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Name, validation.Required, validation.Length(0, 255)),
		validation.Field(&i.PhoneNumber, validation.Length(0, 32)),
		validation.Field(&i.EmployeeID, validation.Length(0, 64)),
		validation.Field(&i.Password, validation.Required, validation.Length(6, 68)),
	)
}

type Result struct {
	User response.User `json:"user"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		signup.Input{
			Email:       c.NewEmail(input.Email),
			Name:        input.Name,
			PhoneNumber: input.PhoneNumber,
			EmployeeID:  input.EmployeeID,
			Password:    user.RawPassword(input.Password),
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailAlreadyExists):
			response.RenderError(rw, "user with this email already exists", http.StatusConflict)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	registeredUser := response.User{}
	registeredUser.FromDomainUser(result.User)
	response.Render(rw, Result{User: registeredUser}, http.StatusCreated)
}
