package updateuser

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	updateuser "accounts/internal/core/services/update_user"
	"accounts/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[updateuser.Input, updateuser.Result]
}

func New(
	service services.Service[updateuser.Input, updateuser.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

// Fields are pointers so that absent keys are distinguished from empty
// values; only the provided fields are updated.
type Input struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	EmployeeID  *string `json:"employee_id"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Length(0, 255)),
		validation.Field(&i.PhoneNumber, validation.Length(0, 32)),
		validation.Field(&i.EmployeeID, validation.Length(0, 64)),
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

	serviceInput := updateuser.Input{}
	if input.Name != nil {
		serviceInput.DoNameUpdate = true
		serviceInput.Name = *input.Name
	}
	if input.PhoneNumber != nil {
		serviceInput.DoPhoneNumberUpdate = true
		serviceInput.PhoneNumber = *input.PhoneNumber
	}
	if input.EmployeeID != nil {
		serviceInput.DoEmployeeIDUpdate = true
		serviceInput.EmployeeID = *input.EmployeeID
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if errors.Is(err, user.ErrSessionDoesNotExist) || errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	updatedUser := response.User{}
	updatedUser.FromDomainUser(result.User)
	response.Render(rw, Result{User: updatedUser}, http.StatusOK)
}
