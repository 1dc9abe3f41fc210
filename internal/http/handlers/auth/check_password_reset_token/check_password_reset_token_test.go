package checkpasswordresettoken

import (
	"accounts/internal/core/domain/user"
	service "accounts/internal/core/services/check_password_reset_token"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	result.User = user.User{ID: user.ID(42)}
	return result, nil
}

func TestCheckPasswordResetTokenHandler(t *testing.T) {
	cases := []struct {
		id             string
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			id:             "valid token",
			expectedStatus: http.StatusOK,
			expectedBody:   "Credentials Valid",
		},
		{
			id:             "invalid token",
			serviceErr:     user.ErrInvalidPasswordResetToken,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Token is not valid, please request a new one",
		},
		{
			id:             "user not found",
			serviceErr:     user.ErrUserDoesNotExist,
			expectedStatus: http.StatusNotFound,
			expectedBody:   "User not found",
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			url := fmt.Sprintf("/password-reset-confirm/%s/%s/", "dXNlci00Mg", "test-token")
			req, err := http.NewRequest("GET", url, nil)
			if err != nil {
				t.Fatal(err)
			}

			stub := &stubService{err: testcase.serviceErr}
			router := chi.NewRouter()
			router.Method(http.MethodGet, "/password-reset-confirm/{uidb64}/{token}/", New(stub))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), testcase.expectedBody)
			if stub.input != nil {
				assert.Equal(t, user.EncodedID("dXNlci00Mg"), stub.input.EncodedID)
				assert.Equal(t, user.PasswordResetToken("test-token"), stub.input.Token)
			}
		})
	}
}
