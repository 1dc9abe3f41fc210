package confirmpasswordreset

import (
	"accounts/internal/core/domain/user"
	resetpassword "accounts/internal/core/services/reset_password"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *resetpassword.Input
}

func (s *stubService) Run(ctx context.Context, input resetpassword.Input) (result resetpassword.Result, err error) {
	s.input = &input
	return result, s.err
}

func TestConfirmPasswordResetHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			id:             "success",
			body:           `{"uidb64": "dXNlci00Mg", "token": "test-token", "new_password": "new-password"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   "Password reset successfully",
		},
		{
			id:             "invalid json",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing token",
			body:           `{"uidb64": "dXNlci00Mg", "new_password": "new-password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "password too short",
			body:           `{"uidb64": "dXNlci00Mg", "token": "test-token", "new_password": "short"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid token",
			body:           `{"uidb64": "dXNlci00Mg", "token": "bad-token", "new_password": "new-password"}`,
			serviceErr:     user.ErrInvalidPasswordResetToken,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Token is not valid, please request a new one",
		},
		{
			id:             "user not found",
			body:           `{"uidb64": "dXNlci00Mg", "token": "test-token", "new_password": "new-password"}`,
			serviceErr:     user.ErrUserDoesNotExist,
			expectedStatus: http.StatusNotFound,
			expectedBody:   "User not found",
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/password-reset-complete/", strings.NewReader(testcase.body))
			if err != nil {
				t.Fatal(err)
			}

			stub := &stubService{err: testcase.serviceErr}
			rr := httptest.NewRecorder()
			handler := New(stub)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			if testcase.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), testcase.expectedBody)
			}
		})
	}
}
