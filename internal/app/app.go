package app

import (
	"accounts/internal/app/deps"
	"accounts/internal/app/services"
	deleteuser "accounts/internal/http/handlers/admin/delete_user"
	listusers "accounts/internal/http/handlers/admin/list_users"
	"accounts/internal/http/handlers/auth"
	checkpasswordresettoken "accounts/internal/http/handlers/auth/check_password_reset_token"
	confirmpasswordreset "accounts/internal/http/handlers/auth/confirm_password_reset"
	loginwithemail "accounts/internal/http/handlers/auth/log_in_with_email"
	logout "accounts/internal/http/handlers/auth/log_out"
	register "accounts/internal/http/handlers/auth/register"
	requestpasswordreset "accounts/internal/http/handlers/auth/request_password_reset"
	changepassword "accounts/internal/http/handlers/user/change_password"
	me "accounts/internal/http/handlers/user/me"
	updateuser "accounts/internal/http/handlers/user/update_user"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Use(auth.SetAuthTokenToContext)

	router.Method(http.MethodPost, "/register/", register.New(s.SignUp))
	router.Method(http.MethodPost, "/login/", loginwithemail.New(s.LogInWithEmail))
	router.Method(http.MethodPost, "/logout/", logout.New(s.LogOut))

	router.Method(http.MethodGet, "/profile/", me.New(s.GetUserBySessionToken))
	router.Method(http.MethodPut, "/profile/", updateuser.New(s.UpdateUser))
	router.Method(http.MethodPut, "/change-password/", changepassword.New(s.ChangePassword))

	router.Method(
		http.MethodPost,
		"/request-reset-email/",
		requestpasswordreset.New(s.SendPasswordResetLink, isTestMode),
	)
	router.Method(
		http.MethodGet,
		"/password-reset-confirm/{uidb64}/{token}/",
		checkpasswordresettoken.New(s.CheckPasswordResetToken),
	)
	router.Method(
		http.MethodPost,
		"/password-reset-complete/",
		confirmpasswordreset.New(s.ResetPassword),
	)

	router.Method(http.MethodGet, "/users/", listusers.New(s.ListUsers))
	router.Method(http.MethodDelete, "/users/{userID:[0-9]+}/", deleteuser.New(s.DeleteUser))

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
