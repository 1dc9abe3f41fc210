package services

import (
	"accounts/internal/app/deps"
	drl "accounts/internal/core/domain/rate_limiter"
	"accounts/internal/core/services"
	"accounts/internal/core/services/auth"
	changepassword "accounts/internal/core/services/change_password"
	checkpasswordresettoken "accounts/internal/core/services/check_password_reset_token"
	deleteuser "accounts/internal/core/services/delete_user"
	getuserbysessiontoken "accounts/internal/core/services/get_user_by_session_token"
	listusers "accounts/internal/core/services/list_users"
	loginwithemail "accounts/internal/core/services/log_in_with_email"
	logout "accounts/internal/core/services/log_out"
	ratelimiting "accounts/internal/core/services/rate_limiting"
	resetpassword "accounts/internal/core/services/reset_password"
	sendpasswordresetlink "accounts/internal/core/services/send_password_reset_link"
	signup "accounts/internal/core/services/sign_up"
	updateuser "accounts/internal/core/services/update_user"
)

type Services struct {
	SignUp                services.Service[signup.Input, signup.Result]
	LogInWithEmail        services.Service[loginwithemail.Input, loginwithemail.Result]
	LogOut                services.Service[logout.Input, logout.Result]
	GetUserBySessionToken services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
	UpdateUser            services.Service[updateuser.Input, updateuser.Result]
	ChangePassword        services.Service[changepassword.Input, changepassword.Result]

	SendPasswordResetLink   services.Service[sendpasswordresetlink.Input, sendpasswordresetlink.Result]
	CheckPasswordResetToken services.Service[checkpasswordresettoken.Input, checkpasswordresettoken.Result]
	ResetPassword           services.Service[resetpassword.Input, resetpassword.Result]

	ListUsers  services.Service[listusers.Input, listusers.Result]
	DeleteUser services.Service[deleteuser.Input, deleteuser.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUp = signup.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.Now,
	)
	s.LogInWithEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		loginwithemail.New(
			deps.Logger,
			deps.UserRepository,
			deps.SessionRepository,
			deps.PasswordHasher,
			deps.SessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.GetUserBySessionToken = auth.WithAuthentication(
		deps.SessionRepository,
		getuserbysessiontoken.New(),
	)
	s.UpdateUser = auth.WithAuthentication(
		deps.SessionRepository,
		updateuser.New(
			deps.Logger,
			deps.UserRepository,
		),
	)
	s.ChangePassword = auth.WithAuthentication(
		deps.SessionRepository,
		changepassword.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
		),
	)

	s.SendPasswordResetLink = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		sendpasswordresetlink.New(
			deps.Logger,
			deps.UserRepository,
			deps.IDCodec,
			deps.PasswordResetter,
			deps.PasswordResetLinkSender,
			deps.Config.FrontendURL,
			deps.Config.PasswordResetEmailFailSilently,
		),
	)
	s.CheckPasswordResetToken = checkpasswordresettoken.New(
		deps.Logger,
		deps.UserRepository,
		deps.IDCodec,
		deps.PasswordResetter,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UserRepository,
		deps.IDCodec,
		deps.PasswordResetter,
		deps.PasswordHasher,
	)

	s.ListUsers = auth.WithAuthentication(
		deps.SessionRepository,
		listusers.New(
			deps.Logger,
			deps.UserRepository,
		),
	)
	s.DeleteUser = auth.WithAuthentication(
		deps.SessionRepository,
		deleteuser.New(
			deps.Logger,
			deps.UserRepository,
		),
	)

	return s
}
