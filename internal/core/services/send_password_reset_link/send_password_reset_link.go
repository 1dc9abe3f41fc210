package sendpasswordresetlink

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
	"fmt"
	"strings"
)

type Input struct {
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "send-password-reset-link::" + string(i.Email)
}

// Token is set only when a matching user was found. Handlers must not
// leak it to the response body; it exists for test-mode introspection.
type Result struct {
	Token user.PasswordResetToken
}

type service struct {
	log              logging.Logger
	userRepository   user.UserRepository
	idCodec          user.IDCodec
	passwordResetter user.PasswordResetter
	resetLinkSender  user.PasswordResetLinkSender
	frontendURL      string
	failSilently     bool
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	idCodec user.IDCodec,
	passwordResetter user.PasswordResetter,
	resetLinkSender user.PasswordResetLinkSender,
	frontendURL string,
	failSilently bool,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if idCodec == nil {
		panic(e.NewNilArgumentError("idCodec"))
	}
	if passwordResetter == nil {
		panic(e.NewNilArgumentError("passwordResetter"))
	}
	if resetLinkSender == nil {
		panic(e.NewNilArgumentError("resetLinkSender"))
	}
	return &service{
		log:              log,
		userRepository:   userRepository,
		idCodec:          idCodec,
		passwordResetter: passwordResetter,
		resetLinkSender:  resetLinkSender,
		frontendURL:      strings.TrimRight(frontendURL, "/"),
		failSilently:     failSilently,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		// The caller gets the same success response whether or not the
		// email is registered, so account existence can not be probed.
		s.log.Info(
			ctx,
			"Password reset requested for unknown email.",
			logging.Entry("email", input.Email),
		)
		return result, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user by email for password reset.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	token := s.passwordResetter.GenerateToken(u)
	encodedID := s.idCodec.Encode(u.ID)
	// PasswordResetToken masks itself for fmt, so the raw string form
	// goes into the link explicitly.
	link := fmt.Sprintf("%s/password-reset-confirm/%s/%s/", s.frontendURL, string(encodedID), string(token))

	if err := s.resetLinkSender.SendResetLink(ctx, u, link); err != nil {
		s.log.Error(
			ctx,
			"Could not send password reset email.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		if s.failSilently {
			return Result{Token: token}, nil
		}
		return result, err
	}

	s.log.Info(ctx, "Password reset email sent.", logging.Entry("userID", u.ID))
	return Result{Token: token}, nil
}
