package resetpassword

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	EncodedID   user.EncodedID
	Token       user.PasswordResetToken
	NewPassword user.RawPassword
}

type Result struct{}

type service struct {
	log              logging.Logger
	userRepository   user.UserRepository
	idCodec          user.IDCodec
	passwordResetter user.PasswordResetter
	passwordHasher   user.PasswordHasher
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	idCodec user.IDCodec,
	passwordResetter user.PasswordResetter,
	passwordHasher user.PasswordHasher,
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
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{
		log:              log,
		userRepository:   userRepository,
		idCodec:          idCodec,
		passwordResetter: passwordResetter,
		passwordHasher:   passwordHasher,
	}
}

// Run re-validates the full (encoded ID, token) pair even if the client
// already passed the check step: the intermediate response is advisory
// and must not be trusted.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	userID, err := s.idCodec.Decode(input.EncodedID)
	if err != nil {
		s.log.Warning(ctx, "Could not decode user ID during password reset.")
		return result, user.ErrInvalidPasswordResetToken
	}

	u, err := s.userRepository.GetByID(ctx, userID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User not found during password reset.", logging.Entry("userID", userID))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset.",
			logging.Entry("userID", userID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if !s.passwordResetter.ValidateToken(u, input.Token) {
		s.log.Warning(
			ctx,
			"Invalid token for password reset.",
			logging.Entry("userID", userID),
		)
		return result, user.ErrInvalidPasswordResetToken
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}
	err = s.userRepository.SetPassword(ctx, u.ID, newPasswordHash)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(
			ctx,
			"Could not update user password, user does not exist.",
			logging.Entry("userID", userID),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user password.",
			logging.Entry("userID", userID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password has been successfully reset.",
		logging.Entry("userID", userID),
	)
	return result, nil
}
