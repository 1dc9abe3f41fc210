package checkpasswordresettoken

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	EncodedID user.EncodedID
	Token     user.PasswordResetToken
}

type Result struct {
	User user.User
}

type service struct {
	log              logging.Logger
	userRepository   user.UserRepository
	idCodec          user.IDCodec
	passwordResetter user.PasswordResetter
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	idCodec user.IDCodec,
	passwordResetter user.PasswordResetter,
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
	return &service{
		log:              log,
		userRepository:   userRepository,
		idCodec:          idCodec,
		passwordResetter: passwordResetter,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	userID, err := s.idCodec.Decode(input.EncodedID)
	if err != nil {
		s.log.Warning(ctx, "Could not decode user ID from password reset link.")
		return result, user.ErrInvalidPasswordResetToken
	}

	u, err := s.userRepository.GetByID(ctx, userID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User not found for password reset.", logging.Entry("userID", userID))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset token check.",
			logging.Entry("userID", userID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if !s.passwordResetter.ValidateToken(u, input.Token) {
		s.log.Warning(
			ctx,
			"Invalid password reset token.",
			logging.Entry("userID", userID),
		)
		return result, user.ErrInvalidPasswordResetToken
	}

	s.log.Info(ctx, "Valid password reset token.", logging.Entry("userID", userID))
	return Result{User: u}, nil
}
