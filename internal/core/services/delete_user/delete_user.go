package deleteuser

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"accounts/internal/core/services/auth"
	"context"
	"errors"
)

type Input struct {
	User   user.User
	UserID user.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if !input.User.IsAdmin {
		return result, user.ErrPermissionDenied
	}

	err = s.userRepository.Delete(ctx, input.UserID)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(
			ctx,
			"Attempted to delete non-existent user.",
			logging.Entry("userID", input.UserID),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not delete user.",
			logging.Entry("userID", input.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"User deleted.",
		logging.Entry("userID", input.UserID),
		logging.Entry("deletedBy", input.User.ID),
	)
	return result, nil
}
