package updateuser

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"accounts/internal/core/services/auth"
	"context"
)

type Input struct {
	UserID              user.ID
	DoNameUpdate        bool
	Name                string
	DoPhoneNumberUpdate bool
	PhoneNumber         string
	DoEmployeeIDUpdate  bool
	EmployeeID          string
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	User user.User
}

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
	updatedUser, err := s.userRepository.Update(
		ctx,
		user.UpdateUserInput{
			ID:                  input.UserID,
			DoNameUpdate:        input.DoNameUpdate,
			Name:                input.Name,
			DoPhoneNumberUpdate: input.DoPhoneNumberUpdate,
			PhoneNumber:         input.PhoneNumber,
			DoEmployeeIDUpdate:  input.DoEmployeeIDUpdate,
			EmployeeID:          input.EmployeeID,
		},
	)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user profile.",
			logging.Entry("userID", input.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"User profile successfully updated.",
		logging.Entry("userID", updatedUser.ID),
	)
	result.User = updatedUser
	return result, nil
}
