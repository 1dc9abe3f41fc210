package user

import (
	c "accounts/internal/core/domain/common"
	"context"
	"time"
)

type CreateUserInput struct {
	Email        c.Email
	Name         string
	PhoneNumber  string
	EmployeeID   string
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type UpdateUserInput struct {
	ID                  ID
	DoNameUpdate        bool
	Name                string
	DoPhoneNumberUpdate bool
	PhoneNumber         string
	DoEmployeeIDUpdate  bool
	EmployeeID          string
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, input UpdateUserInput) (User, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash) error
	SetLastLoginAt(ctx context.Context, id ID, at time.Time) error
	Delete(ctx context.Context, id ID) error
}
