package user

import (
	c "accounts/internal/core/domain/common"
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
	"time"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeSessionTokenGenerator struct {
	Token string
}

func NewFakeSessionTokenGenerator(token string) *FakeSessionTokenGenerator {
	return &FakeSessionTokenGenerator{Token: token}
}

func (g *FakeSessionTokenGenerator) GenerateToken() SessionToken {
	return SessionToken(g.Token)
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:           maxID + 1,
		Email:        input.Email,
		Name:         input.Name,
		PhoneNumber:  input.PhoneNumber,
		EmployeeID:   input.EmployeeID,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) List(ctx context.Context) ([]User, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list users")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	users := make([]User, len(r.Users))
	copy(users, r.Users)
	return users, nil
}

func (r *FakeUserRepository) Update(ctx context.Context, input UpdateUserInput) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == input.ID {
			if input.DoNameUpdate {
				r.Users[ix].Name = input.Name
			}
			if input.DoPhoneNumberUpdate {
				r.Users[ix].PhoneNumber = input.PhoneNumber
			}
			if input.DoEmployeeIDUpdate {
				r.Users[ix].EmployeeID = input.EmployeeID
			}
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, id ID, password PasswordHash) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordHash = password
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetLastLoginAt(ctx context.Context, id ID, at time.Time) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].LastLoginAt = c.NewOptional(at, true)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users = append(r.Users[:ix], r.Users[ix+1:]...)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

type FakeSessionRepository struct {
	UserIDByToken  map[SessionToken]ID
	UserRepository UserRepository
	lock           sync.Mutex
}

func NewFakeSessionRepository(userRepository UserRepository) *FakeSessionRepository {
	return &FakeSessionRepository{
		UserIDByToken:  make(map[SessionToken]ID),
		UserRepository: userRepository,
	}
}

func (r *FakeSessionRepository) Create(ctx context.Context, input CreateSessionInput) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.UserIDByToken[input.Token] = input.UserID
	return nil
}

func (r *FakeSessionRepository) GetUserByToken(ctx context.Context, token SessionToken) (u User, err error) {
	r.lock.Lock()
	userID, ok := r.UserIDByToken[token]
	r.lock.Unlock()
	if !ok {
		return u, ErrSessionDoesNotExist
	}
	return r.UserRepository.GetByID(ctx, userID)
}

func (r *FakeSessionRepository) Delete(ctx context.Context, token SessionToken) (userID ID, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	userID, ok := r.UserIDByToken[token]
	if !ok {
		return userID, ErrSessionDoesNotExist
	}
	delete(r.UserIDByToken, token)
	return userID, nil
}

type FakePasswordResetLinkSender struct {
	Sent        []SentResetLink
	ReturnError bool
	lock        sync.Mutex
}

type SentResetLink struct {
	User User
	Link string
}

func NewFakePasswordResetLinkSender() *FakePasswordResetLinkSender {
	return &FakePasswordResetLinkSender{}
}

func (s *FakePasswordResetLinkSender) SendResetLink(ctx context.Context, user User, link string) error {
	if s.ReturnError {
		return fmt.Errorf("could not send password reset link to user %d", user.ID)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentResetLink{User: user, Link: link})
	return nil
}

func (s *FakePasswordResetLinkSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakePasswordResetLinkSender) LastSent() SentResetLink {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}

type FakePasswordResetter struct {
	Token   PasswordResetToken
	IsValid bool
}

func NewFakePasswordResetter(token string, isValid bool) *FakePasswordResetter {
	return &FakePasswordResetter{
		Token:   PasswordResetToken(token),
		IsValid: isValid,
	}
}

func (r *FakePasswordResetter) GenerateToken(user User) PasswordResetToken {
	return r.Token
}

func (r *FakePasswordResetter) ValidateToken(user User, token PasswordResetToken) bool {
	return r.IsValid
}

type FakeIDCodec struct {
	UserID  ID
	IsValid bool
}

func NewFakeIDCodec(userID ID, isValid bool) *FakeIDCodec {
	return &FakeIDCodec{UserID: userID, IsValid: isValid}
}

func (c *FakeIDCodec) Encode(id ID) EncodedID {
	return EncodedID(fmt.Sprintf("uid-%d", id))
}

func (c *FakeIDCodec) Decode(encoded EncodedID) (ID, error) {
	if !c.IsValid {
		return 0, ErrInvalidEncodedID
	}
	return c.UserID, nil
}
