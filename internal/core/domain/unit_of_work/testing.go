package uow

import (
	"accounts/internal/core/domain/user"
	"context"
	"sync"
)

type FakeUnitOfWorkContext struct {
	UserRepository    *user.FakeUserRepository
	SessionRepository *user.FakeSessionRepository
	WasCommitted      bool
	WasRolledBack     bool
	lock              sync.Mutex
}

func NewFakeUnitOfWorkContext() *FakeUnitOfWorkContext {
	userRepository := user.NewFakeUserRepository()
	return &FakeUnitOfWorkContext{
		UserRepository:    userRepository,
		SessionRepository: user.NewFakeSessionRepository(userRepository),
	}
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.WasCommitted = true
	return nil
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.WasRolledBack = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) Sessions() user.SessionRepository {
	return c.SessionRepository
}

type FakeUnitOfWork struct {
	Context *FakeUnitOfWorkContext
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{Context: NewFakeUnitOfWorkContext()}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	return u.Context, nil
}
