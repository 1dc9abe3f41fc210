package user

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/user"
	"accounts/internal/db"
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = "test@test.test"
	PASSWORD_HASH = "test-password-hash"
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createUser(email string) user.User {
	u, err := suite.repo.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(email),
		Name:         "Test User",
		PhoneNumber:  "+15550001122",
		EmployeeID:   "EMP-001",
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
	return u
}

func (suite *testSuite) TestCreateSuccess() {
	u, err := suite.repo.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(EMAIL),
		Name:         "Test User",
		PhoneNumber:  "+15550001122",
		EmployeeID:   "EMP-001",
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		CreatedAt:    NOW,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.True(u.ID > 0)
	assert.Equal(c.Email(EMAIL), u.Email)
	assert.Equal("Test User", u.Name)
	assert.Equal("+15550001122", u.PhoneNumber)
	assert.Equal("EMP-001", u.EmployeeID)
	assert.Equal(user.PasswordHash(PASSWORD_HASH), u.PasswordHash)
	assert.False(u.IsAdmin)
	assert.True(NOW.Equal(u.CreatedAt))
	assert.False(u.LastLoginAt.IsPresent)
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	suite.createUser(EMAIL)

	_, err := suite.repo.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(EMAIL),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		CreatedAt:    NOW,
	})
	suite.Require().ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (suite *testSuite) TestGetByID() {
	created := suite.createUser(EMAIL)

	u, err := suite.repo.GetByID(context.Background(), created.ID)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, u.ID)
	assert.Equal(created.Email, u.Email)
}

func (suite *testSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(context.Background(), user.ID(999))
	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *testSuite) TestGetByEmail() {
	created := suite.createUser(EMAIL)

	u, err := suite.repo.GetByEmail(context.Background(), c.Email(EMAIL))

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, u.ID)
}

func (suite *testSuite) TestGetByEmailNotFound() {
	_, err := suite.repo.GetByEmail(context.Background(), c.Email("unknown@test.test"))
	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *testSuite) TestList() {
	first := suite.createUser("test-1@test.test")
	second := suite.createUser("test-2@test.test")

	users, err := suite.repo.List(context.Background())

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(2, len(users))
	assert.Equal(first.ID, users[0].ID)
	assert.Equal(second.ID, users[1].ID)
}

func (suite *testSuite) TestUpdate() {
	created := suite.createUser(EMAIL)

	u, err := suite.repo.Update(context.Background(), user.UpdateUserInput{
		ID:           created.ID,
		DoNameUpdate: true,
		Name:         "Updated Name",
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal("Updated Name", u.Name)
	// Fields without the update flag keep their values.
	assert.Equal(created.PhoneNumber, u.PhoneNumber)
	assert.Equal(created.EmployeeID, u.EmployeeID)
}

func (suite *testSuite) TestUpdateNotFound() {
	_, err := suite.repo.Update(context.Background(), user.UpdateUserInput{
		ID:           user.ID(999),
		DoNameUpdate: true,
		Name:         "Updated Name",
	})
	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *testSuite) TestSetPassword() {
	created := suite.createUser(EMAIL)

	err := suite.repo.SetPassword(context.Background(), created.ID, user.PasswordHash("new-hash"))

	assert := suite.Require()
	assert.Nil(err)
	u, err := suite.repo.GetByID(context.Background(), created.ID)
	assert.Nil(err)
	assert.Equal(user.PasswordHash("new-hash"), u.PasswordHash)
}

func (suite *testSuite) TestSetPasswordNotFound() {
	err := suite.repo.SetPassword(context.Background(), user.ID(999), user.PasswordHash("new-hash"))
	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *testSuite) TestSetLastLoginAt() {
	created := suite.createUser(EMAIL)
	loginAt := NOW.Add(time.Hour)

	err := suite.repo.SetLastLoginAt(context.Background(), created.ID, loginAt)

	assert := suite.Require()
	assert.Nil(err)
	u, err := suite.repo.GetByID(context.Background(), created.ID)
	assert.Nil(err)
	assert.True(u.LastLoginAt.IsPresent)
	assert.True(loginAt.Equal(u.LastLoginAt.Value))
}

func (suite *testSuite) TestDelete() {
	created := suite.createUser(EMAIL)

	err := suite.repo.Delete(context.Background(), created.ID)

	assert := suite.Require()
	assert.Nil(err)
	_, err = suite.repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *testSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(context.Background(), user.ID(999))
	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}
