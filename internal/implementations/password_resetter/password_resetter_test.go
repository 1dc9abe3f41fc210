package passwordresetter

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/user"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	users map[user.ID]user.User
}

func (suite *testSuite) SetupTest() {
	suite.users = make(map[user.ID]user.User)
	suite.users[user.ID(1)] = user.User{
		ID:           user.ID(1),
		Email:        c.Email("test-1@test.test"),
		PasswordHash: user.PasswordHash("test-hash-1"),
		CreatedAt:    NOW,
	}
	suite.users[user.ID(1234)] = user.User{
		ID:           user.ID(1234),
		Email:        c.Email("test-1234@test.test"),
		PasswordHash: user.PasswordHash("test-hash-1234"),
		CreatedAt:    NOW,
	}
	suite.users[user.ID(111222333)] = user.User{
		ID:           user.ID(111222333),
		Email:        c.Email("test-111222333@test.test"),
		PasswordHash: user.PasswordHash("test-hash-111222333"),
		CreatedAt:    NOW,
	}
}

func TestHMACPasswordResetter(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccessCases() {
	cases := []struct {
		ID               string
		SecretKeyToGen   string
		SecretKeyToCheck string
		GenTime          string
		CheckTime        string
		ValidDuration    time.Duration
	}{
		{
			ID:               "1",
			SecretKeyToGen:   "",
			SecretKeyToCheck: "",
			GenTime:          "2020-01-01T15:00:00Z",
			CheckTime:        "2020-01-02T14:59:59Z",
			ValidDuration:    time.Hour * 24,
		},
		{
			ID:               "2",
			SecretKeyToGen:   "test",
			SecretKeyToCheck: "test",
			GenTime:          "2020-01-01T15:00:00Z",
			CheckTime:        "2020-01-01T15:59:59Z",
			ValidDuration:    time.Hour,
		},
		{
			ID:               "3",
			SecretKeyToGen:   "test-test-test",
			SecretKeyToCheck: "test-test-test",
			GenTime:          "2020-01-01T15:00:00Z",
			CheckTime:        "2020-01-11T14:59:59Z",
			ValidDuration:    time.Hour * 240,
		},
	}

	for userID, u := range s.users {
		for _, testCase := range cases {
			s.Run(fmt.Sprintf("%d-%s", userID, testCase.ID), func() {
				genTime, err := time.Parse(time.RFC3339, testCase.GenTime)
				if err != nil {
					s.FailNow("GenTime is invalid")
				}
				checkTime, err := time.Parse(time.RFC3339, testCase.CheckTime)
				if err != nil {
					s.FailNow("CheckTime is invalid")
				}

				generator := NewHMAC(
					testCase.SecretKeyToGen,
					testCase.ValidDuration,
					func() time.Time { return genTime },
				)
				token := generator.GenerateToken(u)

				validator := NewHMAC(
					testCase.SecretKeyToCheck,
					testCase.ValidDuration,
					func() time.Time { return checkTime },
				)
				if !validator.ValidateToken(u, token) {
					s.FailNow("token validation failed", token)
				}
			})
		}
	}
}

func (s *testSuite) TestFailCases() {
	cases := []struct {
		ID               string
		SecretKeyToGen   string
		SecretKeyToCheck string
		GenTime          string
		CheckTime        string
		ValidDuration    time.Duration
	}{
		{
			ID:               "1",
			SecretKeyToGen:   "",
			SecretKeyToCheck: " ",
			GenTime:          "2020-01-01T15:00:00Z",
			CheckTime:        "2020-01-02T14:59:59Z",
			ValidDuration:    time.Hour * 24,
		},
		{
			ID:               "2",
			SecretKeyToGen:   "test",
			SecretKeyToCheck: " test",
			GenTime:          "2020-01-01T15:00:00Z",
			CheckTime:        "2020-01-01T15:59:59Z",
			ValidDuration:    time.Hour,
		},
		{
			ID:               "3",
			SecretKeyToGen:   "a",
			SecretKeyToCheck: "a",
			GenTime:          "2020-01-01T15:00:00Z",
			CheckTime:        "2020-01-02T15:00:01Z",
			ValidDuration:    time.Hour * 24,
		},
		{
			ID:               "4",
			SecretKeyToGen:   "test",
			SecretKeyToCheck: "test",
			GenTime:          "2020-01-01T15:00:00Z",
			CheckTime:        "2020-01-01T16:01:30Z",
			ValidDuration:    time.Hour,
		},
		{
			ID:               "5",
			SecretKeyToGen:   "test-test-test",
			SecretKeyToCheck: "test-test-test",
			GenTime:          "2020-01-01T15:00:00Z",
			CheckTime:        "2020-01-11T15:00:01Z",
			ValidDuration:    time.Hour * 240,
		},
	}

	for userID, u := range s.users {
		for _, testCase := range cases {
			s.Run(fmt.Sprintf("%d-%s", userID, testCase.ID), func() {
				genTime, err := time.Parse(time.RFC3339, testCase.GenTime)
				if err != nil {
					s.FailNow("GenTime is invalid")
				}
				checkTime, err := time.Parse(time.RFC3339, testCase.CheckTime)
				if err != nil {
					s.FailNow("CheckTime is invalid")
				}

				generator := NewHMAC(
					testCase.SecretKeyToGen,
					testCase.ValidDuration,
					func() time.Time { return genTime },
				)
				token := generator.GenerateToken(u)

				validator := NewHMAC(
					testCase.SecretKeyToCheck,
					testCase.ValidDuration,
					func() time.Time { return checkTime },
				)
				if validator.ValidateToken(u, token) {
					s.FailNow("token validation succeeded", token)
				}
			})
		}
	}
}

func (s *testSuite) TestFailForOtherUser() {
	resetter := NewHMAC(
		"test-secret-key",
		time.Hour*24,
		func() time.Time { return NOW },
	)
	token1 := resetter.GenerateToken(s.users[user.ID(1)])
	token1234 := resetter.GenerateToken(s.users[user.ID(1234)])
	s.False(resetter.ValidateToken(s.users[user.ID(1234)], token1))
	s.False(resetter.ValidateToken(s.users[user.ID(1)], token1234))
}

func (s *testSuite) TestFailIfTimestampModified() {
	resetter := NewHMAC(
		"test-secret-key",
		time.Hour*24,
		func() time.Time { return NOW },
	)
	u := s.users[user.ID(1)]
	token, err := base64.RawURLEncoding.DecodeString(string(resetter.GenerateToken(u)))
	s.Nil(err)

	parts := strings.SplitN(string(token), "-", 2)
	ts, err := strconv.Atoi(parts[0])
	s.Nil(err)
	parts[0] = fmt.Sprintf("%d", ts-1)
	invalidToken := user.PasswordResetToken(
		base64.RawURLEncoding.EncodeToString([]byte(strings.Join(parts, "-"))),
	)

	s.False(resetter.ValidateToken(u, invalidToken))
}

func (s *testSuite) TestFailIfMacModified() {
	resetter := NewHMAC(
		"test-secret-key",
		time.Hour*24,
		func() time.Time { return NOW },
	)
	u := s.users[user.ID(1)]
	token, err := base64.RawURLEncoding.DecodeString(string(resetter.GenerateToken(u)))
	s.Nil(err)

	parts := strings.SplitN(string(token), "-", 2)
	parts[1] = " " + parts[1][1:]
	invalidToken := user.PasswordResetToken(
		base64.RawURLEncoding.EncodeToString([]byte(strings.Join(parts, "-"))),
	)

	s.False(resetter.ValidateToken(u, invalidToken))
}

func (s *testSuite) TestFailForMalformedTokens() {
	resetter := NewHMAC(
		"test-secret-key",
		time.Hour*24,
		func() time.Time { return NOW },
	)
	u := s.users[user.ID(1)]
	tokens := []string{
		"",
		"not-valid-base64!!",
		base64.RawURLEncoding.EncodeToString([]byte("nodashhere")),
		base64.RawURLEncoding.EncodeToString([]byte("notanumber-abcdef")),
	}
	for _, token := range tokens {
		s.Run(token, func() {
			s.False(resetter.ValidateToken(u, user.PasswordResetToken(token)))
		})
	}
}

func (s *testSuite) TestSameTokenWithinSameHour() {
	genTime, err := time.Parse(time.RFC3339, "2020-01-01T15:00:00Z")
	s.Nil(err)
	laterSameHour, err := time.Parse(time.RFC3339, "2020-01-01T15:59:59Z")
	s.Nil(err)
	nextHour, err := time.Parse(time.RFC3339, "2020-01-01T16:00:00Z")
	s.Nil(err)

	u := s.users[user.ID(1)]
	first := NewHMAC("test-secret-key", time.Hour*24, func() time.Time { return genTime })
	second := NewHMAC("test-secret-key", time.Hour*24, func() time.Time { return laterSameHour })
	third := NewHMAC("test-secret-key", time.Hour*24, func() time.Time { return nextHour })

	s.Equal(first.GenerateToken(u), second.GenerateToken(u))
	s.NotEqual(first.GenerateToken(u), third.GenerateToken(u))
}

func (s *testSuite) TestFailAfterPasswordChange() {
	resetter := NewHMAC(
		"test-secret-key",
		time.Hour*24,
		func() time.Time { return NOW },
	)
	u := user.User{
		ID:           user.ID(42),
		Email:        c.Email("test-42@test.test"),
		PasswordHash: user.PasswordHash("hash-before-reset"),
		CreatedAt:    NOW,
	}
	token := resetter.GenerateToken(u)
	s.True(resetter.ValidateToken(u, token))

	u.PasswordHash = user.PasswordHash("hash-after-reset")
	s.False(resetter.ValidateToken(u, token))
}
