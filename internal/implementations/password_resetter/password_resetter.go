package passwordresetter

import (
	"accounts/internal/core/domain/user"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Timestamps inside tokens are truncated to whole hours, so repeated
// requests within the same hour produce the same token.
const timestampGranularity = time.Hour

type HMAC struct {
	secretKey     []byte
	validDuration time.Duration
	now           func() time.Time
}

func NewHMAC(secretKey string, validDuration time.Duration, now func() time.Time) *HMAC {
	return &HMAC{
		secretKey:     []byte(secretKey),
		validDuration: validDuration,
		now:           now,
	}
}

func (h *HMAC) GenerateToken(u user.User) user.PasswordResetToken {
	ts := h.now().Unix() / int64(timestampGranularity/time.Second)
	mac := h.getMac(u.ID, u.PasswordHash, ts)
	b64 := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf("%d-%s", ts, mac)))
	return user.PasswordResetToken(b64)
}

func (h *HMAC) ValidateToken(u user.User, token user.PasswordResetToken) bool {
	decodedToken, err := base64.RawURLEncoding.DecodeString(string(token))
	if err != nil {
		return false
	}
	parts := strings.SplitN(string(decodedToken), "-", 2)
	if len(parts) != 2 {
		return false
	}
	ts, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return false
	}
	issuedAt := time.Unix(ts*int64(timestampGranularity/time.Second), 0)
	if h.now().Sub(issuedAt) > h.validDuration {
		return false
	}
	expectedMac := h.getMac(u.ID, u.PasswordHash, ts)
	return subtle.ConstantTimeCompare([]byte(parts[1]), []byte(expectedMac)) == 1
}

func (h *HMAC) getMac(userID user.ID, passwordHash user.PasswordHash, ts int64) string {
	hasher := hmac.New(sha256.New, h.secretKey)
	io.WriteString(hasher, fmt.Sprintf("%d-%d-%s", userID, ts, string(passwordHash)))
	return fmt.Sprintf("%x", hasher.Sum(nil))
}
