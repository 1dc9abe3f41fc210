package uidcodec

import (
	"accounts/internal/core/domain/user"
	"encoding/base64"
	"strconv"
)

// Base64 encodes user IDs as unpadded URL-safe base64 of the decimal
// representation, so they can be embedded in a URL path segment.
type Base64 struct{}

func NewBase64() *Base64 {
	return &Base64{}
}

func (c *Base64) Encode(id user.ID) user.EncodedID {
	return user.EncodedID(
		base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatInt(int64(id), 10))),
	)
}

func (c *Base64) Decode(encoded user.EncodedID) (user.ID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(string(encoded))
	if err != nil {
		return 0, user.ErrInvalidEncodedID
	}
	id, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, user.ErrInvalidEncodedID
	}
	return user.ID(id), nil
}
