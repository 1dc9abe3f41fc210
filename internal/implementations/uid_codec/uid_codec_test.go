package uidcodec

import (
	"accounts/internal/core/domain/user"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec := NewBase64()
	ids := []user.ID{1, 2, 42, 1234, 111222333, 1<<62 + 1}

	for _, id := range ids {
		t.Run(fmt.Sprintf("%d", id), func(t *testing.T) {
			encoded := codec.Encode(id)
			decoded, err := codec.Decode(encoded)
			require.Nil(t, err)
			assert.Equal(t, id, decoded)
		})
	}
}

func TestEncodedIDIsURLSafe(t *testing.T) {
	codec := NewBase64()
	encoded := codec.Encode(user.ID(1234))
	assert.NotContains(t, string(encoded), "/")
	assert.NotContains(t, string(encoded), "+")
	assert.NotContains(t, string(encoded), "=")
}

func TestDecodeInvalidInput(t *testing.T) {
	codec := NewBase64()
	cases := []struct {
		id      string
		encoded string
	}{
		{id: "empty", encoded: ""},
		{id: "not base64", encoded: "not-valid-base64!!"},
		{id: "not a number", encoded: base64.RawURLEncoding.EncodeToString([]byte("abc"))},
		{id: "zero", encoded: base64.RawURLEncoding.EncodeToString([]byte("0"))},
		{id: "negative", encoded: base64.RawURLEncoding.EncodeToString([]byte("-1"))},
		{id: "padded", encoded: base64.StdEncoding.EncodeToString([]byte("1"))},
	}

	for _, testCase := range cases {
		t.Run(testCase.id, func(t *testing.T) {
			_, err := codec.Decode(user.EncodedID(testCase.encoded))
			assert.ErrorIs(t, err, user.ErrInvalidEncodedID)
		})
	}
}
