package user

import "context"

// PasswordResetToken is a stateless credential derived from the user's
// current state. It is never stored server-side: changing the password
// hash invalidates every previously issued token.
type PasswordResetToken string

func (t PasswordResetToken) String() string {
	return "***"
}

type PasswordResetter interface {
	GenerateToken(user User) PasswordResetToken
	ValidateToken(user User, token PasswordResetToken) bool
}

// EncodedID is the URL-safe transport encoding of a user ID, used in
// password reset links instead of the raw ID.
type EncodedID string

type IDCodec interface {
	Encode(id ID) EncodedID
	// Decode returns ErrInvalidEncodedID for anything that is not a
	// valid encoding of a user ID.
	Decode(encoded EncodedID) (ID, error)
}

type PasswordResetLinkSender interface {
	SendResetLink(ctx context.Context, user User, link string) error
}
