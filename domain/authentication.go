package domain

import "context"

// AuthenticationRepository stores issued refresh tokens. A token absent from
// the store is treated as revoked regardless of its signature.
type AuthenticationRepository interface {
	AddToken(ctx context.Context, token string) error

	// VerifyTokenExists returns ErrRefreshTokenInvalid when the token was
	// never issued or has been revoked.
	VerifyTokenExists(ctx context.Context, token string) error

	DeleteToken(ctx context.Context, token string) error
}

// IDGenerator supplies the random token part of entity identifiers. The
// repositories prepend a fixed entity prefix (thread-, comment-, reply-,
// like-, user-) to whatever it returns.
type IDGenerator func() string
