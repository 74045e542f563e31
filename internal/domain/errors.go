package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrUserExists indicates the username is already registered
	ErrUserExists = errors.New("username already registered")
	// ErrInvalidCredentials indicates a username/password mismatch
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrUnauthorized indicates the request carries no usable identity
	ErrUnauthorized = errors.New("could not validate credentials")
	// ErrDecode indicates an upload that is not decodable as text
	ErrDecode = errors.New("file is not decodable as text")

	// ErrInvalidToken is the umbrella for all token verification failures.
	// The variants below wrap it so callers can match the broad class while
	// logs keep the specific cause.
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = fmt.Errorf("%w: expired", ErrInvalidToken)
	ErrTokenMalformed = fmt.Errorf("%w: malformed", ErrInvalidToken)
	ErrTokenSignature = fmt.Errorf("%w: signature mismatch", ErrInvalidToken)
	ErrTokenNoSubject = fmt.Errorf("%w: missing subject", ErrInvalidToken)
)
