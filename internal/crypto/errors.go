package crypto

import "errors"

var (
	ErrEmptySecretKey = errors.New("secret key is empty")
	ErrEmptyHashKey   = errors.New("hash key is empty")
	ErrOpenFailed     = errors.New("cannot open sealed value")
)
