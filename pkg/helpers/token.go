package helpers

import (
	"crypto/rand"
	"encoding/hex"
)

// AccessTokenBytes is the amount of entropy drawn for every access token.
const AccessTokenBytes = 128

// AccessTokenLength is the length of an issued token once hex encoded.
const AccessTokenLength = AccessTokenBytes * 2

// TokenIssuer produces opaque access tokens.
type TokenIssuer interface {
	Issue() (string, error)
}

// RandomTokenIssuer reads AccessTokenBytes from crypto/rand and hex encodes them.
type RandomTokenIssuer struct{}

func (RandomTokenIssuer) Issue() (string, error) {
	b := make([]byte, AccessTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
