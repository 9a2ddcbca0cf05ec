package jwsx

import (
	"errors"
	"time"
)

const (
	defaultTokenType = "JWT"
	defaultTokenTTL  = time.Hour
)

// SignerConfig contains issuing parameters for a Signer.
type SignerConfig struct {
	// PrivateKeyPEM is the PEM-encoded RSA private key used for RS256.
	PrivateKeyPEM []byte
	// Passphrase decrypts PrivateKeyPEM when the key is protected.
	// Empty means the key is expected to be unencrypted.
	Passphrase string
	// KeyID is written to the "kid" header when non-empty.
	KeyID string
	// Issuer is the default "iss" claim for issued tokens.
	Issuer string
	// TokenType is the "typ" header value; defaults to "JWT".
	TokenType string
	// TokenTTL bounds token lifetime when claims carry no expiration.
	TokenTTL time.Duration
	// Clock supplies the current time; defaults to time.Now.
	Clock func() time.Time
}

// normalize sets default values for optional fields.
func (c *SignerConfig) normalize() {
	if c.TokenType == "" {
		c.TokenType = defaultTokenType
	}
	if c.TokenTTL == 0 {
		c.TokenTTL = defaultTokenTTL
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
}

// validate ensures the signer configuration is usable.
func (c SignerConfig) validate() error {
	switch {
	case len(c.PrivateKeyPEM) == 0:
		return errors.New("private key material is required")
	case c.TokenTTL < 0:
		return errors.New("token TTL must not be negative")
	}
	return nil
}
