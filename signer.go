package jwsx

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateToken signs header and payload with the PEM-encoded RSA private
// key and returns the compact JWS serialization
// (base64url(header) "." base64url(payload) "." base64url(signature)).
//
// The header must carry "alg" set to a supported algorithm; anything else
// is rejected before any cryptographic work. An empty passphrase means the
// key is expected to be unencrypted. Failures are reported as *Error with
// one of ErrCodeUnsupportedAlgorithm, ErrCodeKeyMaterial or ErrCodeSigning;
// no partial token is ever produced.
func GenerateToken(privateKeyPEM []byte, passphrase string, header *SignatureHeader, payload *Payload) (string, error) {
	if err := checkAlgorithm(header); err != nil {
		return "", err
	}

	signingInput, err := buildSigningInput(header, payload)
	if err != nil {
		return "", err
	}

	key, err := ParseRSAPrivateKey(privateKeyPEM, passphrase)
	if err != nil {
		return "", newError(ErrCodeKeyMaterial, err)
	}

	return signInput(key, signingInput)
}

// checkAlgorithm enforces the signing allow-list: the "alg" header field
// must be present, a string, and a supported identifier. Unknown or future
// algorithms are rejected, not attempted.
func checkAlgorithm(header *SignatureHeader) error {
	value, ok := header.Get(HeaderAlgorithm)
	if !ok {
		return newError(ErrCodeUnsupportedAlgorithm, errors.New("no signature algorithm selected"))
	}
	name, ok := value.(string)
	if !ok {
		return newError(ErrCodeUnsupportedAlgorithm, fmt.Errorf(`"alg" header is %T, want string`, value))
	}
	if name != RS256.String() {
		return newError(ErrCodeUnsupportedAlgorithm, fmt.Errorf("signature algorithm %q not supported", name))
	}
	return nil
}

// buildSigningInput encodes header then payload, joined with a period.
// The order is fixed by RFC 7515.
func buildSigningInput(header *SignatureHeader, payload *Payload) (string, error) {
	encodedHeader, err := header.EncodeCompact()
	if err != nil {
		return "", newError(ErrCodeSigning, fmt.Errorf("encode header: %w", err))
	}
	encodedPayload, err := payload.EncodeCompact()
	if err != nil {
		return "", newError(ErrCodeSigning, fmt.Errorf("encode payload: %w", err))
	}
	return encodedHeader + "." + encodedPayload, nil
}

func signInput(key *rsa.PrivateKey, signingInput string) (string, error) {
	digest := sha256.Sum256([]byte(signingInput))
	signature, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	if err != nil {
		return "", newError(ErrCodeSigning, err)
	}
	return signingInput + "." + base64.RawURLEncoding.EncodeToString(signature), nil
}

// Signer issues RS256 tokens with a pre-parsed private key and default
// claim values. Each Issue call is independent; a Signer is safe for
// concurrent use.
type Signer struct {
	key *rsa.PrivateKey
	cfg SignerConfig
	now func() time.Time
}

// NewSigner parses the configured private key and returns a ready signer.
// Key-material problems are reported here rather than on first Issue.
func NewSigner(cfg SignerConfig) (*Signer, error) {
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	key, err := ParseRSAPrivateKey(cfg.PrivateKeyPEM, cfg.Passphrase)
	if err != nil {
		return nil, newError(ErrCodeKeyMaterial, err)
	}
	return &Signer{key: key, cfg: cfg, now: cfg.Clock}, nil
}

// Issue signs a token carrying the given claims merged with the signer
// defaults: issuer from the configuration, issued-at from the clock, an
// expiration of TokenTTL past issued-at, and a random UUID token id.
// Explicit claim values always win over defaults.
func (s *Signer) Issue(claims Claims) (string, error) {
	header := &SignatureHeader{}
	header.SetAlgorithm(RS256)
	header.SetType(s.cfg.TokenType)
	if s.cfg.KeyID != "" {
		header.SetKeyID(s.cfg.KeyID)
	}

	payload := &Payload{}
	s.withDefaults(claims).apply(payload)

	signingInput, err := buildSigningInput(header, payload)
	if err != nil {
		return "", err
	}
	return signInput(s.key, signingInput)
}

func (s *Signer) withDefaults(claims Claims) Claims {
	if claims.Issuer == "" {
		claims.Issuer = s.cfg.Issuer
	}
	if claims.TokenID == "" {
		claims.TokenID = uuid.NewString()
	}
	if claims.IssuedAt.IsZero() {
		claims.IssuedAt = s.now()
	}
	if claims.ExpiresAt.IsZero() {
		claims.ExpiresAt = claims.IssuedAt.Add(s.cfg.TokenTTL)
	}
	return claims
}
