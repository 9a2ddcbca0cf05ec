package jwsx

import (
	"context"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// End-to-end: mint through the provider, then validate the result the way
// a relying party would, including temporal claims.
func TestEndToEndIssueAndValidate(t *testing.T) {
	signer, err := NewSigner(SignerConfig{
		PrivateKeyPEM: readTestData(t, "rsa_private_encrypted.pem"),
		Passphrase:    testPassphrase,
		KeyID:         "2024-05",
		Issuer:        "https://issuer.example",
		TokenTTL:      time.Hour,
	})
	if err != nil {
		t.Fatalf("NewSigner: %v", err)
	}

	provider := NewProvider(ProviderConfig{Signer: signer, Subject: "svc-template"})
	token, err := provider.Token(context.Background(), "https://api.example")
	if err != nil {
		t.Fatalf("Token: %v", err)
	}

	parsed, err := jwt.Parse(
		[]byte(token),
		jwt.WithKey(jwa.RS256, testPublicKey(t)),
		jwt.WithValidate(true),
		jwt.WithIssuer("https://issuer.example"),
		jwt.WithAudience("https://api.example"),
	)
	if err != nil {
		t.Fatalf("jwt.Parse: %v", err)
	}
	if parsed.Subject() != "svc-template" {
		t.Fatalf("unexpected subject: %s", parsed.Subject())
	}
	if parsed.JwtID() == "" {
		t.Fatal("jti missing")
	}
	if !parsed.Expiration().After(time.Now()) {
		t.Fatalf("token already expired: %v", parsed.Expiration())
	}
}

func TestEndToEndDevClaims(t *testing.T) {
	signer, err := NewSigner(SignerConfig{
		PrivateKeyPEM: readTestData(t, "rsa_private.pem"),
		TokenTTL:      time.Hour,
	})
	if err != nil {
		t.Fatalf("NewSigner: %v", err)
	}

	token, err := signer.Issue(DefaultDevClaims("").ToClaims())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	parsed, err := jwt.Parse([]byte(token), jwt.WithKey(jwa.RS256, testPublicKey(t)))
	if err != nil {
		t.Fatalf("jwt.Parse: %v", err)
	}
	if parsed.Subject() != "dev-bypass" {
		t.Fatalf("unexpected subject: %s", parsed.Subject())
	}
	if parsed.Issuer() != "jwsx.dev" {
		t.Fatalf("unexpected issuer: %s", parsed.Issuer())
	}
	if aud := parsed.Audience(); len(aud) != 1 || aud[0] != "https://dev.local" {
		t.Fatalf("unexpected audience: %v", aud)
	}
}
