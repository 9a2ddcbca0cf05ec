package jwsx

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/oauth2"
)

// ProviderConfig defines how bearer tokens should be minted by default.
type ProviderConfig struct {
	Signer  *Signer
	Subject string
}

// Provider mints self-signed bearer tokens for service-to-service calls.
// It caches a reusable token source per (audience, subject) combination,
// so a token is only re-signed once the cached one nears expiry.
type Provider struct {
	mu       sync.RWMutex
	signer   *Signer
	entries  map[providerKey]*tokenSourceEntry
	defaults TokenParams
}

type providerKey struct {
	Audience string
	Subject  string
}

type tokenSourceEntry struct {
	source oauth2.TokenSource
}

// TokenParams carries the per-token claim overrides.
type TokenParams struct {
	Subject string
}

// TokenOption customizes the behaviour for a single Token call.
type TokenOption func(*TokenParams)

// WithSubject overrides the subject claim of the minted token.
func WithSubject(subject string) TokenOption {
	return func(p *TokenParams) {
		p.Subject = subject
	}
}

// NewProvider constructs a Provider using the supplied defaults.
func NewProvider(cfg ProviderConfig) *Provider {
	return &Provider{
		signer:  cfg.Signer,
		entries: make(map[providerKey]*tokenSourceEntry),
		defaults: TokenParams{
			Subject: cfg.Subject,
		},
	}
}

// Token returns a currently valid bearer token for the given audience.
func (p *Provider) Token(ctx context.Context, audience string, opts ...TokenOption) (string, error) {
	if p.signer == nil {
		return "", errors.New("signer is required")
	}
	if strings.TrimSpace(audience) == "" {
		return "", errors.New("audience is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := p.defaults
	for _, opt := range opts {
		opt(&params)
	}

	key := providerKey{
		Audience: audience,
		Subject:  params.Subject,
	}

	entry := p.getOrCreate(key, params)

	tok, err := entry.source.Token()
	if err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", errors.New("empty token returned")
	}
	return tok.AccessToken, nil
}

func (p *Provider) getOrCreate(key providerKey, params TokenParams) *tokenSourceEntry {
	p.mu.RLock()
	entry, ok := p.entries[key]
	p.mu.RUnlock()
	if ok {
		return entry
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if entry, ok = p.entries[key]; ok {
		return entry
	}

	source := &signingTokenSource{
		signer:   p.signer,
		audience: key.Audience,
		params:   params,
	}
	entry = &tokenSourceEntry{source: oauth2.ReuseTokenSource(nil, source)}
	p.entries[key] = entry
	return entry
}

// signingTokenSource mints a fresh token on every Token call; reuse is
// handled by the wrapping oauth2.ReuseTokenSource.
type signingTokenSource struct {
	signer   *Signer
	audience string
	params   TokenParams
}

func (s *signingTokenSource) Token() (*oauth2.Token, error) {
	now := s.signer.now()
	claims := Claims{
		Subject:   s.params.Subject,
		Audience:  []string{s.audience},
		IssuedAt:  now,
		ExpiresAt: now.Add(s.signer.cfg.TokenTTL),
	}

	token, err := s.signer.Issue(claims)
	if err != nil {
		return nil, err
	}

	return &oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
		Expiry:      claims.ExpiresAt,
	}, nil
}
