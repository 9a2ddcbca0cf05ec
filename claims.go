package jwsx

import "time"

// Claims holds the registered claim values the signer writes into a
// token payload. Zero-value fields are omitted from the payload.
type Claims struct {
	Issuer   string
	Subject  string
	Audience []string
	TokenID  string
	Type     string

	IssuedAt  time.Time
	NotBefore time.Time
	ExpiresAt time.Time
}

func (c Claims) apply(p *Payload) {
	if c.Issuer != "" {
		p.SetIssuer(c.Issuer)
	}
	if c.Subject != "" {
		p.SetSubject(c.Subject)
	}
	if len(c.Audience) > 0 {
		p.SetAudience(c.Audience...)
	}
	if c.TokenID != "" {
		p.SetID(c.TokenID)
	}
	if c.Type != "" {
		p.SetType(c.Type)
	}
	if !c.IssuedAt.IsZero() {
		p.SetIssuedAtTime(uint64(c.IssuedAt.Unix()))
	}
	if !c.NotBefore.IsZero() {
		p.SetNotBeforeTime(uint64(c.NotBefore.Unix()))
	}
	if !c.ExpiresAt.IsZero() {
		p.SetExpirationTime(uint64(c.ExpiresAt.Unix()))
	}
}
