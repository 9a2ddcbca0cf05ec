package jwsx

import "strings"

// Registered JWT claim names (RFC 7519 section 4.1).
const (
	ClaimIssuer     = "iss"
	ClaimSubject    = "sub"
	ClaimAudience   = "aud"
	ClaimExpiration = "exp"
	ClaimNotBefore  = "nbf"
	ClaimIssuedAt   = "iat"
	ClaimTokenID    = "jti"
	ClaimType       = "typ"
)

// Payload is a claims document with typed setters for the registered
// JWT claim fields.
type Payload struct {
	Document
}

// SetIssuer sets the "iss" claim.
func (p *Payload) SetIssuer(issuer string) {
	p.Set(ClaimIssuer, issuer)
}

// SetSubject sets the "sub" claim.
func (p *Payload) SetSubject(subject string) {
	p.Set(ClaimSubject, subject)
}

// SetAudience sets the "aud" claim. Multiple values are deduplicated
// preserving first appearance order and joined with a single space, so
// the stored claim is always one string.
func (p *Payload) SetAudience(audience ...string) {
	p.Set(ClaimAudience, joinAudience(audience))
}

// SetID sets the "jti" claim.
func (p *Payload) SetID(id string) {
	p.Set(ClaimTokenID, id)
}

// SetIssuedAtTime sets the "iat" claim to epoch seconds.
func (p *Payload) SetIssuedAtTime(seconds uint64) {
	p.Set(ClaimIssuedAt, seconds)
}

// SetExpirationTime sets the "exp" claim to epoch seconds.
func (p *Payload) SetExpirationTime(seconds uint64) {
	p.Set(ClaimExpiration, seconds)
}

// SetNotBeforeTime sets the "nbf" claim to epoch seconds.
func (p *Payload) SetNotBeforeTime(seconds uint64) {
	p.Set(ClaimNotBefore, seconds)
}

// SetType sets the "typ" claim.
func (p *Payload) SetType(tokenType string) {
	p.Set(ClaimType, tokenType)
}

func joinAudience(audience []string) string {
	seen := make(map[string]struct{}, len(audience))
	unique := make([]string, 0, len(audience))
	for _, entry := range audience {
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		unique = append(unique, entry)
	}
	return strings.Join(unique, " ")
}
