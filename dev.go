package jwsx

// DevClaims holds attributes used when minting synthetic tokens in dev mode.
type DevClaims struct {
	Subject  string
	Issuer   string
	Audience []string
}

// ToClaims converts the dev configuration into signable claims.
func (d DevClaims) ToClaims() Claims {
	return Claims{
		Subject:  d.Subject,
		Issuer:   d.Issuer,
		Audience: append([]string(nil), d.Audience...),
	}
}

// DefaultDevClaims returns a baseline set of claims suitable for local development.
func DefaultDevClaims(audience string) DevClaims {
	aud := audience
	if aud == "" {
		aud = "https://dev.local"
	}
	return DevClaims{
		Subject:  "dev-bypass",
		Issuer:   "jwsx.dev",
		Audience: []string{aud},
	}
}
