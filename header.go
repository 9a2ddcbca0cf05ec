package jwsx

// Registered JOSE header parameter names (RFC 7515 section 4.1).
const (
	HeaderType           = "typ"
	HeaderContentType    = "cty"
	HeaderAlgorithm      = "alg"
	HeaderJWKSetURL      = "jku"
	HeaderJSONWebKey     = "jwk"
	HeaderKeyID          = "kid"
	HeaderX509URL        = "x5u"
	HeaderX509Thumbprint = "x5t"
	HeaderX509Chain      = "x5c"
	HeaderCritical       = "crit"
)

// Algorithm identifies a JWS signature algorithm. The zero value is
// unrecognized and is rejected by the signer before any cryptographic work.
type Algorithm uint8

const (
	// AlgorithmUnknown is the unrecognized algorithm sentinel.
	AlgorithmUnknown Algorithm = iota
	// RS256 is RSASSA-PKCS1-v1_5 using SHA-256 (RFC 7518 section 3.3).
	RS256
)

// String returns the canonical "alg" header value for the algorithm.
// Unrecognized algorithms render as "UNKNOWN", which no signer accepts.
func (a Algorithm) String() string {
	switch a {
	case RS256:
		return "RS256"
	default:
		return "UNKNOWN"
	}
}

// Supported reports whether the signer can produce signatures with a.
func (a Algorithm) Supported() bool {
	return a == RS256
}

// Header is a token header document with typed setters for the
// registered JWT header fields.
type Header struct {
	Document
}

// SetType sets the "typ" header field, conventionally "JWT".
func (h *Header) SetType(tokenType string) {
	h.Set(HeaderType, tokenType)
}

// SetContentType sets the "cty" header field.
func (h *Header) SetContentType(contentType string) {
	h.Set(HeaderContentType, contentType)
}

// SignatureHeader is the JWS protected header consumed by the signer.
type SignatureHeader struct {
	Header
}

// SetAlgorithm stores the canonical identifier of alg in the "alg" field.
// Unrecognized algorithms are stored as "UNKNOWN" and rejected at signing
// time, never silently signed.
func (h *SignatureHeader) SetAlgorithm(alg Algorithm) {
	h.Set(HeaderAlgorithm, alg.String())
}

// SetKeyID sets the "kid" header field.
func (h *SignatureHeader) SetKeyID(keyID string) {
	h.Set(HeaderKeyID, keyID)
}
