package jwsx

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/youmark/pkcs8"
)

// ParseRSAPrivateKey decodes a PEM-encoded RSA private key. It accepts
// PKCS#1 ("RSA PRIVATE KEY") and PKCS#8 ("PRIVATE KEY") blocks, plus
// passphrase-protected keys in either the encrypted PKCS#8 form or the
// legacy RFC 1423 form. An empty passphrase means the key is expected to
// be unencrypted.
func ParseRSAPrivateKey(keyPEM []byte, passphrase string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(keyPEM)
	if block == nil {
		return nil, errors.New("malformed or missing PEM block")
	}

	der := block.Bytes
	if x509.IsEncryptedPEMBlock(block) { //nolint:staticcheck // legacy RFC 1423 keys still circulate
		decrypted, err := x509.DecryptPEMBlock(block, []byte(passphrase)) //nolint:staticcheck
		if err != nil {
			return nil, fmt.Errorf("decrypt PEM block: %w", err)
		}
		der = decrypted
	}

	switch block.Type {
	case "RSA PRIVATE KEY":
		return x509.ParsePKCS1PrivateKey(der)
	case "ENCRYPTED PRIVATE KEY":
		key, err := pkcs8.ParsePKCS8PrivateKeyRSA(der, []byte(passphrase))
		if err != nil {
			return nil, fmt.Errorf("encrypted PKCS#8: %w", err)
		}
		return key, nil
	case "PRIVATE KEY":
		return parsePKCS8RSA(der)
	default:
		// Unusual block label; try both unencrypted forms before giving up.
		if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
			return key, nil
		}
		return parsePKCS8RSA(der)
	}
}

func parsePKCS8RSA(der []byte) (*rsa.PrivateKey, error) {
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("expected an RSA private key, got %T", parsed)
	}
	return key, nil
}
