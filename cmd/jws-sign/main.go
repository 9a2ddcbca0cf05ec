package main

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/mimetikxs/jwsx"
)

func main() {
	envPath := defaultEnvPath()
	if err := loadEnvFile(envPath); err != nil {
		log.Printf("warning: load %s: %v", envPath, err)
	}

	var (
		defaultKeyFile    = os.Getenv("JWSX_KEY_FILE")
		defaultPassphrase = os.Getenv("JWSX_KEY_PASSPHRASE")
		defaultKeyID      = os.Getenv("JWSX_KEY_ID")
		defaultIssuer     = os.Getenv("JWSX_ISSUER")
		defaultSubject    = os.Getenv("JWSX_SUBJECT")
		defaultAudience   = os.Getenv("JWSX_AUDIENCE")
	)

	keyFile := flag.String("key", defaultKeyFile, "Path to PEM-encoded RSA private key (env JWSX_KEY_FILE)")
	passphrase := flag.String("passphrase", defaultPassphrase, "Private key passphrase (env JWSX_KEY_PASSPHRASE)")
	keyID := flag.String("kid", defaultKeyID, "Key id for the token header (env JWSX_KEY_ID)")
	issuer := flag.String("issuer", defaultIssuer, "Issuer claim (env JWSX_ISSUER)")
	subject := flag.String("subject", defaultSubject, "Subject claim (env JWSX_SUBJECT)")
	audience := flag.String("audience", defaultAudience, "Audience values, comma-separated (env JWSX_AUDIENCE)")
	ttl := flag.Duration("ttl", time.Hour, "Token lifetime")
	dev := flag.Bool("dev", false, "Mint a synthetic dev-mode token when subject is not set")
	show := flag.Bool("show", false, "Print the decoded header and payload alongside the token")
	flag.Parse()

	if *keyFile == "" {
		flag.Usage()
		log.Fatal("key file is required (via flag, .env, or environment variables)")
	}

	keyPEM, err := os.ReadFile(*keyFile)
	if err != nil {
		log.Fatalf("read key file: %v", err)
	}

	signer, err := jwsx.NewSigner(jwsx.SignerConfig{
		PrivateKeyPEM: keyPEM,
		Passphrase:    *passphrase,
		KeyID:         *keyID,
		Issuer:        *issuer,
		TokenTTL:      *ttl,
	})
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}

	claims := jwsx.Claims{Subject: *subject}
	if *audience != "" {
		claims.Audience = splitAudience(*audience)
	}
	if *dev && claims.Subject == "" {
		devClaims := jwsx.DefaultDevClaims(*audience)
		claims = devClaims.ToClaims()
		if *issuer != "" {
			claims.Issuer = *issuer
		}
	}

	token, err := signer.Issue(claims)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
	if *show {
		printSegments(token)
	}
}

func splitAudience(raw string) []string {
	parts := strings.Split(raw, ",")
	audience := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			audience = append(audience, trimmed)
		}
	}
	return audience
}

func printSegments(token string) {
	segments := strings.Split(token, ".")
	names := []string{"header", "payload"}
	for i, name := range names {
		decoded, err := base64.RawURLEncoding.DecodeString(segments[i])
		if err != nil {
			log.Printf("warning: decode %s: %v", name, err)
			continue
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, decoded, "", "  "); err != nil {
			log.Printf("warning: format %s: %v", name, err)
			continue
		}
		fmt.Printf("== %s ==\n%s\n", name, buf.String())
	}
}

func defaultEnvPath() string {
	if path := os.Getenv("JWSX_ENV_FILE"); path != "" {
		return path
	}
	return ".env"
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			log.Printf("warning: invalid line %d in %s", lineNum, filepath.Base(path))
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			log.Printf("warning: set env %s: %v", key, err)
		}
	}
	return scanner.Err()
}
