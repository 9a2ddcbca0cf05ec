package jwsx

import (
	"encoding/base64"
	"reflect"
	"strings"
	"testing"
)

func TestDocumentSetAndGet(t *testing.T) {
	var doc Document
	doc.Set("iss", "issuer1")
	doc.Set("iat", uint64(1000))

	value, ok := doc.Get("iss")
	if !ok || value != "issuer1" {
		t.Fatalf("unexpected iss: %v (present=%v)", value, ok)
	}
	if doc.Len() != 2 {
		t.Fatalf("unexpected length: %d", doc.Len())
	}
	if !reflect.DeepEqual(doc.Keys(), []string{"iss", "iat"}) {
		t.Fatalf("unexpected key order: %v", doc.Keys())
	}
}

func TestDocumentOverwriteKeepsPosition(t *testing.T) {
	var doc Document
	doc.Set("a", 1)
	doc.Set("b", 2)
	doc.Set("a", 3)

	if !reflect.DeepEqual(doc.Keys(), []string{"a", "b"}) {
		t.Fatalf("overwrite moved key: %v", doc.Keys())
	}
	value, _ := doc.Get("a")
	if value != 3 {
		t.Fatalf("overwrite lost value: %v", value)
	}
}

func TestDocumentClear(t *testing.T) {
	var doc Document
	doc.Set("a", 1)
	doc.Set("b", 2)
	doc.Clear("a")

	if _, ok := doc.Get("a"); ok {
		t.Fatal("cleared key still present")
	}
	if !reflect.DeepEqual(doc.Keys(), []string{"b"}) {
		t.Fatalf("unexpected keys after clear: %v", doc.Keys())
	}
}

func TestDocumentClearMissingKeyIsNoOp(t *testing.T) {
	var doc Document
	doc.Set("a", 1)

	doc.Clear("nonexistent-key")

	if doc.Len() != 1 {
		t.Fatalf("clear of missing key changed the document: %v", doc.Keys())
	}
	if value, _ := doc.Get("a"); value != 1 {
		t.Fatalf("clear of missing key changed a value: %v", value)
	}

	// Must also hold for an empty document.
	var empty Document
	empty.Clear("anything")
	if empty.Len() != 0 {
		t.Fatal("clear on empty document mutated it")
	}
}

func TestDocumentSerializeCompact(t *testing.T) {
	var doc Document
	doc.Set("alg", "RS256")
	doc.Set("typ", "JWT")

	got, err := doc.Serialize(0)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if got != `{"alg":"RS256","typ":"JWT"}` {
		t.Fatalf("unexpected compact form: %s", got)
	}
}

func TestDocumentSerializeIndented(t *testing.T) {
	var doc Document
	doc.Set("iss", "issuer1")
	doc.Set("iat", uint64(1000))

	got, err := doc.Serialize(2)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := "{\n  \"iss\": \"issuer1\",\n  \"iat\": 1000\n}"
	if got != want {
		t.Fatalf("unexpected indented form:\n%s\nwant:\n%s", got, want)
	}
}

func TestDocumentSerializeEmpty(t *testing.T) {
	var doc Document
	got, err := doc.Serialize(0)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if got != "{}" {
		t.Fatalf("unexpected empty form: %s", got)
	}
}

func TestDocumentEncodeCompact(t *testing.T) {
	var doc Document
	doc.Set("alg", "RS256")
	doc.Set("typ", "JWT")

	encoded, err := doc.EncodeCompact()
	if err != nil {
		t.Fatalf("EncodeCompact: %v", err)
	}
	if strings.ContainsAny(encoded, "+/=") {
		t.Fatalf("encoding is not unpadded base64url: %s", encoded)
	}

	decoded, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(decoded) != `{"alg":"RS256","typ":"JWT"}` {
		t.Fatalf("round trip mismatch: %s", decoded)
	}
}
