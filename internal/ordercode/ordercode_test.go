package ordercode

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateIsDeterministicPerIDAndMillisecond(t *testing.T) {
	at := time.UnixMilli(1700000000000)

	first := Generate("prod-1", at)
	second := Generate("prod-1", at)
	if first != second {
		t.Fatalf("same inputs produced %q and %q", first, second)
	}

	later := Generate("prod-1", at.Add(time.Second))
	if later == "" {
		t.Fatal("expected a code for the later timestamp")
	}
}

func TestGenerateShape(t *testing.T) {
	at := time.UnixMilli(1700000000000)

	for _, id := range []string{"prod-1", "prod-2", "custom-candle", ""} {
		code := Generate(id, at)
		if len(code) != codeLength {
			t.Fatalf("Generate(%q) = %q, want length %d", id, code, codeLength)
		}
		for _, r := range code {
			if !strings.ContainsRune(charset, r) {
				t.Fatalf("code %q contains %q outside the charset", code, r)
			}
		}
	}
}

func TestCharsetExcludesAmbiguousGlyphs(t *testing.T) {
	for _, r := range "IO01" {
		if strings.ContainsRune(charset, r) {
			t.Fatalf("charset must not contain %q", r)
		}
	}
}
