package crypto

import (
	"strings"
	"testing"
)

func TestHashPassphraseFormat(t *testing.T) {
	hash, err := HashPassphrase("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("HashPassphrase() unexpected error: %v", err)
	}

	// PHC format: $argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>
	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("HashPassphrase() expected 6 parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("algorithm = %q, want argon2id", parts[1])
	}
	if parts[3] != "m=65536,t=3,p=2" {
		t.Errorf("params = %q, want m=65536,t=3,p=2", parts[3])
	}
}

func TestVerifyPassphraseCorrect(t *testing.T) {
	passphrase := "my-master-passphrase"
	hash, err := HashPassphrase(passphrase)
	if err != nil {
		t.Fatalf("HashPassphrase() unexpected error: %v", err)
	}

	match, err := VerifyPassphrase(passphrase, hash)
	if err != nil {
		t.Fatalf("VerifyPassphrase() unexpected error: %v", err)
	}
	if !match {
		t.Error("VerifyPassphrase() returned false for correct passphrase")
	}
}

func TestVerifyPassphraseWrong(t *testing.T) {
	hash, err := HashPassphrase("correct-passphrase")
	if err != nil {
		t.Fatalf("HashPassphrase() unexpected error: %v", err)
	}

	match, err := VerifyPassphrase("wrong-passphrase", hash)
	if err != nil {
		t.Fatalf("VerifyPassphrase() unexpected error: %v", err)
	}
	if match {
		t.Error("VerifyPassphrase() returned true for wrong passphrase")
	}
}

func TestHashPassphraseSaltsDiffer(t *testing.T) {
	hash1, err := HashPassphrase("same-passphrase")
	if err != nil {
		t.Fatalf("HashPassphrase() unexpected error: %v", err)
	}
	hash2, err := HashPassphrase("same-passphrase")
	if err != nil {
		t.Fatalf("HashPassphrase() unexpected error: %v", err)
	}
	if hash1 == hash2 {
		t.Error("identical hashes for the same passphrase — salt is not random")
	}
}

func TestVerifyPassphraseMalformed(t *testing.T) {
	for _, encoded := range []string{"", "not-a-hash", "$argon2id$v=19$m=65536,t=3,p=2$missing-key"} {
		if _, err := VerifyPassphrase("passphrase", encoded); err == nil {
			t.Errorf("VerifyPassphrase(%q) expected error", encoded)
		}
	}
}
