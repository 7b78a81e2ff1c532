package auth_test

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/arthur-debert/planner/auth"
	"github.com/arthur-debert/planner/storage"
	"github.com/arthur-debert/planner/store"
	"github.com/arthur-debert/planner/testutil"
)

func newService(kv storage.KV) *auth.Service {
	return auth.NewService(kv,
		auth.WithCost(bcrypt.MinCost),
		auth.WithLogger(testutil.SilentLogger()))
}

func TestRegisterAndVerify(t *testing.T) {
	s := newService(storage.NewMemory())

	if err := s.Register("Ada Lovelace", "ada@example.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	ok, err := s.Verify("ada@example.com", "s3cret")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !ok {
		t.Error("expected correct credentials to verify")
	}
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	s := newService(storage.NewMemory())
	if err := s.Register("Ada Lovelace", "ada@example.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	ok, err := s.Verify("ada@example.com", "wrong")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if ok {
		t.Error("expected wrong password to fail verification")
	}
}

func TestVerifyRejectsUnknownEmail(t *testing.T) {
	s := newService(storage.NewMemory())
	if err := s.Register("Ada Lovelace", "ada@example.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	ok, err := s.Verify("other@example.com", "s3cret")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if ok {
		t.Error("expected unknown email to fail verification")
	}
}

func TestVerifyWithoutAccount(t *testing.T) {
	s := newService(storage.NewMemory())

	ok, err := s.Verify("nobody@example.com", "x")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if ok {
		t.Error("expected verification to fail with no registered account")
	}
}

func TestStoredAccountNeverContainsPlaintextPassword(t *testing.T) {
	kv := storage.NewMemory()
	s := newService(kv)

	const password = "correct-horse-battery"
	if err := s.Register("Ada Lovelace", "ada@example.com", password); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	payload, found, err := kv.Get(auth.Key)
	if err != nil || !found {
		t.Fatalf("expected stored account, found=%v err=%v", found, err)
	}
	if strings.Contains(payload, password) {
		t.Error("stored account must not contain the plaintext password")
	}

	acct, found, err := s.Account()
	if err != nil || !found {
		t.Fatalf("expected account, found=%v err=%v", found, err)
	}
	if acct.PasswordHash == "" || acct.PasswordHash == password {
		t.Error("expected a password hash distinct from the plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		t.Errorf("expected stored hash to match the password: %v", err)
	}
}

func TestRegisterReplacesPreviousAccount(t *testing.T) {
	s := newService(storage.NewMemory())

	if err := s.Register("Ada Lovelace", "ada@example.com", "first"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := s.Register("Grace Hopper", "grace@example.com", "second"); err != nil {
		t.Fatalf("re-register failed: %v", err)
	}

	if ok, _ := s.Verify("ada@example.com", "first"); ok {
		t.Error("expected the first account to be replaced")
	}
	if ok, _ := s.Verify("grace@example.com", "second"); !ok {
		t.Error("expected the second account to verify")
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	s := newService(storage.NewMemory())

	tests := []struct {
		name                      string
		fullName, email, password string
	}{
		{"blank name", "   ", "ada@example.com", "s3cret"},
		{"empty email", "Ada", "", "s3cret"},
		{"malformed email", "Ada", "not-an-email", "s3cret"},
		{"blank password", "Ada", "ada@example.com", "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Register(tt.fullName, tt.email, tt.password)
			if !store.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestAccountTreatsMalformedPayloadAsAbsent(t *testing.T) {
	kv := storage.NewMemory()
	if err := kv.Set(auth.Key, "{broken"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	s := newService(kv)
	if _, found, err := s.Account(); err != nil || found {
		t.Errorf("expected malformed account treated as absent, found=%v err=%v", found, err)
	}
}
