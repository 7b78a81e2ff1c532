// Package auth holds the planner's single-account identity service. It is
// a local placeholder for a real identity provider: one credential record
// in the key-value store, registered and verified on-device. Unlike the
// mock it replaces, the password is stored only as a bcrypt hash.
package auth

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/arthur-debert/planner/internal/validation"
	"github.com/arthur-debert/planner/storage"
	"github.com/arthur-debert/planner/store"
)

// Key is the fixed storage key the credential record persists under.
const Key = "user"

// Account is the stored credential record. The plaintext password never
// appears in it.
type Account struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// registration is the validated registration input.
type registration struct {
	FullName string `json:"fullName" validate:"notblank"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"notblank"`
}

// Service registers and verifies the single local account.
type Service struct {
	kv   storage.KV
	log  *slog.Logger
	cost int
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger the service reports failures to.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithCost sets the bcrypt cost, lowered in tests.
func WithCost(cost int) Option {
	return func(s *Service) { s.cost = cost }
}

// NewService creates an identity service over kv.
func NewService(kv storage.KV, opts ...Option) *Service {
	s := &Service{kv: kv, cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// Register validates the input and stores the account, replacing any
// previously registered one (the planner is single-account).
func (s *Service) Register(fullName, email, password string) error {
	in := registration{FullName: fullName, Email: email, Password: password}
	if err := validation.Struct(in); err != nil {
		return &store.ValidationError{Err: err}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	payload, err := json.Marshal(Account{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return fmt.Errorf("failed to serialize account: %w", err)
	}

	if err := s.kv.Set(Key, string(payload)); err != nil {
		return fmt.Errorf("failed to store account: %w", err)
	}
	return nil
}

// Verify reports whether email and password match the stored account.
// No account, a different email, or a wrong password all verify false;
// only collaborator failures surface as errors.
func (s *Service) Verify(email, password string) (bool, error) {
	acct, found, err := s.Account()
	if err != nil {
		return false, err
	}
	if !found || acct.Email != email {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) == nil, nil
}

// Account returns the stored account, if one has been registered.
func (s *Service) Account() (Account, bool, error) {
	payload, found, err := s.kv.Get(Key)
	if err != nil {
		return Account{}, false, fmt.Errorf("failed to read account: %w", err)
	}
	if !found {
		return Account{}, false, nil
	}

	var acct Account
	if err := json.Unmarshal([]byte(payload), &acct); err != nil {
		s.log.Warn("stored account is malformed", "error", err)
		return Account{}, false, nil
	}
	return acct, true, nil
}
