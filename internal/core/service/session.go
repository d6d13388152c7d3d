package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hoangptkd/clone-ebay/internal/core/domain"
	"github.com/hoangptkd/clone-ebay/internal/core/port"
)

const sessionKey = "session"

// A SessionProvider holds the current session identity, if any, and
// persists it so a restart restores the session. The identity is the
// partition key for the ledgers.
type SessionProvider struct {
	catalog port.Catalog
	kv      port.KV
	current *domain.User
	now     func() time.Time
}

// NewSessionProvider restores a previously persisted session record,
// if one exists.
func NewSessionProvider(catalog port.Catalog, kv port.KV) *SessionProvider {
	s := &SessionProvider{catalog: catalog, kv: kv, now: time.Now}
	s.restore()
	return s
}

func (s *SessionProvider) restore() {
	const op = "SessionProvider.restore"

	b, err := s.kv.Get(sessionKey)
	if err != nil {
		if !isNotFound(err) {
			slog.Warn("starting without session", "op", op, "err", err)
		}
		return
	}

	var u domain.User
	if err := json.Unmarshal(b, &u); err != nil {
		slog.Warn("discarding malformed session record", "op", op, "err", err)
		return
	}
	s.current = &u
}

func (s *SessionProvider) Current() (domain.User, bool) {
	if s.current == nil {
		return domain.User{}, false
	}
	return *s.current, true
}

// Partition returns the current identity as storage partition key, or
// the guest sentinel.
func (s *SessionProvider) Partition() string {
	if s.current == nil {
		return domain.GuestPartition
	}
	return s.current.ID
}

// Login matches email and password exactly against the catalog account
// records. On match the identity is established with the credential
// stripped and persisted; otherwise the session is left untouched.
func (s *SessionProvider) Login(email, password string) (domain.User, error) {
	const op = "SessionProvider.Login"

	for _, u := range s.catalog.Users() {
		if u.Email == email && u.Password == password {
			identity := u.WithoutPassword()
			s.establish(identity)
			return identity, nil
		}
	}
	return domain.User{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidCredentials)
}

// Register fabricates a new identity and establishes it immediately.
// The account is never written back to the catalog document, so it
// lives only as long as the session record.
func (s *SessionProvider) Register(reg domain.Registration) (domain.User, error) {
	const op = "SessionProvider.Register"

	if reg.Name == "" || reg.Email == "" || reg.Password == "" {
		return domain.User{}, fmt.Errorf(
			"%s: name, email and password are required: %w",
			op, domain.ErrValidation)
	}

	identity := domain.User{
		ID:        uuid.NewString(),
		Name:      reg.Name,
		Email:     reg.Email,
		Address:   reg.Address,
		City:      reg.City,
		State:     reg.State,
		ZipCode:   reg.ZipCode,
		Country:   reg.Country,
		Phone:     reg.Phone,
		CreatedAt: s.now(),
	}
	s.establish(identity)
	return identity, nil
}

// Logout clears the session identity and its persisted record.
func (s *SessionProvider) Logout() {
	const op = "SessionProvider.Logout"

	s.current = nil
	if err := s.kv.Delete(sessionKey); err != nil && !isNotFound(err) {
		slog.Warn("failed to clear session record", "op", op, "err", err)
	}
}

// UpdateProfile merges non-empty patch fields into the current
// identity and persists the result.
func (s *SessionProvider) UpdateProfile(patch domain.ProfilePatch) (domain.User, error) {
	const op = "SessionProvider.UpdateProfile"

	if s.current == nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, domain.ErrNoSession)
	}

	u := *s.current
	mergeField(&u.Name, patch.Name)
	mergeField(&u.Email, patch.Email)
	mergeField(&u.Address, patch.Address)
	mergeField(&u.City, patch.City)
	mergeField(&u.State, patch.State)
	mergeField(&u.ZipCode, patch.ZipCode)
	mergeField(&u.Country, patch.Country)
	mergeField(&u.Phone, patch.Phone)

	s.establish(u)
	return u, nil
}

func (s *SessionProvider) establish(u domain.User) {
	const op = "SessionProvider.establish"

	s.current = &u
	b, err := json.Marshal(u)
	if err != nil {
		slog.Warn("session persists in memory only", "op", op, "err", err)
		return
	}
	if err := s.kv.Put(sessionKey, b); err != nil {
		slog.Warn("session persists in memory only", "op", op, "err", err)
	}
}

func mergeField(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
