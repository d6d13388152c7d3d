package service_test

import (
	"testing"

	"github.com/hoangptkd/clone-ebay/internal/core/domain"
	"github.com/hoangptkd/clone-ebay/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUsers() []domain.User {
	return []domain.User{
		{
			ID: "1", Name: "Nguyen Van A", Email: "a@example.com",
			Password: "secret", City: "Hanoi", Country: "VN",
		},
		{
			ID: "2", Name: "Tran Thi B", Email: "b@example.com",
			Password: "hunter2",
		},
	}
}

func TestSessionProvider(t *testing.T) {
	catalog := fakeCatalog{users: testUsers()}

	t.Run("StartsAsGuest", func(t *testing.T) {
		s := service.NewSessionProvider(catalog, newMemKV())

		_, ok := s.Current()
		assert.False(t, ok)
		assert.Equal(t, domain.GuestPartition, s.Partition())
	})

	t.Run("LoginExactMatchStripsPassword", func(t *testing.T) {
		s := service.NewSessionProvider(catalog, newMemKV())

		u, err := s.Login("a@example.com", "secret")
		require.NoError(t, err)

		assert.Equal(t, "1", u.ID)
		assert.Empty(t, u.Password)

		current, ok := s.Current()
		require.True(t, ok)
		assert.Empty(t, current.Password)
		assert.Equal(t, "1", s.Partition())
	})

	t.Run("LoginWrongPassword", func(t *testing.T) {
		s := service.NewSessionProvider(catalog, newMemKV())

		_, err := s.Login("a@example.com", "wrong")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

		_, ok := s.Current()
		assert.False(t, ok, "failed login must not establish a session")
	})

	t.Run("LoginUnknownEmail", func(t *testing.T) {
		s := service.NewSessionProvider(catalog, newMemKV())

		_, err := s.Login("nobody@example.com", "secret")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("RegisterFabricatesIdentity", func(t *testing.T) {
		s := service.NewSessionProvider(catalog, newMemKV())

		u, err := s.Register(domain.Registration{
			Name: "New User", Email: "new@example.com", Password: "pw",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, u.ID)
		assert.Empty(t, u.Password)
		assert.False(t, u.CreatedAt.IsZero())

		current, ok := s.Current()
		require.True(t, ok)
		assert.Equal(t, u.ID, current.ID)
	})

	t.Run("RegisterRequiresNameEmailPassword", func(t *testing.T) {
		s := service.NewSessionProvider(catalog, newMemKV())

		_, err := s.Register(domain.Registration{Email: "x@example.com"})
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, ok := s.Current()
		assert.False(t, ok)
	})

	t.Run("RegisterSkipsUniquenessCheck", func(t *testing.T) {
		s := service.NewSessionProvider(catalog, newMemKV())

		u, err := s.Register(domain.Registration{
			Name: "Shadow", Email: "a@example.com", Password: "pw",
		})
		require.NoError(t, err)
		assert.NotEqual(t, "1", u.ID)
	})

	t.Run("LogoutClearsSessionAndRecord", func(t *testing.T) {
		kv := newMemKV()
		s := service.NewSessionProvider(catalog, kv)

		_, err := s.Login("a@example.com", "secret")
		require.NoError(t, err)

		s.Logout()

		_, ok := s.Current()
		assert.False(t, ok)
		assert.Equal(t, domain.GuestPartition, s.Partition())

		_, err = kv.Get("session")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("UpdateProfileMergesNonEmptyFields", func(t *testing.T) {
		s := service.NewSessionProvider(catalog, newMemKV())

		_, err := s.Login("a@example.com", "secret")
		require.NoError(t, err)

		u, err := s.UpdateProfile(domain.ProfilePatch{City: "Da Nang"})
		require.NoError(t, err)

		assert.Equal(t, "Da Nang", u.City)
		assert.Equal(t, "Nguyen Van A", u.Name)
		assert.Equal(t, "VN", u.Country)
	})

	t.Run("UpdateProfileWithoutSession", func(t *testing.T) {
		s := service.NewSessionProvider(catalog, newMemKV())

		_, err := s.UpdateProfile(domain.ProfilePatch{City: "Hue"})
		assert.ErrorIs(t, err, domain.ErrNoSession)
	})

	t.Run("RestoresPersistedSession", func(t *testing.T) {
		kv := newMemKV()

		first := service.NewSessionProvider(catalog, kv)
		_, err := first.Login("a@example.com", "secret")
		require.NoError(t, err)

		second := service.NewSessionProvider(catalog, kv)
		current, ok := second.Current()
		require.True(t, ok)
		assert.Equal(t, "1", current.ID)
	})

	t.Run("MalformedSessionRecordStartsAsGuest", func(t *testing.T) {
		kv := newMemKV()
		require.NoError(t, kv.Put("session", []byte("{oops")))

		s := service.NewSessionProvider(catalog, kv)
		_, ok := s.Current()
		assert.False(t, ok)
	})
}
