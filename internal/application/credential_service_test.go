package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/fishpi-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialServiceRememberThenLoad(t *testing.T) {
	t.Parallel()

	repo := &inMemoryConfigRepo{}
	state := NewRuntimeState(domain.DefaultRuntimeConfig(), repo, nil)
	store := newInMemorySecretStore()
	service := NewCredentialService(store, state)

	creds := domain.Credentials{Username: "alice", Password: "pw", APIKey: "key-alice"}
	require.NoError(t, service.Remember(context.Background(), creds))

	assert.Contains(t, store.values, "fishpi://alice/credentials")
	assert.Equal(t, "alice", repo.cfg.Auth.Username)

	ref, ok := state.Snapshot().Account("alice")
	require.True(t, ok)

	got, err := service.Load(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, creds, got)
}

func TestCredentialServiceStoresCredentialsDocument(t *testing.T) {
	t.Parallel()

	store := newInMemorySecretStore()
	service := NewCredentialService(store, NewRuntimeState(domain.DefaultRuntimeConfig(), nil, nil))

	creds := domain.Credentials{Username: "alice", Password: "pw", APIKey: "key-alice"}
	require.NoError(t, service.Remember(context.Background(), creds))

	assert.JSONEq(t, `{"password":"pw","api_key":"key-alice"}`, store.values["fishpi://alice/credentials"])
}

func TestCredentialServiceRememberRollsBackSecretWhenSaveFails(t *testing.T) {
	t.Parallel()

	saveErr := errors.New("save failed")
	state := NewRuntimeState(domain.DefaultRuntimeConfig(), &inMemoryConfigRepo{saveErr: saveErr}, nil)
	store := newInMemorySecretStore()
	service := NewCredentialService(store, state)

	err := service.Remember(context.Background(), domain.Credentials{Username: "alice", Password: "pw", APIKey: "k"})
	require.ErrorIs(t, err, saveErr)
	assert.Empty(t, store.values)
}

func TestCredentialServiceRememberJoinsRollbackFailure(t *testing.T) {
	t.Parallel()

	saveErr := errors.New("save failed")
	deleteErr := errors.New("delete failed")
	state := NewRuntimeState(domain.DefaultRuntimeConfig(), &inMemoryConfigRepo{saveErr: saveErr}, nil)
	store := newInMemorySecretStore()
	store.deleteErr = deleteErr
	service := NewCredentialService(store, state)

	err := service.Remember(context.Background(), domain.Credentials{Username: "alice", Password: "pw", APIKey: "k"})
	require.ErrorIs(t, err, saveErr)
	require.ErrorIs(t, err, deleteErr)
}

func TestCredentialServiceRememberRequiresUsername(t *testing.T) {
	t.Parallel()

	service := NewCredentialService(newInMemorySecretStore(), NewRuntimeState(domain.DefaultRuntimeConfig(), nil, nil))

	err := service.Remember(context.Background(), domain.Credentials{Username: "  "})
	assert.ErrorContains(t, err, "username is required")
}

func TestCredentialServiceLoadWithoutSecretRef(t *testing.T) {
	t.Parallel()

	service := NewCredentialService(newInMemorySecretStore(), NewRuntimeState(domain.DefaultRuntimeConfig(), nil, nil))

	_, err := service.Load(context.Background(), domain.AccountRef{Name: "alice"})
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestCredentialServiceLoadAllSkipsBrokenAccounts(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultRuntimeConfig()
	cfg.Accounts = []domain.AccountRef{
		{Name: "alice", SecretRef: "fishpi://alice/credentials"},
		{Name: "bob", SecretRef: "fishpi://bob/credentials"},
	}
	store := newInMemorySecretStore()
	store.values["fishpi://alice/credentials"] = `{"password":"pw","api_key":"key-alice"}`
	service := NewCredentialService(store, NewRuntimeState(cfg, nil, nil))

	creds, err := service.LoadAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
	assert.Equal(t, []domain.Credentials{{Username: "alice", Password: "pw", APIKey: "key-alice"}}, creds)
}
