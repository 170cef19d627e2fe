package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/fishpi-cli/internal/domain"
	"github.com/bnema/fishpi-cli/internal/ports"
)

type storedCredentials struct {
	Password string `json:"password"`
	APIKey   string `json:"api_key"`
}

type CredentialService struct {
	store ports.SecretStore
	state *RuntimeState
}

func NewCredentialService(store ports.SecretStore, state *RuntimeState) *CredentialService {
	return &CredentialService{store: store, state: state}
}

func SecretRefFor(username string) string {
	return fmt.Sprintf("fishpi://%s/credentials", strings.TrimSpace(username))
}

// Remember stores the secret material and records the account as the default
// login. The stored secret is rolled back when the account ref cannot be saved.
func (s *CredentialService) Remember(ctx context.Context, creds domain.Credentials) error {
	if strings.TrimSpace(creds.Username) == "" {
		return errors.New("username is required")
	}

	value, err := json.Marshal(storedCredentials{Password: creds.Password, APIKey: creds.APIKey})
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	ref := domain.AccountRef{Name: creds.Username, SecretRef: SecretRefFor(creds.Username)}
	previous, hadPrevious := s.state.Snapshot().Account(creds.Username)

	if err := s.store.Put(ctx, ref.SecretRef, string(value)); err != nil {
		return fmt.Errorf("store credentials: %w", err)
	}

	if err := s.state.RememberAccount(ctx, ref); err != nil {
		if rollbackErr := s.store.Delete(ctx, ref.SecretRef); rollbackErr != nil {
			return fmt.Errorf("save account and rollback stored credentials: %w", errors.Join(err, rollbackErr))
		}
		return fmt.Errorf("save account: %w", err)
	}

	if hadPrevious && previous.SecretRef != "" && previous.SecretRef != ref.SecretRef {
		if err := s.store.Delete(ctx, previous.SecretRef); err != nil {
			return fmt.Errorf("delete previous credentials: %w", err)
		}
	}

	return nil
}

func (s *CredentialService) Load(ctx context.Context, ref domain.AccountRef) (domain.Credentials, error) {
	if ref.SecretRef == "" {
		return domain.Credentials{}, fmt.Errorf("account %q: %w", ref.Name, domain.ErrSecretNotFound)
	}

	raw, err := s.store.Get(ctx, ref.SecretRef)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("load credentials for %q: %w", ref.Name, err)
	}

	var stored storedCredentials
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return domain.Credentials{}, fmt.Errorf("decode credentials for %q: %w", ref.Name, err)
	}

	return domain.Credentials{
		Username: ref.Name,
		Password: stored.Password,
		APIKey:   stored.APIKey,
	}, nil
}

// LoadAll resolves every persisted account. Accounts whose secret cannot be
// read are reported in the joined error and skipped.
func (s *CredentialService) LoadAll(ctx context.Context) ([]domain.Credentials, error) {
	accounts := s.state.Snapshot().Accounts

	out := make([]domain.Credentials, 0, len(accounts))
	var errs error
	for _, ref := range accounts {
		creds, err := s.Load(ctx, ref)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		out = append(out, creds)
	}

	return out, errs
}
