package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/fishpi-cli/internal/domain"
	"github.com/bnema/fishpi-cli/internal/ports"
)

type inMemoryConfigRepo struct {
	mu      sync.Mutex
	cfg     domain.RuntimeConfig
	saves   int
	saveErr error
}

func (r *inMemoryConfigRepo) Load(context.Context) (domain.RuntimeConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg.Clone(), nil
}

func (r *inMemoryConfigRepo) Save(_ context.Context, cfg domain.RuntimeConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.cfg = cfg.Clone()
	r.saves++
	return nil
}

type inMemorySecretStore struct {
	mu        sync.Mutex
	values    map[string]string
	deleteErr error
}

func newInMemorySecretStore() *inMemorySecretStore {
	return &inMemorySecretStore{values: map[string]string{}}
}

func (s *inMemorySecretStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("%q: %w", key, domain.ErrSecretNotFound)
	}
	return value, nil
}

func (s *inMemorySecretStore) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *inMemorySecretStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.values, key)
	return nil
}

// scriptedAuthenticator accepts a login only when the password matches.
type scriptedAuthenticator struct {
	passwords map[string]string
	calls     int
}

func (a *scriptedAuthenticator) Authenticate(_ context.Context, username, password, _ string) (string, error) {
	a.calls++
	want, ok := a.passwords[username]
	if !ok || want != password {
		return "", domain.ErrInvalidCredentials
	}
	return "key-" + username, nil
}

type scriptedPrompter struct {
	answers []string
	asked   int
}

func (p *scriptedPrompter) ReadPassword(context.Context) (string, error) {
	if p.asked >= len(p.answers) {
		return "", io.EOF
	}
	answer := p.answers[p.asked]
	p.asked++
	return answer, nil
}

type fakeConnection struct {
	endpoint string
	owner    string
	running  bool
	startErr error
}

func (c *fakeConnection) Start(context.Context) error {
	if c.startErr != nil {
		return c.startErr
	}
	c.running = true
	return nil
}

func (c *fakeConnection) Stop() error {
	if !c.running {
		return errors.New("not running")
	}
	c.running = false
	return nil
}

type fakeConnector struct {
	opened []*fakeConnection
}

func (c *fakeConnector) Connect(endpoint string, session domain.Session) ports.Connection {
	conn := &fakeConnection{endpoint: endpoint, owner: session.Name}
	c.opened = append(c.opened, conn)
	return conn
}

func (c *fakeConnector) running() []string {
	var out []string
	for _, conn := range c.opened {
		if conn.running {
			out = append(out, conn.owner)
		}
	}
	return out
}
