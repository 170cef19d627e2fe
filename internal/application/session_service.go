package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/fishpi-cli/internal/domain"
	"github.com/bnema/fishpi-cli/internal/logging"
	"github.com/bnema/fishpi-cli/internal/ports"
	"go.uber.org/zap"
)

const ChatRoomEndpoint = "wss://fishpi.cn/chat-room-channel"

var errPromptUnavailable = errors.New("interactive password prompt unavailable")

type sessionEntry struct {
	session domain.Session
	conns   map[string]ports.Connection
}

// SessionService is the registry of logged-in identities. Exactly one of them
// is current once the first login succeeded; the current name is always a key
// of the registry.
type SessionService struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
	order   []string
	current string

	auth      ports.Authenticator
	connector ports.Connector
	prompter  ports.PasswordPrompter
	creds     *CredentialService
	logger    *zap.SugaredLogger
}

func NewSessionService(auth ports.Authenticator, connector ports.Connector, prompter ports.PasswordPrompter, creds *CredentialService, logger *zap.SugaredLogger) *SessionService {
	return &SessionService{
		entries:   map[string]*sessionEntry{},
		auth:      auth,
		connector: connector,
		prompter:  prompter,
		creds:     creds,
		logger:    logging.OrDiscard(logger),
	}
}

// Add registers an offline session. Credentials of a known session are
// refreshed; its online state and connections are kept.
func (s *SessionService) Add(creds domain.Credentials) domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addLocked(creds).session
}

func (s *SessionService) addLocked(creds domain.Credentials) *sessionEntry {
	if entry, ok := s.entries[creds.Username]; ok {
		entry.session.Password = creds.Password
		entry.session.APIKey = creds.APIKey
		return entry
	}

	entry := &sessionEntry{
		session: domain.NewSession(creds),
		conns:   map[string]ports.Connection{},
	}
	s.entries[creds.Username] = entry
	s.order = append(s.order, creds.Username)
	return entry
}

func (s *SessionService) Current() (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[s.current]
	if !ok {
		return domain.Session{}, false
	}
	return entry.session, true
}

func (s *SessionService) Get(name string) (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[name]
	if !ok {
		return domain.Session{}, false
	}
	return entry.session, true
}

// List returns the sessions in registration order.
func (s *SessionService) List() []domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Session, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.entries[name].session)
	}
	return out
}

// Login authenticates username (prompting when password is empty), persists
// the credentials and makes the identity current and online.
func (s *SessionService) Login(ctx context.Context, username, password, code string) (domain.Session, error) {
	creds, err := s.authenticate(ctx, username, password, code)
	if err != nil {
		return domain.Session{}, err
	}
	s.remember(ctx, creds)

	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.entries[s.current]; ok && s.current != username {
		s.offlineLocked(cur)
	}
	entry := s.addLocked(creds)
	s.onlineLocked(ctx, entry)
	s.current = username
	return entry.session, nil
}

// Change switches the current identity to target. The current session goes
// offline first. A known target goes online without prompting; an unknown one
// is authenticated interactively until the forum returns a session key or ctx
// is cancelled.
func (s *SessionService) Change(ctx context.Context, target string) error {
	s.mu.Lock()
	if cur, ok := s.entries[s.current]; ok {
		s.offlineLocked(cur)
	}
	_, known := s.entries[target]
	s.mu.Unlock()

	if !known {
		creds, err := s.authenticate(ctx, target, "", "")
		if err != nil {
			return err
		}
		s.remember(ctx, creds)

		s.mu.Lock()
		s.addLocked(creds)
		s.mu.Unlock()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entries[target]
	s.onlineLocked(ctx, entry)
	s.current = target
	return nil
}

// Offline stops every connection of the named session and marks it offline.
func (s *SessionService) Offline(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, domain.ErrSessionNotFound)
	}
	s.offlineLocked(entry)
	return nil
}

// HasConnection reports whether the current session holds a handle for endpoint.
func (s *SessionService) HasConnection(endpoint string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[s.current]
	if !ok {
		return false
	}
	_, ok = entry.conns[endpoint]
	return ok
}

// StartConnection opens endpoint for the current session. It returns false
// when a handle for endpoint already exists.
func (s *SessionService) StartConnection(ctx context.Context, endpoint string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[s.current]
	if !ok {
		return false, domain.ErrNoCurrentSession
	}
	if _, exists := entry.conns[endpoint]; exists {
		return false, nil
	}
	if err := s.connectLocked(ctx, entry, endpoint); err != nil {
		return false, err
	}
	return true, nil
}

// StopConnections stops every handle of the current session and returns how
// many were live.
func (s *SessionService) StopConnections() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[s.current]
	if !ok {
		return 0
	}
	return s.stopConnsLocked(entry)
}

func (s *SessionService) RecordMessage(messageID string) {
	if messageID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[s.current]; ok {
		entry.session.LastMessageID = messageID
	}
}

func (s *SessionService) authenticate(ctx context.Context, username, password, code string) (domain.Credentials, error) {
	for {
		if password == "" {
			if s.prompter == nil {
				return domain.Credentials{}, errPromptUnavailable
			}
			entered, err := s.prompter.ReadPassword(ctx)
			if err != nil {
				return domain.Credentials{}, fmt.Errorf("read password for %q: %w", username, err)
			}
			password = entered
		}

		key, err := s.auth.Authenticate(ctx, username, password, code)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return domain.Credentials{}, ctxErr
			}
			s.logger.Warnw("authenticate", "username", username, "error", err)
		}
		if key != "" {
			return domain.Credentials{Username: username, Password: password, APIKey: key}, nil
		}
		password = ""
	}
}

func (s *SessionService) remember(ctx context.Context, creds domain.Credentials) {
	if s.creds == nil {
		return
	}
	if err := s.creds.Remember(ctx, creds); err != nil {
		s.logger.Warnw("remember credentials", "username", creds.Username, "error", err)
	}
}

func (s *SessionService) onlineLocked(ctx context.Context, entry *sessionEntry) {
	entry.session.Online = true
	if _, exists := entry.conns[ChatRoomEndpoint]; exists {
		return
	}
	if err := s.connectLocked(ctx, entry, ChatRoomEndpoint); err != nil {
		s.logger.Warnw("start chat room connection", "username", entry.session.Name, "error", err)
	}
}

func (s *SessionService) offlineLocked(entry *sessionEntry) {
	s.stopConnsLocked(entry)
	entry.session.Online = false
}

func (s *SessionService) connectLocked(ctx context.Context, entry *sessionEntry, endpoint string) error {
	if s.connector == nil {
		return nil
	}
	conn := s.connector.Connect(endpoint, entry.session)
	if err := conn.Start(ctx); err != nil {
		return fmt.Errorf("start %s: %w", endpoint, err)
	}
	entry.conns[endpoint] = conn
	return nil
}

func (s *SessionService) stopConnsLocked(entry *sessionEntry) int {
	stopped := 0
	for endpoint, conn := range entry.conns {
		if err := conn.Stop(); err != nil {
			s.logger.Warnw("stop connection", "username", entry.session.Name, "endpoint", endpoint, "error", err)
		}
		delete(entry.conns, endpoint)
		stopped++
	}
	return stopped
}
