package memory

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/fishpi-cli/internal/domain"
	"github.com/bnema/fishpi-cli/internal/logging"
	"github.com/bnema/fishpi-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	errUnknownMessage = errors.New("message not found")
	errNotAuthor      = errors.New("message was sent by another user")
	errInvalidAmount  = errors.New("transfer amount must be positive")
)

type ChatMessage struct {
	ID      string
	From    string
	Text    string
	Revoked bool
}

type SentRedPacket struct {
	From   string
	Packet domain.RedPacket
}

type PointTransfer struct {
	From   string
	To     string
	Amount int
	Memo   string
}

type Breezemoon struct {
	From string
	Text string
}

// Forum is an in-process forum backend. It keeps every call it receives so
// the terminal client can run, and be tested, without a network.
type Forum struct {
	mu     sync.Mutex
	logger *zap.SugaredLogger

	keys      map[string]string
	profiles  map[string]domain.UserProfile
	liveness  map[string]float64
	checkedIn map[string]bool
	connected map[string]int

	chats       []ChatMessage
	packets     []SentRedPacket
	transfers   []PointTransfer
	breezemoons []Breezemoon
	siguo       int
}

var (
	_ ports.Authenticator = (*Forum)(nil)
	_ ports.Forum         = (*Forum)(nil)
	_ ports.Connector     = (*Forum)(nil)
)

func NewForum(logger *zap.SugaredLogger) *Forum {
	return &Forum{
		logger:    logging.OrDiscard(logger),
		keys:      map[string]string{},
		profiles:  map[string]domain.UserProfile{},
		liveness:  map[string]float64{},
		checkedIn: map[string]bool{},
		connected: map[string]int{},
	}
}

// Authenticate accepts any non-empty password and derives a stable session
// key from the credentials.
func (f *Forum) Authenticate(ctx context.Context, username, password, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	sum := sha256.Sum256([]byte(username + ":" + password))
	key := hex.EncodeToString(sum[:16])

	f.mu.Lock()
	defer f.mu.Unlock()

	f.keys[key] = username
	if _, ok := f.profiles[username]; !ok {
		f.profiles[username] = domain.UserProfile{Name: username, Nickname: username}
	}
	f.logger.Infow("login", "username", username)

	return key, nil
}

func (f *Forum) SendChat(ctx context.Context, apiKey, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	from, err := f.userLocked(apiKey)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	f.chats = append(f.chats, ChatMessage{ID: id, From: from, Text: text})
	f.logger.Infow("chat message", "from", from, "id", id)

	return id, nil
}

func (f *Forum) SendRedPacket(ctx context.Context, apiKey string, packet domain.RedPacket) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := packet.Validate(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	from, err := f.userLocked(apiKey)
	if err != nil {
		return err
	}

	f.packets = append(f.packets, SentRedPacket{From: from, Packet: packet})
	f.logger.Infow("red packet", "from", from, "type", packet.Type, "money", packet.Money, "count", packet.Count)

	return nil
}

func (f *Forum) RevokeMessage(ctx context.Context, apiKey, messageID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	from, err := f.userLocked(apiKey)
	if err != nil {
		return err
	}

	for i := range f.chats {
		if f.chats[i].ID != messageID {
			continue
		}
		if f.chats[i].From != from {
			return fmt.Errorf("revoke %s: %w", messageID, errNotAuthor)
		}
		f.chats[i].Revoked = true
		f.logger.Infow("revoke message", "from", from, "id", messageID)
		return nil
	}

	return fmt.Errorf("revoke %s: %w", messageID, errUnknownMessage)
}

func (f *Forum) Siguo(ctx context.Context, apiKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	from, err := f.userLocked(apiKey)
	if err != nil {
		return err
	}

	f.siguo++
	f.logger.Infow("siguo", "from", from)
	return nil
}

// OnlineUsers lists the users holding at least one live connection, by name.
func (f *Forum) OnlineUsers(ctx context.Context, apiKey string) ([]domain.OnlineUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.userLocked(apiKey); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(f.connected))
	for name, count := range f.connected {
		if count > 0 {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	users := make([]domain.OnlineUser, 0, len(names))
	for _, name := range names {
		users = append(users, domain.OnlineUser{Name: name})
	}
	return users, nil
}

func (f *Forum) Transfer(ctx context.Context, apiKey string, amount int, to, memo string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount <= 0 {
		return errInvalidAmount
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	from, err := f.userLocked(apiKey)
	if err != nil {
		return err
	}
	recipient, ok := f.profiles[to]
	if !ok {
		return fmt.Errorf("transfer to %q: %w", to, domain.ErrUserNotFound)
	}

	sender := f.profiles[from]
	sender.Points -= amount
	f.profiles[from] = sender
	recipient.Points += amount
	f.profiles[to] = recipient

	f.transfers = append(f.transfers, PointTransfer{From: from, To: to, Amount: amount, Memo: memo})
	f.logger.Infow("transfer", "from", from, "to", to, "amount", amount)
	return nil
}

// UserInfo returns nil without error when the user does not exist.
func (f *Forum) UserInfo(ctx context.Context, apiKey, username string) (*domain.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.userLocked(apiKey); err != nil {
		return nil, err
	}

	profile, ok := f.profiles[username]
	if !ok {
		return nil, nil
	}
	profile.Online = f.connected[username] > 0
	return &profile, nil
}

func (f *Forum) Liveness(ctx context.Context, apiKey string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	user, err := f.userLocked(apiKey)
	if err != nil {
		return 0, err
	}
	return f.liveness[user], nil
}

func (f *Forum) CheckedIn(ctx context.Context, apiKey string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	user, err := f.userLocked(apiKey)
	if err != nil {
		return false, err
	}
	return f.checkedIn[user], nil
}

func (f *Forum) SendBreezemoon(ctx context.Context, apiKey, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	from, err := f.userLocked(apiKey)
	if err != nil {
		return err
	}

	f.breezemoons = append(f.breezemoons, Breezemoon{From: from, Text: text})
	f.logger.Infow("breezemoon", "from", from)
	return nil
}

func (f *Forum) SetProfile(profile domain.UserProfile) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.profiles[profile.Name] = profile
}

func (f *Forum) SetLiveness(username string, liveness float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.liveness[username] = liveness
}

func (f *Forum) SetCheckedIn(username string, checked bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.checkedIn[username] = checked
}

func (f *Forum) Chats() []ChatMessage {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.chats)
}

func (f *Forum) RedPackets() []SentRedPacket {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.packets)
}

func (f *Forum) Transfers() []PointTransfer {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.transfers)
}

func (f *Forum) Breezemoons() []Breezemoon {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.breezemoons)
}

func (f *Forum) SiguoCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.siguo
}

func (f *Forum) userLocked(apiKey string) (string, error) {
	user, ok := f.keys[apiKey]
	if !ok {
		return "", domain.ErrInvalidCredentials
	}
	return user, nil
}
