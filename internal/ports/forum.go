package ports

import (
	"context"

	"github.com/bnema/fishpi-cli/internal/domain"
)

type Authenticator interface {
	// Authenticate returns the session key for the account. An empty key
	// with a nil error means the forum has not accepted the login yet.
	Authenticate(ctx context.Context, username, password, code string) (string, error)
}

// Forum is the chat-room and user surface consumed by console commands.
// Every call acts on behalf of the account owning apiKey.
type Forum interface {
	SendChat(ctx context.Context, apiKey, text string) (string, error)
	SendRedPacket(ctx context.Context, apiKey string, packet domain.RedPacket) error
	RevokeMessage(ctx context.Context, apiKey, messageID string) error
	Siguo(ctx context.Context, apiKey string) error
	OnlineUsers(ctx context.Context, apiKey string) ([]domain.OnlineUser, error)

	Transfer(ctx context.Context, apiKey string, amount int, to, memo string) error
	UserInfo(ctx context.Context, apiKey, username string) (*domain.UserProfile, error)
	Liveness(ctx context.Context, apiKey string) (float64, error)
	CheckedIn(ctx context.Context, apiKey string) (bool, error)
	SendBreezemoon(ctx context.Context, apiKey, text string) error
}

// Connection is a live handle (e.g. a chat-room channel) owned by a session.
type Connection interface {
	Start(ctx context.Context) error
	Stop() error
}

type Connector interface {
	Connect(endpoint string, session domain.Session) Connection
}

type PasswordPrompter interface {
	ReadPassword(ctx context.Context) (string, error)
}
