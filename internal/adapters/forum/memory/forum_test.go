package memory

import (
	"context"
	"testing"

	"github.com/bnema/fishpi-cli/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func login(t *testing.T, forum *Forum, username string) string {
	t.Helper()

	key, err := forum.Authenticate(context.Background(), username, "pw-"+username, "")
	require.NoError(t, err)
	require.NotEmpty(t, key)
	return key
}

func TestForumAuthenticate(t *testing.T) {
	t.Parallel()

	forum := NewForum(nil)

	first, err := forum.Authenticate(context.Background(), "alice", "pw", "")
	require.NoError(t, err)
	second, err := forum.Authenticate(context.Background(), "alice", "pw", "123456")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := forum.Authenticate(context.Background(), "alice", "other", "")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	_, err = forum.Authenticate(context.Background(), "alice", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestForumSendChatAssignsIDsAndRevokes(t *testing.T) {
	t.Parallel()

	forum := NewForum(nil)
	alice := login(t, forum, "alice")
	bob := login(t, forum, "bob")

	id, err := forum.SendChat(context.Background(), alice, "hello")
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	assert.Error(t, forum.RevokeMessage(context.Background(), bob, id))
	require.NoError(t, forum.RevokeMessage(context.Background(), alice, id))
	assert.ErrorIs(t, forum.RevokeMessage(context.Background(), alice, "missing"), errUnknownMessage)

	chats := forum.Chats()
	require.Len(t, chats, 1)
	assert.Equal(t, ChatMessage{ID: id, From: "alice", Text: "hello", Revoked: true}, chats[0])
}

func TestForumRejectsUnknownKey(t *testing.T) {
	t.Parallel()

	forum := NewForum(nil)

	_, err := forum.SendChat(context.Background(), "nope", "hello")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, forum.Siguo(context.Background(), "nope"), domain.ErrInvalidCredentials)
}

func TestForumSendRedPacketValidates(t *testing.T) {
	t.Parallel()

	forum := NewForum(nil)
	alice := login(t, forum, "alice")

	require.NoError(t, forum.SendRedPacket(context.Background(), alice, domain.NewRedPacket(domain.RedPacketRandom, "那就看运气吧!", 10, 5)))
	assert.Error(t, forum.SendRedPacket(context.Background(), alice, domain.NewRedPacket(domain.RedPacketRandom, "x", 0, 5)))

	packets := forum.RedPackets()
	require.Len(t, packets, 1)
	assert.Equal(t, "alice", packets[0].From)
	assert.Equal(t, 10, packets[0].Packet.Money)
}

func TestForumTransferMovesPoints(t *testing.T) {
	t.Parallel()

	forum := NewForum(nil)
	alice := login(t, forum, "alice")
	forum.SetProfile(domain.UserProfile{Name: "bob", Points: 5})

	require.NoError(t, forum.Transfer(context.Background(), alice, 32, "bob", "thanks"))
	assert.ErrorIs(t, forum.Transfer(context.Background(), alice, 1, "ghost", ""), domain.ErrUserNotFound)
	assert.ErrorIs(t, forum.Transfer(context.Background(), alice, 0, "bob", ""), errInvalidAmount)

	bob, err := forum.UserInfo(context.Background(), alice, "bob")
	require.NoError(t, err)
	require.NotNil(t, bob)
	assert.Equal(t, 37, bob.Points)

	me, err := forum.UserInfo(context.Background(), alice, "alice")
	require.NoError(t, err)
	assert.Equal(t, -32, me.Points)

	assert.Equal(t, []PointTransfer{{From: "alice", To: "bob", Amount: 32, Memo: "thanks"}}, forum.Transfers())
}

func TestForumUserInfoUnknownUserIsNil(t *testing.T) {
	t.Parallel()

	forum := NewForum(nil)
	alice := login(t, forum, "alice")

	profile, err := forum.UserInfo(context.Background(), alice, "ghost")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestForumConnectionsDriveOnlineUsers(t *testing.T) {
	t.Parallel()

	forum := NewForum(nil)
	alice := login(t, forum, "alice")
	login(t, forum, "bob")

	bobConn := forum.Connect("wss://example/chat", domain.Session{Name: "bob"})
	aliceConn := forum.Connect("wss://example/chat", domain.Session{Name: "alice"})
	require.NoError(t, bobConn.Start(context.Background()))
	require.NoError(t, aliceConn.Start(context.Background()))

	users, err := forum.OnlineUsers(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, []domain.OnlineUser{{Name: "alice"}, {Name: "bob"}}, users)

	require.NoError(t, bobConn.Stop())
	assert.ErrorIs(t, bobConn.Stop(), errNotStarted)

	users, err = forum.OnlineUsers(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, []domain.OnlineUser{{Name: "alice"}}, users)

	profile, err := forum.UserInfo(context.Background(), alice, "alice")
	require.NoError(t, err)
	assert.True(t, profile.Online)
}

func TestForumUserStatus(t *testing.T) {
	t.Parallel()

	forum := NewForum(nil)
	alice := login(t, forum, "alice")
	forum.SetLiveness("alice", 42.5)
	forum.SetCheckedIn("alice", true)

	liveness, err := forum.Liveness(context.Background(), alice)
	require.NoError(t, err)
	assert.InDelta(t, 42.5, liveness, 0.001)

	checked, err := forum.CheckedIn(context.Background(), alice)
	require.NoError(t, err)
	assert.True(t, checked)

	require.NoError(t, forum.SendBreezemoon(context.Background(), alice, "摸鱼"))
	assert.Equal(t, []Breezemoon{{From: "alice", Text: "摸鱼"}}, forum.Breezemoons())

	require.NoError(t, forum.Siguo(context.Background(), alice))
	assert.Equal(t, 1, forum.SiguoCount())
}

func TestForumHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	forum := NewForum(nil)
	alice := login(t, forum, "alice")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := forum.SendChat(ctx, alice, "hello")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, forum.Connect("e", domain.Session{Name: "alice"}).Start(ctx), context.Canceled)
}
