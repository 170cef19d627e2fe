package view

import (
	"testing"

	"github.com/bnema/fishpi-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSessionsMarksCurrentAndMasksPassword(t *testing.T) {
	output, err := NewRenderer().Sessions([]domain.Session{
		{Name: "alice", Password: "secret", APIKey: "key-alice", Online: true, LastMessageID: "m-1"},
		{Name: "bob", Password: "pw", APIKey: "key-bob"},
	}, "alice")

	require.NoError(t, err)
	assert.Contains(t, output, "* alice")
	assert.Contains(t, output, "bob")
	assert.NotContains(t, output, "* bob")
	assert.Contains(t, output, "******")
	assert.NotContains(t, output, "secret")
	assert.Contains(t, output, "key-alice")
	assert.Contains(t, output, "online")
	assert.Contains(t, output, "offline")
	assert.Contains(t, output, "last_message: m-1")
}

func TestRenderSessionsWithoutSessions(t *testing.T) {
	output, err := NewRenderer().Sessions(nil, "")

	require.NoError(t, err)
	assert.Contains(t, output, "没有已登录的账户")
}

func TestRenderProfile(t *testing.T) {
	output, err := NewRenderer().Profile(domain.UserProfile{
		Name:     "alice",
		Nickname: "爱丽丝",
		No:       "42",
		Points:   1024,
		Online:   true,
		City:     "杭州",
	})

	require.NoError(t, err)
	assert.Contains(t, output, "alice (爱丽丝)")
	assert.Contains(t, output, "编号: 42")
	assert.Contains(t, output, "积分: 1024")
	assert.Contains(t, output, "城市: 杭州")
	assert.NotContains(t, output, "主页")
}

func TestRenderOnlineUsers(t *testing.T) {
	output, err := NewRenderer().OnlineUsers([]domain.OnlineUser{{Name: "alice"}, {Name: "bob"}})

	require.NoError(t, err)
	assert.Contains(t, output, "在线人数: 2")
	assert.Contains(t, output, "1. alice")
	assert.Contains(t, output, "2. bob")
}

func TestRenderBlacklist(t *testing.T) {
	output, err := NewRenderer().Blacklist([]string{"spammer"}, nil)

	require.NoError(t, err)
	assert.Contains(t, output, "小黑屋用户: spammer")
	assert.Contains(t, output, "关键词屏蔽: (空)")
}
