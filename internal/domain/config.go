package domain

import (
	"slices"
	"strings"
)

const (
	DefaultRedPacketRate = 3
	DefaultRPSLimit      = 100
)

type AccountRef struct {
	Name string
	// SecretRef points to a secret-store entry in "fishpi://<name>/credentials" form.
	SecretRef string
}

type AuthConfig struct {
	Username  string
	SecretRef string
}

type ChatConfig struct {
	AnswerMode       bool
	Blacklist        []string
	KeywordBlacklist []string
}

type RedPacketConfig struct {
	// Rate is the grab-wait window in seconds.
	Rate     int
	RPSLimit int
}

// DeclinesRPS reports whether a rock-paper-scissors packet of the given
// amount is above the ceiling and must not be grabbed.
func (c RedPacketConfig) DeclinesRPS(money int) bool {
	return money > c.RPSLimit
}

type RuntimeConfig struct {
	Auth      AuthConfig
	Chat      ChatConfig
	RedPacket RedPacketConfig
	Accounts  []AccountRef
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		RedPacket: RedPacketConfig{
			Rate:     DefaultRedPacketRate,
			RPSLimit: DefaultRPSLimit,
		},
	}
}

// Clone returns a copy that shares no slices with the receiver.
func (c RuntimeConfig) Clone() RuntimeConfig {
	out := c
	out.Chat.Blacklist = slices.Clone(c.Chat.Blacklist)
	out.Chat.KeywordBlacklist = slices.Clone(c.Chat.KeywordBlacklist)
	out.Accounts = slices.Clone(c.Accounts)
	return out
}

// UpsertAccount replaces the ref with the same name or appends a new one.
func (c *RuntimeConfig) UpsertAccount(ref AccountRef) {
	for i := range c.Accounts {
		if c.Accounts[i].Name == ref.Name {
			c.Accounts[i] = ref
			return
		}
	}
	c.Accounts = append(c.Accounts, ref)
}

func (c RuntimeConfig) Account(name string) (AccountRef, bool) {
	for _, ref := range c.Accounts {
		if ref.Name == name {
			return ref, true
		}
	}
	return AccountRef{}, false
}

// NormalizeList trims entries and drops blanks and duplicates, keeping order.
func NormalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
