package toml

import (
	"fmt"

	"github.com/bnema/fishpi-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int             `toml:"version"`
	Auth      authSchema      `toml:"auth"`
	Chat      chatSchema      `toml:"chat"`
	RedPacket redPacketSchema `toml:"redpacket"`
	Accounts  []accountSchema `toml:"accounts,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.RedPacket.Rate == nil {
		rate := domain.DefaultRedPacketRate
		s.RedPacket.Rate = &rate
	}
	if s.RedPacket.RPSLimit == nil {
		limit := domain.DefaultRPSLimit
		s.RedPacket.RPSLimit = &limit
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type authSchema struct {
	Username  string `toml:"username"`
	SecretRef string `toml:"secret_ref"`
}

type chatSchema struct {
	AnswerMode       bool     `toml:"answer_mode"`
	Blacklist        []string `toml:"blacklist"`
	KeywordBlacklist []string `toml:"kw_blacklist"`
}

// Rate and RPSLimit are pointers so an explicit 0 survives a round trip while
// a missing key falls back to the default.
type redPacketSchema struct {
	Rate     *int `toml:"rate"`
	RPSLimit *int `toml:"rps_limit"`
}

type accountSchema struct {
	Name      string `toml:"name"`
	SecretRef string `toml:"secret_ref"`
}

func toSchema(cfg domain.RuntimeConfig) fileSchema {
	rate := cfg.RedPacket.Rate
	limit := cfg.RedPacket.RPSLimit

	accounts := make([]accountSchema, 0, len(cfg.Accounts))
	for _, ref := range cfg.Accounts {
		accounts = append(accounts, accountSchema{Name: ref.Name, SecretRef: ref.SecretRef})
	}

	return fileSchema{
		Version: currentSchemaVersion,
		Auth: authSchema{
			Username:  cfg.Auth.Username,
			SecretRef: cfg.Auth.SecretRef,
		},
		Chat: chatSchema{
			AnswerMode:       cfg.Chat.AnswerMode,
			Blacklist:        nonNil(cfg.Chat.Blacklist),
			KeywordBlacklist: nonNil(cfg.Chat.KeywordBlacklist),
		},
		RedPacket: redPacketSchema{Rate: &rate, RPSLimit: &limit},
		Accounts:  accounts,
	}
}

func fromSchema(file fileSchema) domain.RuntimeConfig {
	file.applyDefaults()

	var accounts []domain.AccountRef
	for _, entry := range file.Accounts {
		if entry.Name == "" {
			continue
		}
		accounts = append(accounts, domain.AccountRef{Name: entry.Name, SecretRef: entry.SecretRef})
	}

	return domain.RuntimeConfig{
		Auth: domain.AuthConfig{
			Username:  file.Auth.Username,
			SecretRef: file.Auth.SecretRef,
		},
		Chat: domain.ChatConfig{
			AnswerMode:       file.Chat.AnswerMode,
			Blacklist:        domain.NormalizeList(file.Chat.Blacklist),
			KeywordBlacklist: domain.NormalizeList(file.Chat.KeywordBlacklist),
		},
		RedPacket: domain.RedPacketConfig{
			Rate:     *file.RedPacket.Rate,
			RPSLimit: *file.RedPacket.RPSLimit,
		},
		Accounts: accounts,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
