package application

import (
	"context"
	"slices"

	"github.com/bnema/fishpi-cli/internal/domain"
)

// Blacklists returns copies of the blocked users and keywords.
func (s *RuntimeState) Blacklists() (users []string, keywords []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.cfg.Chat.Blacklist), slices.Clone(s.cfg.Chat.KeywordBlacklist)
}

// BanKeywords adds each keyword and returns the ones that were not listed yet.
func (s *RuntimeState) BanKeywords(ctx context.Context, keywords []string) []string {
	var added []string
	s.update(ctx, func(cfg *domain.RuntimeConfig) {
		cfg.Chat.KeywordBlacklist, added = addAll(cfg.Chat.KeywordBlacklist, keywords)
	})
	return added
}

// ReleaseKeywords removes each keyword and returns the ones that were listed.
func (s *RuntimeState) ReleaseKeywords(ctx context.Context, keywords []string) []string {
	var removed []string
	s.update(ctx, func(cfg *domain.RuntimeConfig) {
		cfg.Chat.KeywordBlacklist, removed = removeAll(cfg.Chat.KeywordBlacklist, keywords)
	})
	return removed
}

func (s *RuntimeState) BanUser(ctx context.Context, username string) bool {
	var added []string
	s.update(ctx, func(cfg *domain.RuntimeConfig) {
		cfg.Chat.Blacklist, added = addAll(cfg.Chat.Blacklist, []string{username})
	})
	return len(added) > 0
}

func (s *RuntimeState) ReleaseUser(ctx context.Context, username string) bool {
	var removed []string
	s.update(ctx, func(cfg *domain.RuntimeConfig) {
		cfg.Chat.Blacklist, removed = removeAll(cfg.Chat.Blacklist, []string{username})
	})
	return len(removed) > 0
}

func addAll(list []string, values []string) ([]string, []string) {
	var added []string
	for _, value := range domain.NormalizeList(values) {
		if slices.Contains(list, value) {
			continue
		}
		list = append(list, value)
		added = append(added, value)
	}
	return list, added
}

func removeAll(list []string, values []string) ([]string, []string) {
	var removed []string
	for _, value := range domain.NormalizeList(values) {
		idx := slices.Index(list, value)
		if idx < 0 {
			continue
		}
		list = slices.Delete(list, idx, idx+1)
		removed = append(removed, value)
	}
	return list, removed
}
