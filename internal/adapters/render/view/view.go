package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/fishpi-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const emptyList = "(空)"

// Renderer turns sessions, profiles and moderation lists into terminal text.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Sessions renders one block per session. The session named current is
// marked; connection handles are never part of the output.
func (r *Renderer) Sessions(sessions []domain.Session, current string) (string, error) {
	return run(func(s styles) string {
		return renderSessions(sessions, current, s)
	})
}

func (r *Renderer) Profile(profile domain.UserProfile) (string, error) {
	return run(func(s styles) string {
		return renderProfile(profile, s)
	})
}

func (r *Renderer) OnlineUsers(users []domain.OnlineUser) (string, error) {
	return run(func(s styles) string {
		return renderOnlineUsers(users, s)
	})
}

func (r *Renderer) Blacklist(users, keywords []string) (string, error) {
	return run(func(s styles) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render("小黑屋用户:")+" "+listOrEmpty(users, s),
			s.title.Render("关键词屏蔽:")+" "+listOrEmpty(keywords, s),
		)
	})
}

func renderSessions(sessions []domain.Session, current string, s styles) string {
	if len(sessions) == 0 {
		return s.empty.Render("没有已登录的账户")
	}

	blocks := make([]string, 0, len(sessions))
	for i, session := range sessions {
		block := renderSession(session, session.Name == current, s)
		if i > 0 {
			block = s.section.Render(block)
		}
		blocks = append(blocks, block)
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func renderSession(session domain.Session, current bool, s styles) string {
	title := s.account.Render(session.Name)
	if current {
		title = s.current.Render("* " + session.Name)
	}

	lines := []string{
		title,
		field("password", session.MaskedPassword(), s),
		field("api_key", session.APIKey, s),
		field("status", onlineLabel(session.Online, s), s),
	}
	if session.LastMessageID != "" {
		lines = append(lines, field("last_message", session.LastMessageID, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProfile(profile domain.UserProfile, s styles) string {
	title := profile.Name
	if nickname := strings.TrimSpace(profile.Nickname); nickname != "" && nickname != profile.Name {
		title = fmt.Sprintf("%s (%s)", profile.Name, nickname)
	}

	lines := []string{
		s.account.Render(title),
		field("编号", profile.No, s),
		field("积分", strconv.Itoa(profile.Points), s),
		field("状态", onlineLabel(profile.Online, s), s),
	}
	for _, extra := range []struct{ key, value string }{
		{"城市", profile.City},
		{"签名", profile.Intro},
		{"主页", profile.URL},
	} {
		if strings.TrimSpace(extra.value) != "" {
			lines = append(lines, field(extra.key, extra.value, s))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderOnlineUsers(users []domain.OnlineUser, s styles) string {
	lines := []string{s.header.Render(fmt.Sprintf("在线人数: %d", len(users)))}
	if len(users) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render(emptyList))...)
	}

	for i, user := range users {
		lines = append(lines, s.detail.Render(fmt.Sprintf("%3d. %s", i+1, user.Name)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func field(key, value string, s styles) string {
	if value == "" {
		value = s.empty.Render("-")
	}
	return s.label.Render(key+":") + " " + s.detail.Render(value)
}

func onlineLabel(online bool, s styles) string {
	if online {
		return s.online.Render("online")
	}
	return s.offline.Render("offline")
}

func listOrEmpty(values []string, s styles) string {
	if len(values) == 0 {
		return s.empty.Render(emptyList)
	}
	return s.detail.Render(strings.Join(values, ", "))
}
