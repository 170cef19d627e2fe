package domain

// Credentials is the secret material of one forum identity.
type Credentials struct {
	Username string
	Password string
	APIKey   string
}

// Session is one authenticated identity ("sockpuppet"). Live connection
// handles are owned by the session registry and never appear here.
type Session struct {
	Name          string
	Password      string
	APIKey        string
	Online        bool
	LastMessageID string
}

func NewSession(creds Credentials) Session {
	return Session{
		Name:     creds.Username,
		Password: creds.Password,
		APIKey:   creds.APIKey,
	}
}

func (s Session) Credentials() Credentials {
	return Credentials{Username: s.Name, Password: s.Password, APIKey: s.APIKey}
}

// MaskedPassword hides everything but the length of the password.
func (s Session) MaskedPassword() string {
	if s.Password == "" {
		return ""
	}
	masked := make([]rune, 0, len(s.Password))
	for range s.Password {
		masked = append(masked, '*')
	}
	return string(masked)
}
