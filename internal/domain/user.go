package domain

type UserProfile struct {
	Name     string
	Nickname string
	No       string
	Points   int
	Online   bool
	City     string
	Intro    string
	URL      string
}

type OnlineUser struct {
	Name string
}
