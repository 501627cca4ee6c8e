package domain

// User is a single entry of the user search response. Fields are passed
// through from the API untouched.
type User struct {
	ID        int64   `json:"id"`
	Login     string  `json:"login"`
	AvatarURL string  `json:"avatar_url"`
	HTMLURL   string  `json:"html_url"`
	Type      string  `json:"type,omitempty"`
	SiteAdmin bool    `json:"site_admin,omitempty"`
	Score     float64 `json:"score,omitempty"`
}

// Page is one fetch result unit
type Page struct {
	Number   int
	Users    []User
	NextPage int // 0 when no further page exists
}

// HasNext reports whether a further page is known to exist
func (p Page) HasNext() bool {
	return p.NextPage > 0
}
