package models

// Identity is the current user as derived from the locally stored auth
// token and email. The zero value is the anonymous (guest) identity.
type Identity struct {
	Email string `json:"email"`
	Token string `json:"-"`
}

// Anonymous reports whether no user is logged in.
func (i Identity) Anonymous() bool {
	return i.Email == ""
}
