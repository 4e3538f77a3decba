package entity

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Email           string `json:"email"`
	FullName        string `json:"fullname"`
	IDNumber        string `json:"idNumber"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
}

// Session is the persisted part of the auth slice.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}
