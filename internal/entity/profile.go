package entity

type Profile struct {
	ID       string  `json:"_id"`
	FullName string  `json:"fullname"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	IDNumber string  `json:"idNumber"`
	City     string  `json:"city"`
	Address  string  `json:"address"`
	Avatar   *string `json:"avatar,omitempty"`
}

// ProfilePatch lists the profile fields accepted by PUT /profile.
type ProfilePatch struct {
	FullName *string `json:"fullname,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IDNumber *string `json:"idNumber,omitempty"`
	City     *string `json:"city,omitempty"`
	Address  *string `json:"address,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

func (p ProfilePatch) Validate() error {
	return nil
}

type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
