package entity

type Role string

const (
	RoleUser    Role = "user"
	RoleDoorman Role = "doorman"
	RoleAdmin   Role = "admin"
)

// AdminUser is an account as listed by /admin/users. Status is the server's
// display value ("Active", "Not Active").
type AdminUser struct {
	ID        string  `json:"_id"`
	FullName  string  `json:"fullName"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Birthdate string  `json:"birthdate"`
	Gender    string  `json:"gender"`
	Plan      string  `json:"plan"`
	Status    string  `json:"status"`
	IDNumber  *string `json:"idNumber,omitempty"`
	City      *string `json:"city,omitempty"`
	Address   *string `json:"address,omitempty"`
	Role      *Role   `json:"role,omitempty"`
}

type NewUser struct {
	FullName  string  `json:"fullName"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Phone     string  `json:"phone"`
	Birthdate string  `json:"birthdate"`
	Gender    string  `json:"gender"`
	Plan      string  `json:"plan,omitempty"`
	IDNumber  *string `json:"idNumber,omitempty"`
	City      *string `json:"city,omitempty"`
	Address   *string `json:"address,omitempty"`
	Role      *Role   `json:"role,omitempty"`
}

// UserPatch lists the fields accepted by PUT /admin/users/:id.
type UserPatch struct {
	FullName  *string `json:"fullName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Birthdate *string `json:"birthdate,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	Plan      *string `json:"plan,omitempty"`
	IDNumber  *string `json:"idNumber,omitempty"`
	City      *string `json:"city,omitempty"`
	Address   *string `json:"address,omitempty"`
	Role      *Role   `json:"role,omitempty"`
}

func (p UserPatch) Validate() error {
	return nil
}
