package entity

type Doorman struct {
	ID        string     `json:"_id"`
	FullName  string     `json:"fullname"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	IDNumber  string     `json:"idNumber"`
	City      *string    `json:"city,omitempty"`
	Address   *string    `json:"address,omitempty"`
	Status    Status     `json:"status"`
	Role      string     `json:"role,omitempty"`
	Buildings []Building `json:"buildings,omitempty"`
}

func (d Doorman) DisplayCity() string {
	return OrDefault(d.City)
}

func (d Doorman) DisplayAddress() string {
	return OrDefault(d.Address)
}

// Assignment links a doorman to a building with its own activation status.
type Assignment struct {
	BuildingID string `json:"buildingId"`
	UserID     string `json:"userId"`
	Status     Status `json:"status"`
	AssignedAt Date   `json:"assignedAt"`
}

func (a Assignment) Matches(buildingID, userID string) bool {
	return a.BuildingID == buildingID && a.UserID == userID
}

type AssignmentRef struct {
	BuildingID string `json:"buildingId"`
	UserID     string `json:"userId"`
}

type NewDoorman struct {
	FullName string  `json:"fullname"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    string  `json:"phone"`
	IDNumber string  `json:"idNumber"`
	City     *string `json:"city,omitempty"`
	Address  *string `json:"address,omitempty"`
}

func (d NewDoorman) Validate() error {
	return nil
}

// DoormanPatch lists the doorman fields accepted by PUT /app/doorman/:id.
type DoormanPatch struct {
	FullName *string `json:"fullname,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IDNumber *string `json:"idNumber,omitempty"`
	City     *string `json:"city,omitempty"`
	Address  *string `json:"address,omitempty"`
	Status   *Status `json:"status,omitempty"`
}

func (p DoormanPatch) Validate() error {
	return validateOptional(p.Status)
}
