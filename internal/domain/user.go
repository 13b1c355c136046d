package domain

// User as served by the backend. PasswordHash is write-only from the client's
// point of view: it is sent on create/update and never read back.
type User struct {
	Uuid         string `json:"Uuid"`
	FullName     string `json:"FullName"`
	Email        string `json:"Email"`
	PhoneNumber  string `json:"PhoneNumber"`
	PasswordHash string `json:"PasswordHash,omitempty"`
	BirthDate    string `json:"BirthDate"`
	Rol          string `json:"Rol"`
}

func (u *User) Role() Role { return ResolveRole(u.Rol) }
