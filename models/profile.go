package models

// Profile is the editable part of the user account.
type Profile struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

// ProfileResponse matches {success, message?, data: {user}}.
type ProfileResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    *struct {
		User *Profile `json:"user"`
	} `json:"data,omitempty"`
}

// User returns the embedded profile, or nil when the shape is unexpected.
func (r ProfileResponse) User() *Profile {
	if r.Data == nil {
		return nil
	}
	return r.Data.User
}
