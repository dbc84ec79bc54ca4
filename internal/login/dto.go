package login

// LoginResponse is the /login success body.
type LoginResponse struct {
	Message   string `json:"message"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CompanyID uint   `json:"company_id"`
	UserID    uint   `json:"user_id"`
	Token     string `json:"token"`
}

// RosterEntry is one record of the incoming roster list for /update-user.
type RosterEntry struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// UserSummary is one row of the /get-users listing.
type UserSummary struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
