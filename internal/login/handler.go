package login

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/swipe-hr/directory-api/internal/auth"
	"github.com/swipe-hr/directory-api/internal/company"
	"github.com/swipe-hr/directory-api/internal/utils"
)

// updateUsersRequest is the /update-user body.
type updateUsersRequest struct {
	Users []RosterEntry `json:"users"`
}

// Handler encapsulates the DB and the repository.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler returns an initialized login handler.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// createAccountFields lists the /create-account body keys, all required,
// in the order they are reported when missing.
var createAccountFields = []string{"email", "password", "company_id", "company_name", "phone_number", "role", "username"}

// CreateAccount handles POST /create-account.
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}
	for _, key := range createAccountFields {
		if _, ok := payload[key]; !ok {
			http.Error(w, fmt.Sprintf("Missing required field: '%s'", key), http.StatusBadRequest)
			return
		}
	}

	account := CompanyLogin{
		Email:       stringField(payload, "email"),
		Username:    stringField(payload, "username"),
		Password:    stringField(payload, "password"),
		CompanyID:   uintField(payload, "company_id"),
		CompanyName: stringField(payload, "company_name"),
		PhoneNumber: stringField(payload, "phone_number"),
		Role:        stringField(payload, "role"),
	}

	if err := h.Repository.CreateAccount(h.DB, &account); err != nil {
		if errors.Is(err, ErrDuplicateAccount) {
			http.Error(w, "Email or username already exists.", http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Account created successfully."})
}

// Login handles POST /login. Success returns the identity fields plus a
// bearer token; no endpoint requires the token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}
	for _, key := range []string{"email", "password"} {
		if _, ok := payload[key]; !ok {
			http.Error(w, fmt.Sprintf("Missing required field: '%s'", key), http.StatusBadRequest)
			return
		}
	}

	account, err := h.Repository.FindByEmail(h.DB, stringField(payload, "email"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Email not found.", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if !utils.CheckPassword(account.Password, stringField(payload, "password")) {
		http.Error(w, "Invalid credentials.", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateAccessToken(account.UserID, account.CompanyID, account.Role)
	if err != nil {
		http.Error(w, "could not issue access token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LoginResponse{
		Message:   "Login successful.",
		Username:  account.Username,
		Role:      account.Role,
		CompanyID: account.CompanyID,
		UserID:    account.UserID,
		Token:     token,
	})
}

// GetUsers handles GET /get-users?data=<company_id>.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("data"))
	if err != nil {
		http.Error(w, "invalid 'data' query parameter", http.StatusBadRequest)
		return
	}

	users, err := h.Repository.ListByCompany(h.DB, uint(id))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(users) == 0 {
		http.Error(w, "No users found for this company", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// UpdateUsers handles POST /update-user?data=<company_id>: the incoming list
// becomes the company's roster.
func (h *Handler) UpdateUsers(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("data"))
	if err != nil {
		http.Error(w, "invalid 'data' query parameter", http.StatusBadRequest)
		return
	}

	var req updateUsersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}
	if req.Users == nil {
		http.Error(w, "Missing required field: 'users'", http.StatusBadRequest)
		return
	}

	companyName, err := company.NewRepository().GetName(h.DB, uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Company not found.", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.Repository.SyncRoster(h.DB, uint(id), companyName, req.Users); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message":      "Accounts processed successfully.",
		"company_name": companyName,
	})
}

// AuthorizeEmployee handles POST /auth-employee?data=<user_id>.
func (h *Handler) AuthorizeEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("data"))
	if err != nil {
		http.Error(w, "invalid 'data' query parameter", http.StatusBadRequest)
		return
	}

	if err := h.Repository.SetAuthStatus(h.DB, uint(id), true); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "User not found.", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Employee authorized successfully."})
}

// stringField reads a string value from a decoded JSON object.
func stringField(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return v
}

// uintField reads a numeric value, tolerating ids sent as strings.
func uintField(m map[string]interface{}, key string) uint {
	switch v := m[key].(type) {
	case float64:
		return uint(v)
	case string:
		n, _ := strconv.Atoi(v)
		return uint(n)
	}
	return 0
}
