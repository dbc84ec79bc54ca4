package company

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gorm.io/gorm"
)

// createCompanyRequest is the /add-company body. Only company_name is required.
type createCompanyRequest struct {
	CompanyName string  `json:"company_name"`
	Title       *string `json:"title"`
	Subname     *string `json:"company_subname"`
	Description *string `json:"description"`
	WebsiteURL  *string `json:"website_url"`
}

// Handler encapsulates the DB and the repository.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler returns an initialized company handler.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// AddCompany handles POST /add-company.
func (h *Handler) AddCompany(w http.ResponseWriter, r *http.Request) {
	var req createCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}
	if req.CompanyName == "" {
		http.Error(w, "Missing required field: 'company_name'", http.StatusBadRequest)
		return
	}

	c := Company{
		CompanyName: req.CompanyName,
		Title:       req.Title,
		Subname:     req.Subname,
		Description: req.Description,
		WebsiteURL:  req.WebsiteURL,
	}
	if err := h.Repository.Create(h.DB, &c); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":    "Company details inserted successfully.",
		"company_id": c.CompanyID,
	})
}

// GetCompany handles GET /get-company?data=<company_id>.
func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("data"))
	if err != nil {
		http.Error(w, "invalid 'data' query parameter", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.FindByID(h.DB, uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Company not found.", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"company_details": c})
}

// UpdateCompany handles POST /update-company?data=<company_id> with a partial
// field set in the body.
func (h *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("data"))
	if err != nil {
		http.Error(w, "invalid 'data' query parameter", http.StatusBadRequest)
		return
	}

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}

	switch err := h.Repository.UpdateFields(h.DB, uint(id), fields); {
	case errors.Is(err, ErrNoUpdatableFields):
		http.Error(w, "No valid fields provided for update.", http.StatusBadRequest)
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "Company not found.", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Company details updated successfully."})
}

// AuthorizeCompany handles POST /auth-company?data=<company_id>.
func (h *Handler) AuthorizeCompany(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("data"))
	if err != nil {
		http.Error(w, "invalid 'data' query parameter", http.StatusBadRequest)
		return
	}

	if err := h.Repository.SetAuthStatus(h.DB, uint(id), true); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Company not found.", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Company authorized successfully."})
}
