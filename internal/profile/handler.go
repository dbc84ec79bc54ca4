package profile

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/swipe-hr/directory-api/internal/company"
)

// Handler encapsulates the DB and the repository.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler returns an initialized profile handler.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// UploadFile handles POST /upload-file?data=<company_id> with a multipart
// "file" part. Every failure, parse or datastore, comes back as a 400 JSON
// payload; matched rows commit as one batch.
func (h *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	companyID, err := strconv.Atoi(r.URL.Query().Get("data"))
	if err != nil {
		writeUploadError(w, errors.New("invalid 'data' query parameter"))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeUploadError(w, err)
		return
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		writeUploadError(w, err)
		return
	}

	rows, err := ParseWorkbook(contents)
	if err != nil {
		writeUploadError(w, err)
		return
	}

	companyName, err := company.NewRepository().GetName(h.DB, uint(companyID))
	if err != nil {
		writeUploadError(w, err)
		return
	}

	if _, err := h.Repository.ImportRows(h.DB, uint(companyID), companyName, rows); err != nil {
		writeUploadError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "File successfully uploaded and data inserted."})
}

func writeUploadError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{"message": "Error: " + err.Error()})
}

// SearchEmployees handles GET /search-emp?company_id=&search_query=.
func (h *Handler) SearchEmployees(w http.ResponseWriter, r *http.Request) {
	companyID, err := strconv.Atoi(r.URL.Query().Get("company_id"))
	if err != nil {
		http.Error(w, "invalid 'company_id' query parameter", http.StatusBadRequest)
		return
	}
	term := r.URL.Query().Get("search_query")

	results, err := h.Repository.Search(h.DB, uint(companyID), term)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// GetProfileData handles GET /profile-data?data=<profile_id>.
func (h *Handler) GetProfileData(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("data"))
	if err != nil {
		http.Error(w, "invalid 'data' query parameter", http.StatusBadRequest)
		return
	}

	data, err := h.Repository.GetProfileData(h.DB, uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

// UpdateEmployee handles POST /update-emp: Emp_profile_id plus a subset of
// the Emp_* field names.
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}

	rawID, ok := payload["Emp_profile_id"]
	if !ok {
		http.Error(w, "Profile ID is required for update.", http.StatusBadRequest)
		return
	}
	var profileID uint
	switch v := rawID.(type) {
	case float64:
		profileID = uint(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Profile ID is required for update.", http.StatusBadRequest)
			return
		}
		profileID = uint(n)
	default:
		http.Error(w, "Profile ID is required for update.", http.StatusBadRequest)
		return
	}
	delete(payload, "Emp_profile_id")

	switch err := h.Repository.UpdateFields(h.DB, profileID, payload); {
	case errors.Is(err, ErrNoUpdatableFields):
		http.Error(w, "No valid fields provided for update.", http.StatusBadRequest)
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "Profile not found.", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Profile details updated successfully."})
}

// DownloadProfiles handles GET /download-profiles?company_id=: the company's
// profile rows as an xlsx attachment.
func (h *Handler) DownloadProfiles(w http.ResponseWriter, r *http.Request) {
	companyID, err := strconv.Atoi(r.URL.Query().Get("company_id"))
	if err != nil {
		http.Error(w, "invalid 'company_id' query parameter", http.StatusBadRequest)
		return
	}

	profiles, err := h.Repository.ListByCompany(h.DB, uint(companyID))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	contents, err := ExportWorkbook(profiles)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="profiles.xlsx"`)
	w.Write(contents)
}
