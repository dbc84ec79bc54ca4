package profile

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/swipe-hr/directory-api/internal/models"
)

// ErrNoUpdatableFields signals a partial update whose field set intersects
// the column allow-list in nothing.
var ErrNoUpdatableFields = errors.New("no valid fields provided for update")

// empColumnMap remaps the external Emp_* field names of /update-emp to
// profile columns. Keys outside the map never reach the SET clause.
var empColumnMap = map[string]string{
	"Emp_title":         "profile_title",
	"Emp_designation":   "designation",
	"Emp_qualification": "qualification",
	"Emp_phone":         "primary_phone",
	"Emp_email":         "email1",
}

type Repository interface {
	ImportRows(db *gorm.DB, companyID uint, companyName string, rows []ImportRow) (*ImportReport, error)
	Search(db *gorm.DB, companyID uint, term string) ([]SearchResult, error)
	GetProfileData(db *gorm.DB, profileID uint) (*ProfileData, error)
	UpdateFields(db *gorm.DB, profileID uint, fields map[string]interface{}) error
	ListByCompany(db *gorm.DB, companyID uint) ([]Profile, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// ImportRows inserts one profile per row whose primary phone resolves to an
// identity row. Unmatched rows are logged and skipped without failing the
// batch; the batch commits once, so a datastore error aborts it whole.
func (r *repositoryImpl) ImportRows(db *gorm.DB, companyID uint, companyName string, rows []ImportRow) (*ImportReport, error) {
	report := &ImportReport{}
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			var phone string
			if row.PrimaryPhone != nil {
				phone = *row.PrimaryPhone
			}

			var user models.User
			if err := tx.Where("phone_number = ?", phone).First(&user).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					log.Printf("bulk import: no user with phone %q, row skipped", phone)
					report.Skipped++
					continue
				}
				return err
			}

			p := Profile{
				UserID:         user.UserID,
				ProfileTitle:   row.ProfileTitle,
				PrimaryPhone:   row.PrimaryPhone,
				SecondaryPhone: row.SecondaryPhone,
				Email1:         row.Email1,
				Email2:         row.Email2,
				Address1:       row.Address1,
				City:           row.City,
				Pincode:        row.Pincode,
				Country:        row.Country,
				CompanyID:      companyID,
				CompanyName:    companyName,
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			report.Inserted++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Search is a case-insensitive substring match over profile title, display
// name and designation, scoped to one company.
func (r *repositoryImpl) Search(db *gorm.DB, companyID uint, term string) ([]SearchResult, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	results := []SearchResult{}
	err := db.Table("profiles p").
		Select("p.profile_id, p.profile_title, u.common_name, p.primary_phone, p.email1, p.city, p.country, p.designation, p.qualification").
		Joins("JOIN users u ON u.user_id = p.user_id").
		Where("p.company_id = ?", companyID).
		Where("LOWER(p.profile_title) LIKE ? OR LOWER(u.common_name) LIKE ? OR LOWER(p.designation) LIKE ?",
			pattern, pattern, pattern).
		Scan(&results).Error
	return results, err
}

func (r *repositoryImpl) GetProfileData(db *gorm.DB, profileID uint) (*ProfileData, error) {
	var data ProfileData
	err := db.Table("profiles p").
		Select("u.user_id, u.common_name, p.profile_id, p.profile_title, p.primary_phone, p.email1 AS email, p.designation, p.qualification").
		Joins("JOIN users u ON u.user_id = p.user_id").
		Where("p.profile_id = ?", profileID).
		Take(&data).Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}

// UpdateFields applies the subset of fields whose keys appear in empColumnMap,
// remapped to their column names. gorm.ErrRecordNotFound when the profile id
// matches no row.
func (r *repositoryImpl) UpdateFields(db *gorm.DB, profileID uint, fields map[string]interface{}) error {
	updates := map[string]interface{}{}
	for key, value := range fields {
		if col, ok := empColumnMap[key]; ok {
			updates[col] = value
		}
	}
	if len(updates) == 0 {
		return ErrNoUpdatableFields
	}

	res := db.Model(&Profile{}).Where("profile_id = ?", profileID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repositoryImpl) ListByCompany(db *gorm.DB, companyID uint) ([]Profile, error) {
	var profiles []Profile
	err := db.Where("company_id = ?", companyID).Find(&profiles).Error
	return profiles, err
}
