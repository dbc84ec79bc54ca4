package company

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNoUpdatableFields signals a partial update whose field set intersects
// the column allow-list in nothing.
var ErrNoUpdatableFields = errors.New("no valid fields provided for update")

// updatableColumns is the fixed allow-list for partial updates. Caller keys
// never reach the SET clause directly.
var updatableColumns = []string{"company_name", "title", "company_subname", "description", "website_url"}

type Repository interface {
	Create(db *gorm.DB, c *Company) error
	FindByID(db *gorm.DB, id uint) (*Company, error)
	GetName(db *gorm.DB, id uint) (string, error)
	UpdateFields(db *gorm.DB, id uint, fields map[string]interface{}) error
	SetAuthStatus(db *gorm.DB, id uint, authorized bool) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, c *Company) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Company, error) {
	var c Company
	err := db.First(&c, "company_id = ?", id).Error
	return &c, err
}

// GetName resolves just the denormalized company name.
func (r *repositoryImpl) GetName(db *gorm.DB, id uint) (string, error) {
	var c Company
	if err := db.Select("company_name").First(&c, "company_id = ?", id).Error; err != nil {
		return "", err
	}
	return c.CompanyName, nil
}

// UpdateFields applies the subset of fields whose keys are allow-listed
// columns. Returns gorm.ErrRecordNotFound when the id matches no row.
func (r *repositoryImpl) UpdateFields(db *gorm.DB, id uint, fields map[string]interface{}) error {
	updates := map[string]interface{}{}
	for _, col := range updatableColumns {
		if v, ok := fields[col]; ok {
			updates[col] = v
		}
	}
	if len(updates) == 0 {
		return ErrNoUpdatableFields
	}

	res := db.Model(&Company{}).Where("company_id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repositoryImpl) SetAuthStatus(db *gorm.DB, id uint, authorized bool) error {
	res := db.Model(&Company{}).Where("company_id = ?", id).Update("auth_status", authorized)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
