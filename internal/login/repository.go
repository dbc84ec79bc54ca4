package login

import (
	"errors"

	"gorm.io/gorm"

	"github.com/swipe-hr/directory-api/internal/utils"
)

// ErrDuplicateAccount signals that the email or username is already taken.
var ErrDuplicateAccount = errors.New("email or username already exists")

// DefaultRosterPassword is the bootstrap password given to logins created by
// roster reconciliation: the raw username, stored without digesting, so the
// account cannot authenticate until the password is reset.
func DefaultRosterPassword(username string) string {
	return username
}

type Repository interface {
	CreateAccount(db *gorm.DB, l *CompanyLogin) error
	FindByEmail(db *gorm.DB, email string) (*CompanyLogin, error)
	ListByCompany(db *gorm.DB, companyID uint) ([]UserSummary, error)
	SyncRoster(db *gorm.DB, companyID uint, companyName string, incoming []RosterEntry) error
	SetAuthStatus(db *gorm.DB, userID uint, authorized bool) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// CreateAccount inserts a new login row after a duplicate pre-check on email
// and username. The check and the insert are two statements, so concurrent
// creations can still race; the unique columns are the backstop.
func (r *repositoryImpl) CreateAccount(db *gorm.DB, l *CompanyLogin) error {
	var count int64
	if err := db.Model(&CompanyLogin{}).
		Where("email = ? OR username = ?", l.Email, l.Username).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateAccount
	}
	l.Password = utils.HashPassword(l.Password)
	return db.Create(l).Error
}

func (r *repositoryImpl) FindByEmail(db *gorm.DB, email string) (*CompanyLogin, error) {
	var l CompanyLogin
	err := db.Where("email = ?", email).First(&l).Error
	return &l, err
}

func (r *repositoryImpl) ListByCompany(db *gorm.DB, companyID uint) ([]UserSummary, error) {
	var users []UserSummary
	err := db.Model(&CompanyLogin{}).
		Select("user_id", "username", "email", "role").
		Where("company_id = ?", companyID).
		Scan(&users).Error
	return users, err
}

// SyncRoster makes the incoming list the source of truth for the company's
// roster, inside one transaction:
//  1. load the existing user_ids for the company
//  2. per incoming record, match by (email, company_id) — update role and
//     username in place, or insert a new row with the default password
//  3. delete every existing row whose id was not retained by step 2
//
// Two incoming records with the same email collide silently; the later one
// wins. Any datastore error rolls back the whole batch.
func (r *repositoryImpl) SyncRoster(db *gorm.DB, companyID uint, companyName string, incoming []RosterEntry) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existingIDs []uint
		if err := tx.Model(&CompanyLogin{}).
			Where("company_id = ?", companyID).
			Pluck("user_id", &existingIDs).Error; err != nil {
			return err
		}

		retained := make(map[uint]bool, len(incoming))
		for _, entry := range incoming {
			var current CompanyLogin
			err := tx.Where("email = ? AND company_id = ?", entry.Email, companyID).
				First(&current).Error

			switch {
			case err == nil:
				if err := tx.Model(&CompanyLogin{}).
					Where("email = ? AND company_id = ?", entry.Email, companyID).
					Updates(map[string]interface{}{
						"role":     entry.Role,
						"username": entry.Username,
					}).Error; err != nil {
					return err
				}
				retained[current.UserID] = true

			case errors.Is(err, gorm.ErrRecordNotFound):
				added := CompanyLogin{
					Email:       entry.Email,
					Username:    entry.Username,
					Password:    DefaultRosterPassword(entry.Username),
					CompanyID:   companyID,
					CompanyName: companyName,
					Role:        entry.Role,
				}
				if err := tx.Create(&added).Error; err != nil {
					return err
				}
				retained[added.UserID] = true

			default:
				return err
			}
		}

		var toDelete []uint
		for _, id := range existingIDs {
			if !retained[id] {
				toDelete = append(toDelete, id)
			}
		}
		if len(toDelete) > 0 {
			if err := tx.Where("user_id IN ? AND company_id = ?", toDelete, companyID).
				Delete(&CompanyLogin{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repositoryImpl) SetAuthStatus(db *gorm.DB, userID uint, authorized bool) error {
	res := db.Model(&CompanyLogin{}).Where("user_id = ?", userID).Update("auth_status", authorized)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
