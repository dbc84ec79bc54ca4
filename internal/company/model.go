package company

import "time"

// Company is one tenant row in the companies table.
type Company struct {
	CompanyID   uint      `json:"company_id" gorm:"column:company_id;primaryKey;autoIncrement"`
	CompanyName string    `json:"company_name" gorm:"column:company_name"`
	Title       *string   `json:"title" gorm:"column:title"`
	Subname     *string   `json:"company_subname" gorm:"column:company_subname"`
	Description *string   `json:"description" gorm:"column:description"`
	WebsiteURL  *string   `json:"website_url" gorm:"column:website_url"`
	AuthStatus  bool      `json:"auth_status" gorm:"column:auth_status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Company) TableName() string { return "companies" }
