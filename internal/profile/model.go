package profile

// Profile is a directory entry in the profiles table, distinct from the login
// credentials of the person it describes. Optional text columns are pointers
// so blank import cells persist as NULL, not as empty strings.
type Profile struct {
	ProfileID      uint    `json:"profile_id" gorm:"column:profile_id;primaryKey;autoIncrement"`
	UserID         uint    `json:"user_id" gorm:"column:user_id"`
	ProfileTitle   *string `json:"profile_title" gorm:"column:profile_title"`
	PrimaryPhone   *string `json:"primary_phone" gorm:"column:primary_phone"`
	SecondaryPhone *string `json:"secondary_phone" gorm:"column:secondary_phone"`
	Email1         *string `json:"email1" gorm:"column:email1"`
	Email2         *string `json:"email2" gorm:"column:email2"`
	Address1       *string `json:"address1" gorm:"column:address1"`
	City           *string `json:"city" gorm:"column:city"`
	Pincode        *string `json:"pincode" gorm:"column:pincode"`
	Country        *string `json:"country" gorm:"column:country"`
	CompanyID      uint    `json:"company_id" gorm:"column:company_id"`
	CompanyName    string  `json:"company_name" gorm:"column:company_name"`
	Designation    *string `json:"designation" gorm:"column:designation"`
	Qualification  *string `json:"qualification" gorm:"column:qualification"`
}

func (Profile) TableName() string { return "profiles" }
