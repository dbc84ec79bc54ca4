package login

// CompanyLogin is one authenticatable user within one company's namespace.
// company_name is a denormalized copy of the owning company row.
type CompanyLogin struct {
	UserID      uint   `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	Email       string `json:"email" gorm:"column:email;unique"`
	Username    string `json:"username" gorm:"column:username;unique"`
	Password    string `json:"-" gorm:"column:password"`
	CompanyID   uint   `json:"company_id" gorm:"column:company_id"`
	CompanyName string `json:"company_name" gorm:"column:company_name"`
	PhoneNumber string `json:"phone_number" gorm:"column:phone_number"`
	Role        string `json:"role" gorm:"column:role"`
	AuthStatus  bool   `json:"auth_status" gorm:"column:auth_status"`
}

func (CompanyLogin) TableName() string { return "company_logins" }
