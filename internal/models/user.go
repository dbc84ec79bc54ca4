package models

// User is one row of the shared identity table. Profiles reference it by
// user_id; bulk import resolves it by phone number.
type User struct {
	UserID      uint   `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	CommonName  string `json:"common_name" gorm:"column:common_name"`
	PhoneNumber string `json:"phone_number" gorm:"column:phone_number"`
}

func (User) TableName() string { return "users" }
