package domain

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"column:username;unique;not null" json:"username"`
	Password string `gorm:"column:password;not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}
