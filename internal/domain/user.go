package domain

import "time"

type UserRole string

const (
	RoleCreative UserRole = "creative"
	RoleMarketer UserRole = "marketer"
	RoleAdmin    UserRole = "admin"
)

// IsSelfService reports whether the role can be chosen at registration.
func (r UserRole) IsSelfService() bool {
	return r == RoleCreative || r == RoleMarketer
}

type User struct {
	ID            int64     `json:"id" gorm:"column:id;primaryKey"`
	Name          string    `json:"name" gorm:"column:name;not null"`
	Email         string    `json:"email" gorm:"column:email;not null;uniqueIndex"`
	PasswordHash  string    `json:"-" gorm:"column:password_hash;not null"`
	Role          UserRole  `json:"role" gorm:"column:role;type:varchar(16);not null"`
	EmailVerified bool      `json:"email_verified" gorm:"column:email_verified"`
	Approved      bool      `json:"approved" gorm:"column:approved;index"`
	PortfolioLink string    `json:"portfolio_link,omitempty" gorm:"column:portfolio_link"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string { return "users" }
