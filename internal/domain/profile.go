package domain

import "time"

// CreativeProfile is one-to-one with a creative user. Availability is a
// manual opt-out flag; it is also flipped when a booking is accepted or
// completed.
type CreativeProfile struct {
	UserID         int64     `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement:false"`
	Category       string    `json:"category" gorm:"column:category"`
	Skills         string    `json:"skills" gorm:"column:skills"`
	Location       string    `json:"location" gorm:"column:location;index"`
	PortfolioLinks string    `json:"portfolio_links" gorm:"column:portfolio_links"`
	Availability   bool      `json:"availability" gorm:"column:availability;not null"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (CreativeProfile) TableName() string { return "creative_profiles" }
