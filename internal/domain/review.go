package domain

import "time"

type Review struct {
	ID         int64     `json:"review_id" gorm:"column:review_id;primaryKey"`
	BookingID  int64     `json:"booking_id" gorm:"column:booking_id;not null;index"`
	MarketerID int64     `json:"marketer_id" gorm:"column:marketer_id;not null"`
	CreativeID int64     `json:"creative_id" gorm:"column:creative_id;not null;index"`
	Rating     int       `json:"rating" gorm:"column:rating;not null"`
	Comment    string    `json:"comment,omitempty" gorm:"column:comment;type:text"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Review) TableName() string { return "reviews" }
