package database

import (
	"creativeconnect/internal/domain"

	"gorm.io/gorm"
)

// ActiveSlotIndex guarantees at most one pending/accepted booking per
// (creative, date). Bookings without a date are not covered: NULLs never
// collide in a unique index on either backend.
const ActiveSlotIndex = "idx_bookings_active_slot"

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.CreativeProfile{},
		&domain.Category{},
		&domain.Booking{},
		&domain.ChatMessage{},
		&domain.Review{},
		&domain.SupportTicket{},
		&domain.VerificationCode{},
	); err != nil {
		return err
	}

	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS ` + ActiveSlotIndex + `
ON bookings (creative_id, scheduled_date)
WHERE status IN ('pending', 'accepted')`).Error
}
