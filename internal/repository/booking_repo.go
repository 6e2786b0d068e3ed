package repository

import (
	"context"
	"errors"
	"time"

	"creativeconnect/internal/database"
	"creativeconnect/internal/domain"

	"gorm.io/gorm"
)

// ErrSlotTaken means another active booking already holds the creative's date.
var ErrSlotTaken = errors.New("booking slot already taken")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// BookingDetails is a booking joined with the counterpart's name. Category and
// Location are only filled for the marketer view.
type BookingDetails struct {
	ID               int64                `gorm:"column:booking_id"`
	MarketerID       int64                `gorm:"column:marketer_id"`
	CreativeID       int64                `gorm:"column:creative_id"`
	Status           domain.BookingStatus `gorm:"column:status"`
	Note             string               `gorm:"column:note"`
	CreatedAt        time.Time            `gorm:"column:created_at"`
	ScheduledDate    *time.Time           `gorm:"column:scheduled_date"`
	CounterpartName  string               `gorm:"column:counterpart_name"`
	CreativeCategory string               `gorm:"column:category"`
	CreativeLocation string               `gorm:"column:location"`
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

// CreateChecked inserts a booking after checking its date is free. The check
// and insert share one transaction and the partial unique index catches a
// concurrent writer that slipped between them.
func (r *BookingRepository) CreateChecked(ctx context.Context, b *domain.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if b.ScheduledDate != nil {
			var cnt int64
			if err := tx.Model(&domain.Booking{}).
				Where("creative_id = ? AND scheduled_date = ?", b.CreativeID, *b.ScheduledDate).
				Where("status IN ?", statusStrings(domain.ActiveBookingStatuses)).
				Count(&cnt).Error; err != nil {
				return err
			}
			if cnt > 0 {
				return ErrSlotTaken
			}
		}
		return tx.Create(b).Error
	})
	if err != nil && !errors.Is(err, ErrSlotTaken) && isSlotViolation(err) {
		return ErrSlotTaken
	}
	return err
}

// isSlotViolation matches the active slot index. SQLite does not report the
// index name, so any unique violation counts there.
func isSlotViolation(err error) bool {
	if !database.IsUniqueViolation(err) {
		return false
	}
	name := database.UniqueConstraintName(err)
	return name == "" || name == database.ActiveSlotIndex
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).Where("booking_id = ?", id).First(&b)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

// Party selects which owner column guards a status update.
type Party string

const (
	PartyCreative Party = "creative_id"
	PartyMarketer Party = "marketer_id"
)

// UpdateStatusIf moves a booking to status "to" only while it is owned by
// ownerID and currently in one of "from". It returns the number of rows changed.
func (r *BookingRepository) UpdateStatusIf(ctx context.Context, id int64, party Party, ownerID int64, from []domain.BookingStatus, to domain.BookingStatus) (int64, error) {
	if len(from) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("booking_id = ?", id).
		Where(string(party)+" = ?", ownerID).
		Where("status IN ?", statusStrings(from)).
		Update("status", string(to))
	return res.RowsAffected, res.Error
}

type scheduledRow struct {
	ScheduledDate *time.Time `gorm:"column:scheduled_date"`
}

// TakenDates returns the dates in [from, to] held by an active booking.
func (r *BookingRepository) TakenDates(ctx context.Context, creativeID int64, from, to time.Time) ([]time.Time, error) {
	var rows []scheduledRow
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Select("scheduled_date").
		Where("creative_id = ?", creativeID).
		Where("status IN ?", statusStrings(domain.ActiveBookingStatuses)).
		Where("scheduled_date IS NOT NULL").
		Where("scheduled_date >= ? AND scheduled_date <= ?", from, to).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		if row.ScheduledDate != nil {
			out = append(out, domain.DateOnly(*row.ScheduledDate))
		}
	}
	return out, nil
}

// Lists are newest first; ids follow insertion order.
func (r *BookingRepository) ListForCreative(ctx context.Context, creativeID int64) ([]BookingDetails, error) {
	var rows []BookingDetails
	err := r.db.WithContext(ctx).Raw(`
		SELECT b.booking_id, b.marketer_id, b.creative_id, b.status, b.note, b.created_at, b.scheduled_date,
		       u.name AS counterpart_name
		FROM bookings b
		JOIN users u ON u.id = b.marketer_id
		WHERE b.creative_id = ?
		ORDER BY b.booking_id DESC
	`, creativeID).Scan(&rows).Error
	return rows, err
}

func (r *BookingRepository) ListForMarketer(ctx context.Context, marketerID int64) ([]BookingDetails, error) {
	return r.listForMarketer(ctx, marketerID, nil)
}

// ListCompletedForMarketer returns the marketer's bookings that can be reviewed.
func (r *BookingRepository) ListCompletedForMarketer(ctx context.Context, marketerID int64) ([]BookingDetails, error) {
	status := domain.BookingCompleted
	return r.listForMarketer(ctx, marketerID, &status)
}

func (r *BookingRepository) listForMarketer(ctx context.Context, marketerID int64, status *domain.BookingStatus) ([]BookingDetails, error) {
	q := `
		SELECT b.booking_id, b.marketer_id, b.creative_id, b.status, b.note, b.created_at, b.scheduled_date,
		       u.name AS counterpart_name,
		       COALESCE(p.category, '') AS category,
		       COALESCE(p.location, '') AS location
		FROM bookings b
		JOIN users u ON u.id = b.creative_id
		LEFT JOIN creative_profiles p ON p.user_id = b.creative_id
		WHERE b.marketer_id = ?`
	args := []any{marketerID}
	if status != nil {
		q += " AND b.status = ?"
		args = append(args, string(*status))
	}
	q += " ORDER BY b.booking_id DESC"

	var rows []BookingDetails
	err := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows).Error
	return rows, err
}

// LatestActiveBetween finds the newest pending or accepted booking between a
// marketer and a creative.
func (r *BookingRepository) LatestActiveBetween(ctx context.Context, marketerID, creativeID int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Where("marketer_id = ? AND creative_id = ?", marketerID, creativeID).
		Where("status IN ?", statusStrings(domain.ActiveBookingStatuses)).
		Order("booking_id DESC").
		First(&b)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}
