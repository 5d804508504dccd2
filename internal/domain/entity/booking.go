package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus is the authoritative lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checkedIn"
	BookingStatusCheckedOut BookingStatus = "checkedOut"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusNoShow     BookingStatus = "noShow"
	BookingStatusTerminated BookingStatus = "terminated"
)

// bookingTransitions encodes the allowed state machine edges.
// checkedOut -> completed is the administrative close-out once the
// deposit settlement is done; completed has no outgoing edges.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusCheckedIn, BookingStatusCancelled, BookingStatusNoShow},
	BookingStatusCheckedIn:  {BookingStatusCheckedOut, BookingStatusTerminated},
	BookingStatusCheckedOut: {BookingStatusCompleted},
}

// Booking source constants
const (
	BookingCreatedByUser   = "user-booking"
	BookingCreatedByAdmin  = "admin-booking"
	BookingCreatedByWalkIn = "walk-in"
)

// EmergencyContact is stored as a JSONB sub-document on the booking
type EmergencyContact struct {
	Name         string `json:"name" validate:"required"`
	Relationship string `json:"relationship" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
}

// Value implements driver.Valuer
func (c EmergencyContact) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner
func (c *EmergencyContact) Scan(value interface{}) error {
	return scanJSON(value, c)
}

// Document is an uploaded document reference attached to a booking
type Document struct {
	Type       string    `json:"type"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// DocumentList is a JSONB-backed list of documents
type DocumentList []Document

// Value implements driver.Valuer
func (d DocumentList) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner
func (d *DocumentList) Scan(value interface{}) error {
	return scanJSON(value, d)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}
	return json.Unmarshal(bytes, dest)
}

// Booking represents a stay reservation for one bed.
// The financial snapshot is fixed at creation and never recomputed.
type Booking struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index:idx_bookings_user_status,priority:1" json:"user_id"`
	HostelID uuid.UUID `gorm:"type:uuid;not null;index:idx_bookings_hostel_status,priority:1" json:"hostel_id"`
	RoomID   uuid.UUID `gorm:"type:uuid;not null" json:"room_id"`
	BedID    uuid.UUID `gorm:"type:uuid;not null" json:"bed_id"`

	// Populated by student conversion on check-in
	StudentID *uuid.UUID `gorm:"type:uuid" json:"student_id,omitempty"`

	// Dates
	CheckInDate    time.Time  `gorm:"not null;index" json:"check_in_date"`
	CheckOutDate   time.Time  `gorm:"not null" json:"check_out_date"`
	DurationMonths int        `gorm:"not null" json:"duration_months"`
	ActualCheckIn  *time.Time `json:"actual_check_in,omitempty"`
	ActualCheckOut *time.Time `json:"actual_check_out,omitempty"`

	// Financial snapshot
	RentAmount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"rent_amount"`
	SecurityDeposit decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"security_deposit"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PendingAmount   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"pending_amount"`
	AdvanceAmount   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"advance_amount"`
	DepositPaid     bool            `gorm:"default:false" json:"deposit_paid"`

	Status BookingStatus `gorm:"type:varchar(20);not null;default:'pending';index:idx_bookings_user_status,priority:2;index:idx_bookings_hostel_status,priority:2" json:"status"`

	EmergencyContact EmergencyContact `gorm:"type:jsonb" json:"emergency_contact"`
	Documents        DocumentList     `gorm:"type:jsonb" json:"documents,omitempty"`

	// Review flags, recomputed explicitly on every save
	CanReview       bool `gorm:"default:false" json:"can_review"`
	ReviewSubmitted bool `gorm:"default:false" json:"review_submitted"`

	// Cancellation details
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy        *uuid.UUID `gorm:"type:uuid" json:"cancelled_by,omitempty"`
	CancellationReason string     `gorm:"type:text" json:"cancellation_reason,omitempty"`

	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy string    `gorm:"type:varchar(20);default:'user-booking'" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User    User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hostel  Hostel   `gorm:"foreignKey:HostelID" json:"hostel,omitempty"`
	Room    Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// CanTransitionTo reports whether the state machine allows the move
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range bookingTransitions[b.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the booking has reached a final state
func (b *Booking) IsTerminal() bool {
	switch b.Status {
	case BookingStatusCheckedOut, BookingStatusCompleted, BookingStatusCancelled,
		BookingStatusNoShow, BookingStatusTerminated:
		return true
	}
	return false
}

// IsActive reports whether the booking still claims a bed
func (b *Booking) IsActive() bool {
	switch b.Status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn:
		return true
	}
	return false
}

// ComputeFinancials fixes the financial snapshot at creation time:
// total = rent × months, deposit = one month rent,
// pending = total + deposit − (advance + paid deposit).
func (b *Booking) ComputeFinancials(monthlyRent decimal.Decimal, durationMonths int) {
	b.RentAmount = monthlyRent
	b.DurationMonths = durationMonths
	b.SecurityDeposit = monthlyRent
	b.TotalAmount = monthlyRent.Mul(decimal.NewFromInt(int64(durationMonths)))
	b.RecomputePending()
}

// RecomputePending re-derives the outstanding amount from payments recorded
// against the snapshot.
func (b *Booking) RecomputePending() {
	paid := b.AdvanceAmount
	if b.DepositPaid {
		paid = paid.Add(b.SecurityDeposit)
	}
	b.PendingAmount = b.TotalAmount.Add(b.SecurityDeposit).Sub(paid)
}

// RecomputeCanReview re-derives the review eligibility flag. Called after
// every mutation that can affect it.
func (b *Booking) RecomputeCanReview(now time.Time) {
	completed := b.Status == BookingStatusCompleted || b.Status == BookingStatusCheckedOut
	stayEnded := b.CheckOutDate.Before(now) || b.ActualCheckOut != nil
	b.CanReview = completed && stayEnded && !b.ReviewSubmitted
}

// Confirm advances a pending booking
func (b *Booking) Confirm() {
	b.Status = BookingStatusConfirmed
}

// Cancel records the cancellation details
func (b *Booking) Cancel(by uuid.UUID, reason string, at time.Time) {
	b.Status = BookingStatusCancelled
	b.CancelledAt = &at
	b.CancelledBy = &by
	b.CancellationReason = reason
}

// RefundOnCheckOut computes the default refund: deposit minus damages,
// floored at zero. Fund transfer itself is out of scope.
func (b *Booking) RefundOnCheckOut(damages decimal.Decimal) decimal.Decimal {
	refund := b.SecurityDeposit.Sub(damages)
	if refund.IsNegative() {
		return decimal.Zero
	}
	return refund
}
