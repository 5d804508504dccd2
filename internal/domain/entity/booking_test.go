package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestComputeFinancials(t *testing.T) {
	b := &Booking{}
	b.ComputeFinancials(decimal.NewFromInt(3000), 6)

	if !b.TotalAmount.Equal(decimal.NewFromInt(18000)) {
		t.Errorf("TotalAmount = %s, want 18000", b.TotalAmount)
	}
	if !b.SecurityDeposit.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("SecurityDeposit = %s, want 3000", b.SecurityDeposit)
	}
	if !b.PendingAmount.Equal(decimal.NewFromInt(21000)) {
		t.Errorf("PendingAmount = %s, want 21000", b.PendingAmount)
	}
}

func TestRecomputePending(t *testing.T) {
	b := &Booking{AdvanceAmount: decimal.NewFromInt(5000), DepositPaid: true}
	b.ComputeFinancials(decimal.NewFromInt(3000), 6)

	// 18000 + 3000 - (5000 + 3000)
	if !b.PendingAmount.Equal(decimal.NewFromInt(13000)) {
		t.Errorf("PendingAmount = %s, want 13000", b.PendingAmount)
	}
}

func TestBookingTransitions(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCheckedIn, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusNoShow, false},
		{BookingStatusPending, BookingStatusCheckedOut, false},
		{BookingStatusConfirmed, BookingStatusCheckedIn, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusNoShow, true},
		{BookingStatusConfirmed, BookingStatusCheckedOut, false},
		{BookingStatusCheckedIn, BookingStatusCheckedOut, true},
		{BookingStatusCheckedIn, BookingStatusTerminated, true},
		{BookingStatusCheckedIn, BookingStatusCancelled, false},
		{BookingStatusCheckedOut, BookingStatusCompleted, true},
		{BookingStatusCheckedOut, BookingStatusCheckedIn, false},
		{BookingStatusCompleted, BookingStatusCheckedIn, false},
		{BookingStatusCompleted, BookingStatusCheckedOut, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusNoShow, BookingStatusCheckedIn, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			b := &Booking{Status: tt.from}
			if got := b.CanTransitionTo(tt.to); got != tt.allowed {
				t.Errorf("CanTransitionTo = %v, want %v", got, tt.allowed)
			}
		})
	}
}

func TestTerminalAndActiveStates(t *testing.T) {
	active := []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn}
	terminal := []BookingStatus{BookingStatusCheckedOut, BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow, BookingStatusTerminated}

	for _, status := range active {
		b := &Booking{Status: status}
		if !b.IsActive() {
			t.Errorf("%s: IsActive = false, want true", status)
		}
		if b.IsTerminal() {
			t.Errorf("%s: IsTerminal = true, want false", status)
		}
	}
	for _, status := range terminal {
		b := &Booking{Status: status}
		if b.IsActive() {
			t.Errorf("%s: IsActive = true, want false", status)
		}
		if !b.IsTerminal() {
			t.Errorf("%s: IsTerminal = false, want true", status)
		}
	}
}

func TestRecomputeCanReview(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)

	tests := []struct {
		name      string
		status    BookingStatus
		checkOut  time.Time
		actualOut *time.Time
		submitted bool
		want      bool
	}{
		{"checked out, stay ended", BookingStatusCheckedOut, past, nil, false, true},
		{"completed, stay ended", BookingStatusCompleted, past, nil, false, true},
		{"checked out early", BookingStatusCheckedOut, future, &past, false, true},
		{"still checked in", BookingStatusCheckedIn, past, nil, false, false},
		{"stay not ended", BookingStatusCheckedOut, future, nil, false, false},
		{"already reviewed", BookingStatusCheckedOut, past, nil, true, false},
		{"cancelled", BookingStatusCancelled, past, nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{
				Status:          tt.status,
				CheckOutDate:    tt.checkOut,
				ActualCheckOut:  tt.actualOut,
				ReviewSubmitted: tt.submitted,
			}
			b.RecomputeCanReview(now)
			if b.CanReview != tt.want {
				t.Errorf("CanReview = %v, want %v", b.CanReview, tt.want)
			}
		})
	}
}

func TestCancelRecordsDetails(t *testing.T) {
	b := &Booking{Status: BookingStatusPending}
	by := uuid.New()
	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	b.Cancel(by, "changed plans", at)

	if b.Status != BookingStatusCancelled {
		t.Errorf("Status = %s, want cancelled", b.Status)
	}
	if b.CancelledBy == nil || *b.CancelledBy != by {
		t.Errorf("CancelledBy = %v, want %s", b.CancelledBy, by)
	}
	if b.CancelledAt == nil || !b.CancelledAt.Equal(at) {
		t.Errorf("CancelledAt = %v, want %s", b.CancelledAt, at)
	}
	if b.CancellationReason != "changed plans" {
		t.Errorf("CancellationReason = %q", b.CancellationReason)
	}
}

func TestRefundOnCheckOut(t *testing.T) {
	b := &Booking{SecurityDeposit: decimal.NewFromInt(3000)}

	tests := []struct {
		name    string
		damages decimal.Decimal
		want    decimal.Decimal
	}{
		{"no damages", decimal.Zero, decimal.NewFromInt(3000)},
		{"partial damages", decimal.NewFromInt(500), decimal.NewFromInt(2500)},
		{"damages exceed deposit", decimal.NewFromInt(5000), decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.RefundOnCheckOut(tt.damages); !got.Equal(tt.want) {
				t.Errorf("RefundOnCheckOut(%s) = %s, want %s", tt.damages, got, tt.want)
			}
		})
	}
}
