package entity

import (
	"testing"
	"time"
)

func TestStudentCheckOutIdempotent(t *testing.T) {
	s := &Student{Status: StudentStatusActive}
	first := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	second := first.AddDate(0, 0, 7)

	if !s.CheckOut(first) {
		t.Fatal("first CheckOut returned false")
	}
	if s.Status != StudentStatusCheckedOut {
		t.Errorf("Status = %s, want checked-out", s.Status)
	}
	if s.CheckOutDate == nil || !s.CheckOutDate.Equal(first) {
		t.Errorf("CheckOutDate = %v, want %s", s.CheckOutDate, first)
	}

	if s.CheckOut(second) {
		t.Error("second CheckOut returned true, want false")
	}
	if !s.CheckOutDate.Equal(first) {
		t.Errorf("CheckOutDate moved to %s, want unchanged %s", s.CheckOutDate, first)
	}
}
