package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newTestRoom(t *testing.T, capacity int, bedNumbers ...string) *Room {
	t.Helper()
	room := &Room{
		ID:         uuid.New(),
		HostelID:   uuid.New(),
		RoomNumber: "101",
		Floor:      1,
		RoomType:   RoomTypeDouble,
		Capacity:   capacity,
		Status:     RoomStatusAvailable,
	}
	for _, number := range bedNumbers {
		if _, err := room.AddBed(number, decimal.NewFromInt(3000), nil); err != nil {
			t.Fatalf("AddBed(%q) failed: %v", number, err)
		}
	}
	return room
}

func testOccupant(userID uuid.UUID) BedOccupant {
	return BedOccupant{
		UserID:       &userID,
		StudentCode:  "STU-1-ABCDE",
		StudentName:  "Asha Rao",
		StudentPhone: "9876543210",
		StudentEmail: "asha@example.com",
		CheckInDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAddBedLimits(t *testing.T) {
	room := newTestRoom(t, 2, "A")

	if _, err := room.AddBed("A", decimal.NewFromInt(3000), nil); err != ErrDuplicateBedNumber {
		t.Errorf("duplicate bed number: got %v, want ErrDuplicateBedNumber", err)
	}

	if _, err := room.AddBed("B", decimal.NewFromInt(3500), nil); err != nil {
		t.Fatalf("AddBed(B) failed: %v", err)
	}

	if _, err := room.AddBed("C", decimal.NewFromInt(3000), nil); err != ErrRoomCapacityReached {
		t.Errorf("over capacity: got %v, want ErrRoomCapacityReached", err)
	}
}

func TestRecomputeOccupancyAndStatus(t *testing.T) {
	room := newTestRoom(t, 2, "A", "B")

	if room.Status != RoomStatusAvailable || room.CurrentOccupancy != 0 {
		t.Fatalf("fresh room: status=%s occupancy=%d", room.Status, room.CurrentOccupancy)
	}

	if _, err := room.AssignBed("A", testOccupant(uuid.New())); err != nil {
		t.Fatalf("AssignBed(A) failed: %v", err)
	}
	if room.CurrentOccupancy != 1 || room.Status != RoomStatusAvailable {
		t.Errorf("one occupied: occupancy=%d status=%s", room.CurrentOccupancy, room.Status)
	}

	if _, err := room.AssignBed("B", testOccupant(uuid.New())); err != nil {
		t.Fatalf("AssignBed(B) failed: %v", err)
	}
	if room.CurrentOccupancy != 2 || room.Status != RoomStatusFullyOccupied {
		t.Errorf("fully occupied: occupancy=%d status=%s", room.CurrentOccupancy, room.Status)
	}

	if _, _, err := room.VacateBed("A"); err != nil {
		t.Fatalf("VacateBed(A) failed: %v", err)
	}
	if room.CurrentOccupancy != 1 || room.Status != RoomStatusAvailable {
		t.Errorf("after vacate: occupancy=%d status=%s", room.CurrentOccupancy, room.Status)
	}
}

func TestMaintenanceRoomStatus(t *testing.T) {
	room := newTestRoom(t, 2, "A", "B")

	if _, err := room.SetBedMaintenance("A"); err != nil {
		t.Fatalf("SetBedMaintenance failed: %v", err)
	}
	if room.Status != RoomStatusMaintenance {
		t.Errorf("status = %s, want maintenance", room.Status)
	}

	// Full occupancy wins over maintenance only when every bed is occupied,
	// which cannot happen while a bed is under maintenance
	if _, err := room.AssignBed("B", testOccupant(uuid.New())); err != nil {
		t.Fatalf("AssignBed(B) failed: %v", err)
	}
	if room.Status != RoomStatusMaintenance {
		t.Errorf("status = %s, want maintenance", room.Status)
	}
}

func TestAssignGuards(t *testing.T) {
	room := newTestRoom(t, 2, "A", "B")

	if _, err := room.AssignBed("Z", testOccupant(uuid.New())); err != ErrBedNotFound {
		t.Errorf("unknown bed: got %v, want ErrBedNotFound", err)
	}

	if _, err := room.AssignBed("A", testOccupant(uuid.New())); err != nil {
		t.Fatalf("AssignBed(A) failed: %v", err)
	}
	if _, err := room.AssignBed("A", testOccupant(uuid.New())); err != ErrBedOccupied {
		t.Errorf("occupied bed: got %v, want ErrBedOccupied", err)
	}

	if _, err := room.SetBedMaintenance("B"); err != nil {
		t.Fatalf("SetBedMaintenance failed: %v", err)
	}
	if _, err := room.AssignBed("B", testOccupant(uuid.New())); err != ErrBedUnderMaintenance {
		t.Errorf("maintenance bed: got %v, want ErrBedUnderMaintenance", err)
	}
}

func TestOccupiedStatusLock(t *testing.T) {
	room := newTestRoom(t, 1, "A")
	if _, err := room.AssignBed("A", testOccupant(uuid.New())); err != nil {
		t.Fatalf("AssignBed failed: %v", err)
	}

	available := BedStatusAvailable
	if _, err := room.UpdateBed("A", BedPatch{Status: &available}); err != ErrOccupiedStatusLock {
		t.Errorf("demoting occupied bed: got %v, want ErrOccupiedStatusLock", err)
	}

	occupied := BedStatusOccupied
	if _, err := room.UpdateBed("A", BedPatch{Status: &occupied}); err != nil {
		t.Errorf("restating occupied: got %v, want nil", err)
	}

	rent := decimal.NewFromInt(4000)
	bed, err := room.UpdateBed("A", BedPatch{RentAmount: &rent})
	if err != nil {
		t.Fatalf("rent update failed: %v", err)
	}
	if !bed.RentAmount.Equal(rent) {
		t.Errorf("rent = %s, want 4000", bed.RentAmount)
	}
}

func TestReservationLifecycle(t *testing.T) {
	room := newTestRoom(t, 2, "A", "B")
	holder := uuid.New()

	bed, err := room.ReserveBed("A", holder, nil)
	if err != nil {
		t.Fatalf("ReserveBed failed: %v", err)
	}
	if bed.Status != BedStatusReserved || bed.HeldBy == nil || *bed.HeldBy != holder {
		t.Errorf("reserved bed: status=%s heldBy=%v", bed.Status, bed.HeldBy)
	}
	if bed.IsOccupied {
		t.Error("reservation must not mark the bed occupied")
	}
	if room.CurrentOccupancy != 0 {
		t.Errorf("occupancy = %d, want 0 for reserved bed", room.CurrentOccupancy)
	}

	if _, err := room.ReserveBed("A", uuid.New(), nil); err != ErrBedAlreadyReserved {
		t.Errorf("double reserve: got %v, want ErrBedAlreadyReserved", err)
	}

	// Assignment clears the hold
	if _, err := room.AssignBed("A", testOccupant(holder)); err != nil {
		t.Fatalf("AssignBed over reservation failed: %v", err)
	}
	if bed := room.FindBed("A"); bed.HeldBy != nil || bed.ReservationExpiry != nil {
		t.Error("hold fields must be cleared on assignment")
	}

	if _, err := room.CancelBedReservation("B"); err != ErrBedNotReserved {
		t.Errorf("cancel without hold: got %v, want ErrBedNotReserved", err)
	}

	if _, err := room.ReserveBed("B", holder, nil); err != nil {
		t.Fatalf("ReserveBed(B) failed: %v", err)
	}
	released, err := room.CancelBedReservation("B")
	if err != nil {
		t.Fatalf("CancelBedReservation failed: %v", err)
	}
	if released.Status != BedStatusAvailable || released.HeldBy != nil {
		t.Errorf("released bed: status=%s heldBy=%v", released.Status, released.HeldBy)
	}
}

func TestVacateReturnsPreviousOccupant(t *testing.T) {
	room := newTestRoom(t, 1, "A")
	userID := uuid.New()
	occupant := testOccupant(userID)

	if _, err := room.AssignBed("A", occupant); err != nil {
		t.Fatalf("AssignBed failed: %v", err)
	}

	prev, bed, err := room.VacateBed("A")
	if err != nil {
		t.Fatalf("VacateBed failed: %v", err)
	}
	if prev.UserID == nil || *prev.UserID != userID {
		t.Errorf("previous occupant userID = %v, want %s", prev.UserID, userID)
	}
	if prev.StudentName != occupant.StudentName || prev.StudentCode != occupant.StudentCode {
		t.Errorf("previous occupant snapshot = %+v", prev)
	}
	if bed.IsOccupied || bed.Status != BedStatusAvailable || bed.StudentName != "" {
		t.Errorf("vacated bed not cleared: %+v", bed)
	}

	if _, _, err := room.VacateBed("A"); err != ErrBedVacant {
		t.Errorf("double vacate: got %v, want ErrBedVacant", err)
	}
}

func TestRemoveBedGuards(t *testing.T) {
	room := newTestRoom(t, 2, "A", "B")
	if _, err := room.AssignBed("A", testOccupant(uuid.New())); err != nil {
		t.Fatalf("AssignBed failed: %v", err)
	}

	if _, err := room.RemoveBed("A"); err != ErrBedOccupied {
		t.Errorf("removing occupied bed: got %v, want ErrBedOccupied", err)
	}
	if _, err := room.RemoveBed("B"); err != nil {
		t.Errorf("removing free bed: %v", err)
	}
	if len(room.Beds) != 1 {
		t.Errorf("beds remaining = %d, want 1", len(room.Beds))
	}
}

func TestSwapBedsMovesOccupancyAndHolds(t *testing.T) {
	room := newTestRoom(t, 2, "A", "B")
	userID := uuid.New()
	holder := uuid.New()

	if _, err := room.AssignBed("A", testOccupant(userID)); err != nil {
		t.Fatalf("AssignBed failed: %v", err)
	}
	if _, err := room.ReserveBed("B", holder, nil); err != nil {
		t.Fatalf("ReserveBed failed: %v", err)
	}

	a, b, err := room.SwapBeds("A", "B")
	if err != nil {
		t.Fatalf("SwapBeds failed: %v", err)
	}

	if a.IsOccupied || a.Status != BedStatusReserved || a.HeldBy == nil || *a.HeldBy != holder {
		t.Errorf("bed A after swap: %+v", a)
	}
	if !b.IsOccupied || b.Status != BedStatusOccupied || b.CurrentOccupantID == nil || *b.CurrentOccupantID != userID {
		t.Errorf("bed B after swap: %+v", b)
	}
	if room.CurrentOccupancy != 1 {
		t.Errorf("occupancy = %d, want 1", room.CurrentOccupancy)
	}
}

func TestAvailableBedFilter(t *testing.T) {
	room := newTestRoom(t, 3, "A", "B", "C")
	room.Floor = 2
	room.RoomType = RoomTypeTriple
	room.FindBed("B").RentAmount = decimal.NewFromInt(5000)
	if _, err := room.AssignBed("C", testOccupant(uuid.New())); err != nil {
		t.Fatalf("AssignBed failed: %v", err)
	}

	floor := 2
	minRent := decimal.NewFromInt(4000)
	maxRent := decimal.NewFromInt(4000)

	tests := []struct {
		name    string
		filter  AvailableBedFilter
		bed     string
		matches bool
	}{
		{"no filters, available bed", AvailableBedFilter{}, "A", true},
		{"no filters, occupied bed", AvailableBedFilter{}, "C", false},
		{"floor match", AvailableBedFilter{Floor: &floor}, "A", true},
		{"room type mismatch", AvailableBedFilter{RoomType: RoomTypeSingle}, "A", false},
		{"min rent excludes cheap bed", AvailableBedFilter{MinRent: &minRent}, "A", false},
		{"min rent keeps expensive bed", AvailableBedFilter{MinRent: &minRent}, "B", true},
		{"max rent excludes expensive bed", AvailableBedFilter{MaxRent: &maxRent}, "B", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bed := room.FindBed(tt.bed)
			if got := tt.filter.Matches(room, bed); got != tt.matches {
				t.Errorf("Matches(%s) = %v, want %v", tt.bed, got, tt.matches)
			}
		})
	}
}
