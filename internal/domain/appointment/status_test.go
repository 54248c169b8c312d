package appointment

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusNoShow, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusNoShow, StatusCompleted, false},
	}

	for _, tt := range tests {
		err := CanTransition(tt.from, tt.to)
		if tt.allowed && err != nil {
			t.Errorf("%s -> %s: expected allowed, got %v", tt.from, tt.to, err)
		}
		if !tt.allowed && err == nil {
			t.Errorf("%s -> %s: expected rejection", tt.from, tt.to)
		}
	}
}

func TestBlocksSlot(t *testing.T) {
	blocking := []Status{StatusPending, StatusConfirmed, StatusCompleted}
	for _, s := range blocking {
		if !s.BlocksSlot() {
			t.Errorf("%s should occupy its slot", s)
		}
	}

	free := []Status{StatusCancelled, StatusNoShow}
	for _, s := range free {
		if s.BlocksSlot() {
			t.Errorf("%s should not occupy its slot", s)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow} {
		if !IsValidStatus(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	if IsValidStatus("scheduled") {
		t.Error("unknown status accepted")
	}
}
