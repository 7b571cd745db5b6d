package main

import "testing"

func TestRun_RejectsOutOfRangeN(t *testing.T) {
	if err := run(maxN+1, 1, 1); err == nil {
		t.Error("expected error for n beyond maxN")
	}
	if err := run(0, 1, 1); err == nil {
		t.Error("expected error for n below 1")
	}
}

func TestRun_RejectsOutOfRangeK(t *testing.T) {
	if err := run(4, 0, 1); err == nil {
		t.Error("expected error for k below 1")
	}
	if err := run(4, 5, 1); err == nil {
		t.Error("expected error for k above n")
	}
}

func TestRun_SucceedsForSmallInstance(t *testing.T) {
	if err := run(3, 2, 7); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
