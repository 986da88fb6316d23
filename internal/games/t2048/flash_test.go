package t2048

import (
	"testing"
	"time"
)

func TestFlashBlinks(t *testing.T) {
	var f Flash
	t0 := time.Unix(1000, 0)

	if f.Running(t0) || f.On(t0) {
		t.Fatal("zero Flash should be idle")
	}

	f.Start(t0)

	tests := []struct {
		offset time.Duration
		on     bool
	}{
		{0, true},
		{FlashInterval / 2, true},
		{FlashInterval + time.Millisecond, false},
		{2*FlashInterval + time.Millisecond, true},
		{3*FlashInterval + time.Millisecond, false},
		{4 * FlashInterval, false},
	}

	for _, tt := range tests {
		if got := f.On(t0.Add(tt.offset)); got != tt.on {
			t.Errorf("On(+%v) = %v, want %v", tt.offset, got, tt.on)
		}
	}

	if f.Running(t0.Add(4 * FlashInterval)) {
		t.Error("Flash should be finished after all blinks")
	}

	f.Start(t0)
	f.Stop()
	if f.Running(t0) {
		t.Error("stopped Flash should not be running")
	}
}
