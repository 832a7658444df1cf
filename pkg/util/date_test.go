package util

import (
	"testing"
	"time"
)

func TestCompactDate(t *testing.T) {
	ts := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	got := CompactDate(ts)
	// 09:30 UTC is 18:30 KST, same calendar day
	if got != "20240115" {
		t.Fatalf("unexpected compact date %s", got)
	}
}

func TestCompactDateRollsOverInKST(t *testing.T) {
	// 16:00 UTC on Jan 15 is 01:00 KST on Jan 16
	ts := time.Date(2024, 1, 15, 16, 0, 0, 0, time.UTC)
	got := CompactDate(ts)
	if got != "20240116" {
		t.Fatalf("unexpected compact date %s", got)
	}
}

func TestDateWindow(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, Seoul())
	start, end := DateWindow(now, 1)
	if start != "20240114" {
		t.Fatalf("unexpected start %s", start)
	}
	if end != "20240115" {
		t.Fatalf("unexpected end %s", end)
	}
}

func TestDateWindowZeroDays(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, Seoul())
	start, end := DateWindow(now, 0)
	if start != end {
		t.Fatalf("expected single-day window, got %s..%s", start, end)
	}
}
