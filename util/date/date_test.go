package date_test

import (
	"testing"
	"time"

	"github.com/phoenix-platform/sucrim/util/date"
)

func TestLocation(t *testing.T) {
	if got := date.Location().String(); got != "America/Mexico_City" {
		t.Fatalf("expected America/Mexico_City, got %s", got)
	}
}

func TestNowUsesMexicoCity(t *testing.T) {
	now := date.Now()
	if now.Location() != date.Location() {
		t.Fatalf("expected Mexico City location, got %v", now.Location())
	}
	if diff := time.Since(now); diff < 0 || diff > time.Minute {
		t.Fatalf("Now drifted from wall clock by %v", diff)
	}
}

func TestTodayIsMidnight(t *testing.T) {
	today := date.Today()
	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 || today.Nanosecond() != 0 {
		t.Fatalf("expected midnight, got %v", today)
	}
	if today.Location() != date.Location() {
		t.Fatalf("expected Mexico City location, got %v", today.Location())
	}
}

func TestConversionsPreserveInstant(t *testing.T) {
	utc := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	mex := date.ToMexico(utc)
	if !mex.Equal(utc) {
		t.Fatalf("ToMexico changed the instant: %v vs %v", mex, utc)
	}
	if mex.Location() != date.Location() {
		t.Fatalf("expected Mexico City location, got %v", mex.Location())
	}

	back := date.FromMexico(mex, nil)
	if !back.Equal(utc) {
		t.Fatalf("FromMexico changed the instant: %v vs %v", back, utc)
	}
	if back.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", back.Location())
	}
}
