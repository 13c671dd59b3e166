package service

import (
	"errors"
	"testing"
	"time"
)

func TestComputeClock_LondonNoon(t *testing.T) {
	now := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	face, err := ComputeClock("Europe/London", now)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if face.HourAngle != 270 {
		t.Fatalf("hour angle expected 270, got %v", face.HourAngle)
	}
	if face.MinuteAngle != -90 || face.SecondAngle != -90 {
		t.Fatalf("minute/second angles expected -90, got %v %v", face.MinuteAngle, face.SecondAngle)
	}
	if face.Tone != ToneAfternoon {
		t.Fatalf("tone expected afternoon, got %v", face.Tone)
	}
	if face.Offset != "+00:00" || face.Abbreviation != "GMT" {
		t.Fatalf("unexpected offset/abbr %q %q", face.Offset, face.Abbreviation)
	}
	if face.Label != "Mon, 15 Jan 12:00:00 +00:00 GMT" {
		t.Fatalf("unexpected label %q", face.Label)
	}
}

func TestComputeClock_AnglesUseLocalTime(t *testing.T) {
	// 07:45:30 UTC is 16:45:30 JST
	now := time.Date(2024, time.March, 1, 7, 45, 30, 0, time.UTC)
	face, err := ComputeClock("Asia/Tokyo", now)
	if err != nil {
		t.Fatal(err)
	}
	if want := 16*30 + 45.0/2 - 90; face.HourAngle != want {
		t.Fatalf("hour angle %v, want %v", face.HourAngle, want)
	}
	if want := 45*6 + 30.0/10 - 90; face.MinuteAngle != want {
		t.Fatalf("minute angle %v, want %v", face.MinuteAngle, want)
	}
	if want := 30*6 - 90.0; face.SecondAngle != want {
		t.Fatalf("second angle %v, want %v", face.SecondAngle, want)
	}
	if face.Offset != "+09:00" {
		t.Fatalf("offset %q", face.Offset)
	}
}

func TestComputeClock_Deterministic(t *testing.T) {
	now := time.Date(2024, time.July, 4, 18, 30, 15, 0, time.UTC)
	a, err := ComputeClock("America/New_York", now)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := ComputeClock("America/New_York", now)
	if a != b {
		t.Fatalf("expected identical faces, got %+v and %+v", a, b)
	}
	if a.Abbreviation != "EDT" || a.Offset != "-04:00" {
		t.Fatalf("unexpected summer zone %q %q", a.Abbreviation, a.Offset)
	}
}

func TestToneForHour_Boundaries(t *testing.T) {
	cases := map[int]Tone{
		0: ToneNight, 5: ToneNight,
		6: ToneMorning, 11: ToneMorning,
		12: ToneAfternoon, 17: ToneAfternoon,
		18: ToneEvening, 20: ToneEvening,
		21: ToneLate, 23: ToneLate,
	}
	for hour, want := range cases {
		if got := ToneForHour(hour); got != want {
			t.Fatalf("hour %d: expected %v, got %v", hour, want, got)
		}
		if got := ToneForHour(hour).Color(); got == "" {
			t.Fatalf("hour %d: no color", hour)
		}
	}
}

func TestComputeClock_BoundaryHoursInZone(t *testing.T) {
	for hour, want := range map[int]Tone{0: ToneNight, 6: ToneMorning, 12: ToneAfternoon, 18: ToneEvening, 21: ToneLate} {
		now := time.Date(2024, time.January, 15, hour, 0, 0, 0, time.UTC)
		face, err := ComputeClock("UTC", now)
		if err != nil {
			t.Fatal(err)
		}
		if face.Tone != want {
			t.Fatalf("hour %d: expected %v, got %v", hour, want, face.Tone)
		}
	}
}

func TestComputeClock_InvalidZone(t *testing.T) {
	for _, zone := range []string{"Not/AZone", "", "   ", "Local", "../etc/passwd"} {
		_, err := ComputeClock(zone, time.Now())
		var ize *InvalidZoneError
		if !errors.As(err, &ize) {
			t.Fatalf("zone %q: expected InvalidZoneError, got %v", zone, err)
		}
		if ize.Zone != zone {
			t.Fatalf("zone %q: error carries %q", zone, ize.Zone)
		}
	}
}

func TestClockService_DefaultZoneAlwaysListed(t *testing.T) {
	s, err := NewClockService("Asia/Kathmandu", []string{"UTC", "Europe/Paris", "UTC"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	zones := s.Zones()
	if len(zones) != 3 || zones[0] != "Asia/Kathmandu" {
		t.Fatalf("unexpected zones %v", zones)
	}
	if s.DefaultZone() != "Asia/Kathmandu" {
		t.Fatalf("default %q", s.DefaultZone())
	}
}

func TestClockService_FallsBackToDefaultList(t *testing.T) {
	s, err := NewClockService("Europe/London", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Zones()) != len(DefaultZones) {
		t.Fatalf("expected %d zones, got %d", len(DefaultZones), len(s.Zones()))
	}
}

func TestClockService_RejectsUnknownZones(t *testing.T) {
	if _, err := NewClockService("Not/AZone", nil); err == nil {
		t.Fatalf("expected error for default zone")
	}
	if _, err := NewClockService("UTC", []string{"Mars/Olympus"}); err == nil {
		t.Fatalf("expected error for listed zone")
	}
}

func TestClockService_UsesInjectedClock(t *testing.T) {
	s, err := NewClockService("Europe/London", nil)
	if err != nil {
		t.Fatal(err)
	}
	fixed := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	face, err := s.WithClock(func() time.Time { return fixed }).Now("Europe/London")
	if err != nil {
		t.Fatal(err)
	}
	if face.HourAngle != 270 {
		t.Fatalf("expected 270, got %v", face.HourAngle)
	}
}
