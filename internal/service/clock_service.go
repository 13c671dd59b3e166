package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// Tone цветовая гамма циферблата по часу суток
type Tone string

const (
	ToneNight     Tone = "night"
	ToneMorning   Tone = "morning"
	ToneAfternoon Tone = "afternoon"
	ToneEvening   Tone = "evening"
	ToneLate      Tone = "late"
)

var toneColors = map[Tone]string{
	ToneNight:     "#1b1f3b",
	ToneMorning:   "#f6c453",
	ToneAfternoon: "#4fa3e0",
	ToneEvening:   "#e07a4f",
	ToneLate:      "#5b3f8c",
}

// Color CSS-цвет гаммы
func (t Tone) Color() string { return toneColors[t] }

// ToneForHour half-open ranges, first match wins
func ToneForHour(hour int) Tone {
	switch {
	case hour < 6:
		return ToneNight
	case hour < 12:
		return ToneMorning
	case hour < 18:
		return ToneAfternoon
	case hour < 21:
		return ToneEvening
	default:
		return ToneLate
	}
}

// ClockFace данные для аналогового циферблата.
// Углы в градусах, ноль смещён на 90° против часовой стрелки от отметки 12.
type ClockFace struct {
	Zone         string  `json:"zone"`
	Label        string  `json:"label"`
	Abbreviation string  `json:"abbreviation"`
	Offset       string  `json:"offset"`
	HourAngle    float64 `json:"hour_angle"`
	MinuteAngle  float64 `json:"minute_angle"`
	SecondAngle  float64 `json:"second_angle"`
	Tone         Tone    `json:"tone"`
}

// Label layout: weekday, day, month, 24-hour clock, UTC offset, zone abbreviation.
const clockLabelLayout = "Mon, 02 Jan 15:04:05 -07:00 MST"

// InvalidZoneError имя зоны не найдено в базе часовых поясов
type InvalidZoneError struct {
	Zone string
	Err  error
}

func (e *InvalidZoneError) Error() string {
	return fmt.Sprintf("unknown time zone %q", e.Zone)
}

func (e *InvalidZoneError) Unwrap() error { return e.Err }

var errNotIANA = errors.New("not an IANA zone name")

// LoadZone resolves an IANA zone name. The empty name and "Local" resolve in
// the standard library but name no zone, so both are rejected.
func LoadZone(name string) (*time.Location, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed == "Local" {
		return nil, &InvalidZoneError{Zone: name, Err: errNotIANA}
	}
	loc, err := time.LoadLocation(trimmed)
	if err != nil {
		return nil, &InvalidZoneError{Zone: name, Err: err}
	}
	return loc, nil
}

// ComputeClock переводит момент now в местное время зоны и считает углы стрелок.
// Час берётся в диапазоне 0–23, поэтому часовая стрелка проходит циферблат дважды за сутки.
func ComputeClock(zone string, now time.Time) (ClockFace, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return ClockFace{}, err
	}
	local := now.In(loc)
	hour, minute, second := local.Clock()
	abbr, _ := local.Zone()

	return ClockFace{
		Zone:         loc.String(),
		Label:        local.Format(clockLabelLayout),
		Abbreviation: abbr,
		Offset:       local.Format("-07:00"),
		HourAngle:    float64(hour)*30 + float64(minute)/2 - 90,
		MinuteAngle:  float64(minute)*6 + float64(second)/10 - 90,
		SecondAngle:  float64(second)*6 - 90,
		Tone:         ToneForHour(hour),
	}, nil
}

// DefaultZones список для селектора зон
var DefaultZones = []string{
	"UTC",
	"Europe/London",
	"Europe/Paris",
	"Europe/Berlin",
	"Europe/Moscow",
	"Africa/Cairo",
	"Africa/Johannesburg",
	"Asia/Dubai",
	"Asia/Kolkata",
	"Asia/Singapore",
	"Asia/Shanghai",
	"Asia/Tokyo",
	"Australia/Sydney",
	"Pacific/Auckland",
	"America/Sao_Paulo",
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"Pacific/Honolulu",
}

// ClockService хранит список зон и зону по умолчанию для виджета часов
type ClockService struct {
	zones       []string
	defaultZone string
	now         func() time.Time
}

// NewClockService проверяет defaultZone и каждую зону списка.
// Пустой список заменяется DefaultZones; зона по умолчанию всегда присутствует в списке.
func NewClockService(defaultZone string, zones []string) (*ClockService, error) {
	defaultZone = strings.TrimSpace(defaultZone)
	if _, err := LoadZone(defaultZone); err != nil {
		return nil, err
	}
	if len(zones) == 0 {
		zones = DefaultZones
	}
	list := make([]string, 0, len(zones)+1)
	seen := make(map[string]bool, len(zones)+1)
	for _, z := range zones {
		z = strings.TrimSpace(z)
		if z == "" || seen[z] {
			continue
		}
		if _, err := LoadZone(z); err != nil {
			return nil, err
		}
		seen[z] = true
		list = append(list, z)
	}
	if !seen[defaultZone] {
		list = append([]string{defaultZone}, list...)
	}
	return &ClockService{zones: list, defaultZone: defaultZone, now: time.Now}, nil
}

// Zones копия списка зон
func (s *ClockService) Zones() []string { return append([]string(nil), s.zones...) }

func (s *ClockService) DefaultZone() string { return s.defaultZone }

// Now момент фиксируется один раз на весь расчёт
func (s *ClockService) Now(zone string) (ClockFace, error) {
	return ComputeClock(zone, s.now())
}

// WithClock заменяет источник времени
func (s *ClockService) WithClock(now func() time.Time) *ClockService {
	cp := *s
	cp.now = now
	return &cp
}
