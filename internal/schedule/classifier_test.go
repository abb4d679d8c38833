package schedule

import (
	"testing"
	"time"

	"github.com/Gusi-ui/sadmini-sub001/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%s): %v", s, err)
	}
	return d
}

func testCalendar(t *testing.T) *SnapshotCalendar {
	t.Helper()
	return NewSnapshotCalendar([]model.Holiday{
		{HolidayID: "h-1", Day: mustDate(t, "2025-01-01"), Name: "Cap d'Any", Type: model.HolidayTypeNational, Municipality: "", IsActive: true},
		{HolidayID: "h-2", Day: mustDate(t, "2025-06-09"), Name: "Fira de Mataró", Type: model.HolidayTypeLocal, Municipality: "Mataró", IsActive: true},
		{HolidayID: "h-3", Day: mustDate(t, "2025-08-16"), Name: "Deactivated", Type: model.HolidayTypeLocal, Municipality: "Mataró", IsActive: false},
	})
}

func TestClassify_Precedence(t *testing.T) {
	classifier := NewClassifier(testCalendar(t))

	tests := []struct {
		name         string
		date         string
		municipality string
		want         DayType
	}{
		{"ordinary weekday", "2025-01-02", "Mataró", DayTypeWorkday},
		{"saturday", "2025-01-04", "Mataró", DayTypeWeekend},
		{"sunday", "2025-01-05", "Mataró", DayTypeWeekend},
		{"national holiday on a weekday", "2025-01-01", "Mataró", DayTypeHoliday},
		{"national holiday applies everywhere", "2025-01-01", "Argentona", DayTypeHoliday},
		{"local holiday in its municipality", "2025-06-09", "Mataró", DayTypeHoliday},
		{"local holiday elsewhere is a workday", "2025-06-09", "Argentona", DayTypeWorkday},
		{"deactivated holiday is ignored", "2025-08-16", "Mataró", DayTypeWeekend},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(mustDate(t, tt.date), tt.municipality)
			if got != tt.want {
				t.Errorf("Classify(%s, %s) = %s, want %s", tt.date, tt.municipality, got, tt.want)
			}
		})
	}
}

// A holiday falling on a weekend must still classify as holiday.
func TestClassify_HolidayOverridesWeekend(t *testing.T) {
	cal := NewSnapshotCalendar([]model.Holiday{
		// 2025-12-06 is a Saturday
		{HolidayID: "h-1", Day: mustDate(t, "2025-12-06"), Name: "Dia de la Constitució", Type: model.HolidayTypeNational, IsActive: true},
	})
	classifier := NewClassifier(cal)

	if got := classifier.Classify(mustDate(t, "2025-12-06"), "Mataró"); got != DayTypeHoliday {
		t.Errorf("holiday on a Saturday classified as %s, want %s", got, DayTypeHoliday)
	}
}

// Every date classifies into exactly one of the three day types.
func TestClassify_TotalAndUnambiguous(t *testing.T) {
	classifier := NewClassifier(testCalendar(t))

	for d := mustDate(t, "2025-01-01"); !d.After(mustDate(t, "2025-12-31")); d = d.AddDate(0, 0, 1) {
		got := classifier.Classify(d, "Mataró")
		switch got {
		case DayTypeWorkday, DayTypeHoliday, DayTypeWeekend:
		default:
			t.Fatalf("Classify(%s) returned unknown day type %q", d.Format("2006-01-02"), got)
		}
	}
}

func TestSnapshotCalendar_MunicipalityRowWinsOverGlobal(t *testing.T) {
	cal := NewSnapshotCalendar([]model.Holiday{
		{HolidayID: "global", Day: mustDate(t, "2025-09-11"), Name: "Diada", Type: model.HolidayTypeRegional, Municipality: "", IsActive: true},
		{HolidayID: "local", Day: mustDate(t, "2025-09-11"), Name: "Diada (Mataró)", Type: model.HolidayTypeLocal, Municipality: "Mataró", IsActive: true},
	})

	ok, h := cal.IsHoliday(mustDate(t, "2025-09-11"), "Mataró")
	if !ok || h == nil {
		t.Fatal("expected a holiday")
	}
	if h.HolidayID != "local" {
		t.Errorf("got holiday %s, want the municipality-scoped row", h.HolidayID)
	}

	ok, h = cal.IsHoliday(mustDate(t, "2025-09-11"), "Argentona")
	if !ok || h == nil || h.HolidayID != "global" {
		t.Error("expected the global row for another municipality")
	}
}
