package business

import (
	"reflect"
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	cal, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	wantDays := []string{"mon", "tue", "wed", "thu", "fri"}
	if got := cal.BusinessDays(); !reflect.DeepEqual(got, wantDays) {
		t.Errorf("BusinessDays() = %v, want %v", got, wantDays)
	}

	if got := cal.Holidays(); len(got) != 0 {
		t.Errorf("Holidays() = %v, want empty", got)
	}

	// Default week: Monday-Friday business, weekend not.
	monday := time.Date(2014, 6, 2, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2014, 6, 7, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2014, 6, 8, 0, 0, 0, 0, time.UTC)

	if !cal.IsBusinessDay(monday) {
		t.Errorf("IsBusinessDay(%v) = false, want true", monday)
	}
	if cal.IsBusinessDay(saturday) {
		t.Errorf("IsBusinessDay(%v) = true, want false", saturday)
	}
	if cal.IsBusinessDay(sunday) {
		t.Errorf("IsBusinessDay(%v) = true, want false", sunday)
	}
}

func TestNewInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{
			"unknown weekday",
			Config{BusinessDays: []string{"mon", "notaday"}},
		},
		{
			"unparseable holiday",
			Config{Holidays: []string{"1st Jan, 2013", "sometime soon"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); err == nil {
				t.Errorf("New(%+v) expected error, got nil", tt.cfg)
			}
		})
	}
}

func TestSetBusinessDays(t *testing.T) {
	tests := []struct {
		name    string
		days    []string
		want    []string
		wantErr bool
	}{
		{"nil selects default week", nil, []string{"mon", "tue", "wed", "thu", "fri"}, false},
		{"empty selects default week", []string{}, []string{"mon", "tue", "wed", "thu", "fri"}, false},
		{"full names", []string{"Monday", "Wednesday"}, []string{"mon", "wed"}, false},
		{"abbreviations any case", []string{"SUN", "sat"}, []string{"sun", "sat"}, false},
		{"mixed forms deduplicate", []string{"tue", "Tuesday", "thursday"}, []string{"tue", "thu"}, false},
		{"invalid entry fails whole set", []string{"mon", "frisday"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := &Calendar{}
			err := cal.SetBusinessDays(tt.days)

			if (err != nil) != tt.wantErr {
				t.Fatalf("SetBusinessDays(%v) error = %v, wantErr %v", tt.days, err, tt.wantErr)
			}

			if !tt.wantErr && !reflect.DeepEqual(cal.BusinessDays(), tt.want) {
				t.Errorf("BusinessDays() = %v, want %v", cal.BusinessDays(), tt.want)
			}
		})
	}
}

func TestSetHolidays(t *testing.T) {
	cal := &Calendar{}
	if err := cal.SetBusinessDays(nil); err != nil {
		t.Fatalf("SetBusinessDays() error = %v", err)
	}

	err := cal.SetHolidays([]string{"1st Jan, 2013", "2013-01-01", "2014-06-18"})
	if err != nil {
		t.Fatalf("SetHolidays() error = %v", err)
	}

	want := []time.Time{
		time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2014, 6, 18, 0, 0, 0, 0, time.UTC),
	}
	if got := cal.Holidays(); !reflect.DeepEqual(got, want) {
		t.Errorf("Holidays() = %v, want %v (duplicates collapsed, sorted)", got, want)
	}
}

func TestSetHolidaysDiscardsTime(t *testing.T) {
	cal, err := New(Config{Holidays: []string{"2013-01-01T10:30:00"}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// The whole date is a holiday, whatever the clock says.
	evening := time.Date(2013, 1, 1, 18, 45, 0, 0, time.UTC)
	if cal.IsBusinessDay(evening) {
		t.Errorf("IsBusinessDay(%v) = true, want false", evening)
	}
}
