package get_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/domain"
)

var testZone = time.FixedZone("UTC-6", -6*60*60)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecuteWindowShape(t *testing.T) {
	uc := NewUseCase(testZone, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2024, 6, 12, 10, 0, 0, 0, testZone)} // Wednesday

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, testZone), resp.Today)
	require.Len(t, resp.Days, domain.CalendarWindowDays)

	// Starts two Sundays back and stays contiguous.
	assert.Equal(t, time.Date(2024, 5, 26, 0, 0, 0, 0, testZone), resp.Days[0].Date)
	for i := 1; i < len(resp.Days); i++ {
		assert.Equal(t, resp.Days[i-1].Date.AddDate(0, 0, 1), resp.Days[i].Date)
	}
}

func TestExecuteDayClasses(t *testing.T) {
	uc := NewUseCase(testZone, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2024, 6, 12, 10, 0, 0, 0, testZone)}

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	classes := make(map[string]domain.DateClass, len(resp.Days))
	for _, day := range resp.Days {
		classes[day.Date.Format(domain.DateFormat)] = day.Class
	}

	assert.Equal(t, domain.DateToday, classes["2024-06-12"])
	assert.Equal(t, domain.DatePast, classes["2024-06-11"])
	assert.Equal(t, domain.DateSelectable, classes["2024-06-19"]) // today+7, last bookable
	assert.Equal(t, domain.DateTooFarAhead, classes["2024-06-20"])
	assert.Equal(t, domain.DateSunday, classes["2024-06-16"])

	for _, day := range resp.Days {
		if day.Date.Weekday() == time.Sunday {
			assert.False(t, day.Class.IsBookable(), "sunday %s must not be bookable", day.Date)
		}
	}
}
