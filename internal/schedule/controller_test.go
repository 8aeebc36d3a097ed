package schedule

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-portal/internal/backend"
	"github.com/jwalitptl/clinic-portal/internal/model"
	"github.com/jwalitptl/clinic-portal/pkg/apperror"
)

type fakeTransport struct {
	apptsFn func(ctx context.Context, f model.ScheduleFilter, token string) ([]model.Appointment, error)
}

func (f *fakeTransport) FetchAppointments(ctx context.Context, flt model.ScheduleFilter, token string) ([]model.Appointment, error) {
	return f.apptsFn(ctx, flt, token)
}

func (f *fakeTransport) FetchCatalog(context.Context) ([]model.Doctor, error) { panic("not used") }

func (f *fakeTransport) FetchFiltered(context.Context, model.DoctorFilter) ([]model.Doctor, error) {
	panic("not used")
}

func (f *fakeTransport) CreateDoctor(context.Context, backend.CreateDoctorPayload, string) backend.Result {
	panic("not used")
}

func (f *fakeTransport) DeleteDoctor(context.Context, model.ID, string) backend.Result {
	panic("not used")
}

func (f *fakeTransport) FetchPatientProfile(context.Context, string) (*model.Patient, error) {
	panic("not used")
}

func fixedClock(date string) func() time.Time {
	d, _ := time.ParseInLocation(model.DateFormat, date, time.Local)
	return func() time.Time { return d }
}

func TestLoadEmptyResult(t *testing.T) {
	var gotFilter model.ScheduleFilter
	var gotToken string
	ft := &fakeTransport{
		apptsFn: func(_ context.Context, f model.ScheduleFilter, token string) ([]model.Appointment, error) {
			gotFilter = f
			gotToken = token
			return nil, nil
		},
	}
	c := New(ft, zerolog.Nop())
	c.SetDate("2024-01-01")

	c.Load(context.Background(), "tok123")

	assert.Equal(t, "2024-01-01", gotFilter.Date)
	assert.Nil(t, gotFilter.PatientName)
	assert.Equal(t, "tok123", gotToken)

	rows := c.Rows()
	require.Len(t, rows, 1)
	cells := rows[0].FindTag("td")
	require.Len(t, cells, 1)
	span, _ := cells[0].Attr("colspan")
	assert.Equal(t, "4", span)
	assert.Equal(t, "No Appointments found for today.", cells[0].Text())
}

func TestLoadRendersRows(t *testing.T) {
	ft := &fakeTransport{
		apptsFn: func(context.Context, model.ScheduleFilter, string) ([]model.Appointment, error) {
			return []model.Appointment{
				{ID: "12", Name: "Jane Roe", Phone: "555-0101", Email: "jane@x.com"},
				{ID: "13", Name: "John Doe", Phone: "555-0102", Email: "john@x.com"},
			}, nil
		},
	}
	c := New(ft, zerolog.Nop())

	c.Load(context.Background(), "tok")

	rows := c.Rows()
	require.Len(t, rows, 2)
	assert.Contains(t, rows[0].TextContent(), "Jane Roe")
	assert.Contains(t, rows[1].TextContent(), "John Doe")
}

func TestLoadFailureDiscardsPreviousRows(t *testing.T) {
	fail := false
	ft := &fakeTransport{
		apptsFn: func(context.Context, model.ScheduleFilter, string) ([]model.Appointment, error) {
			if fail {
				return nil, apperror.Transport("request failed", errors.New("boom"))
			}
			return []model.Appointment{{ID: "12", Name: "Jane Roe"}}, nil
		},
	}
	c := New(ft, zerolog.Nop())

	c.Load(context.Background(), "tok")
	require.Len(t, c.Rows(), 1)
	require.Contains(t, c.Rows()[0].TextContent(), "Jane Roe")

	fail = true
	c.Load(context.Background(), "tok")

	// The previous row set is fully discarded, not merged.
	rows := c.Rows()
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0].TextContent(), "Error loading appointments. Try again later.")
	assert.NotContains(t, rows[0].TextContent(), "Jane Roe")
}

func TestSetPatientNameNormalizesBlank(t *testing.T) {
	var got *string
	ft := &fakeTransport{
		apptsFn: func(_ context.Context, f model.ScheduleFilter, _ string) ([]model.Appointment, error) {
			got = f.PatientName
			return nil, nil
		},
	}
	c := New(ft, zerolog.Nop())

	c.SetPatientName("  Jane  ")
	c.Load(context.Background(), "tok")
	require.NotNil(t, got)
	assert.Equal(t, "Jane", *got)

	c.SetPatientName("   ")
	c.Load(context.Background(), "tok")
	assert.Nil(t, got)
}

func TestResetToToday(t *testing.T) {
	ft := &fakeTransport{
		apptsFn: func(context.Context, model.ScheduleFilter, string) ([]model.Appointment, error) {
			return nil, nil
		},
	}
	c := New(ft, zerolog.Nop())
	c.SetClock(fixedClock("2024-03-15"))
	c.SetDate("2024-01-01")

	got := c.ResetToToday()
	assert.Equal(t, "2024-03-15", got)
	assert.Equal(t, "2024-03-15", c.SelectedDate())
}

func TestSetDateIgnoresEmpty(t *testing.T) {
	ft := &fakeTransport{}
	c := New(ft, zerolog.Nop())
	c.SetDate("2024-01-01")
	c.SetDate("")
	assert.Equal(t, "2024-01-01", c.SelectedDate())
}

func TestSetDateRejectsMalformedValues(t *testing.T) {
	ft := &fakeTransport{}
	c := New(ft, zerolog.Nop())
	c.SetDate("2024-01-01")

	for _, bad := range []string{
		"tomorrow",
		"2024-13-40",
		"01/02/2024",
		`"><script>alert(1)</script>`,
	} {
		c.SetDate(bad)
		assert.Equal(t, "2024-01-01", c.SelectedDate(), "date %q must not be stored", bad)
	}
}

func TestLoadLatestRequestWins(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	ft := &fakeTransport{
		apptsFn: func(_ context.Context, f model.ScheduleFilter, _ string) ([]model.Appointment, error) {
			if f.Date == "2024-01-01" {
				close(started)
				<-release
				return []model.Appointment{{ID: "9", Name: "Stale"}}, nil
			}
			return []model.Appointment{{ID: "2", Name: "Fresh"}}, nil
		},
	}
	c := New(ft, zerolog.Nop())

	c.SetDate("2024-01-01")
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Load(context.Background(), "tok")
	}()

	<-started
	c.SetDate("2024-01-02")
	c.Load(context.Background(), "tok")
	close(release)
	wg.Wait()

	// The stale response resolved last but lost the race; it never
	// overwrites the table.
	rows := c.Rows()
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0].TextContent(), "Fresh")
	assert.NotContains(t, rows[0].TextContent(), "Stale")
}

func TestNewDefaultsToToday(t *testing.T) {
	ft := &fakeTransport{}
	c := New(ft, zerolog.Nop())
	assert.Equal(t, model.Today(nil), c.SelectedDate())
}
