package schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-portal/internal/backend"
	"github.com/jwalitptl/clinic-portal/internal/middleware"
	"github.com/jwalitptl/clinic-portal/internal/model"
	"github.com/jwalitptl/clinic-portal/internal/registry"
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

type fakeStore struct {
	token string
}

func (s *fakeStore) Token(context.Context, string) (string, error) { return s.token, nil }
func (s *fakeStore) Role(context.Context, string) (model.Role, error) {
	return model.RoleAdmin, nil
}
func (s *fakeStore) Put(context.Context, string, string, model.Role) error { return nil }
func (s *fakeStore) Clear(context.Context, string) error                   { return nil }

func newTestRouter(ft *fakeTransport, layout LayoutFunc) (*gin.Engine, *registry.Registry) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.Session("portal_session", 3600))

	reg := registry.NewDefault(time.Minute, ft, zerolog.Nop())
	h := NewHandler(reg, &fakeStore{token: "tok123"}, layout, zerolog.Nop())
	h.RegisterRoutes(engine.Group("/"))
	return engine, reg
}

func doRequest(engine *gin.Engine, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.AddCookie(&http.Cookie{Name: "portal_session", Value: "test-sid"})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestReloadAppliesDateAndName(t *testing.T) {
	var gotFilter model.ScheduleFilter
	var gotToken string
	ft := &fakeTransport{
		apptsFn: func(_ context.Context, f model.ScheduleFilter, token string) ([]model.Appointment, error) {
			gotFilter = f
			gotToken = token
			return []model.Appointment{
				{ID: "12", Name: "Jane Roe", Phone: "555-0101", Email: "jane@x.com"},
			}, nil
		},
	}
	engine, _ := newTestRouter(ft, nil)

	w := doRequest(engine, "/fragments/appointments?date=2024-03-15&name=Jane")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-03-15", gotFilter.Date)
	require.NotNil(t, gotFilter.PatientName)
	assert.Equal(t, "Jane", *gotFilter.PatientName)
	assert.Equal(t, "tok123", gotToken)
	assert.Contains(t, w.Body.String(), "Jane Roe")
}

func TestReloadBlankNameClearsFilter(t *testing.T) {
	var gotName *string
	ft := &fakeTransport{
		apptsFn: func(_ context.Context, f model.ScheduleFilter, _ string) ([]model.Appointment, error) {
			gotName = f.PatientName
			return nil, nil
		},
	}
	engine, _ := newTestRouter(ft, nil)

	doRequest(engine, "/fragments/appointments?name=Jane")
	require.NotNil(t, gotName)

	// A present-but-empty name erases the search term.
	doRequest(engine, "/fragments/appointments?name=")
	assert.Nil(t, gotName)
}

func TestReloadEmptyShowsPlaceholderRow(t *testing.T) {
	ft := &fakeTransport{
		apptsFn: func(context.Context, model.ScheduleFilter, string) ([]model.Appointment, error) {
			return nil, nil
		},
	}
	engine, _ := newTestRouter(ft, nil)

	w := doRequest(engine, "/fragments/appointments")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No Appointments found for today.")
	assert.Contains(t, w.Body.String(), `colspan="4"`)
}

func TestTodayResetsSelectionAndSyncsPicker(t *testing.T) {
	var gotDate string
	ft := &fakeTransport{
		apptsFn: func(_ context.Context, f model.ScheduleFilter, _ string) ([]model.Appointment, error) {
			gotDate = f.Date
			return nil, nil
		},
	}
	engine, reg := newTestRouter(ft, nil)

	// Move the selection off today first.
	doRequest(engine, "/fragments/appointments?date=2024-01-01")
	require.Equal(t, "2024-01-01", gotDate)

	w := doRequest(engine, "/fragments/appointments/today")

	today := model.Today(nil)
	assert.Equal(t, today, gotDate)
	assert.Equal(t, today, reg.Get("test-sid").Schedule.SelectedDate())
	// The date picker is swapped out-of-band to reflect the reset.
	assert.Contains(t, w.Body.String(), `id="datePicker"`)
	assert.Contains(t, w.Body.String(), `value="`+today+`"`)
	assert.Contains(t, w.Body.String(), `hx-swap-oob="true"`)
}

func TestPageNeverEchoesInjectedDateMarkup(t *testing.T) {
	ft := &fakeTransport{
		apptsFn: func(context.Context, model.ScheduleFilter, string) ([]model.Appointment, error) {
			return nil, nil
		},
	}
	engine, reg := newTestRouter(ft, nil)

	// A crafted date-picker value must neither survive as the selection nor
	// reach the page shell unescaped.
	doRequest(engine, "/fragments/appointments?date=%22%3E%3Cscript%3Ealert(1)%3C%2Fscript%3E")
	assert.Equal(t, model.Today(nil), reg.Get("test-sid").Schedule.SelectedDate())

	w := doRequest(engine, "/appointments")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
	assert.Contains(t, w.Body.String(), `value="`+model.Today(nil)+`"`)
}

func TestPageRendersTableAndLoadsOnce(t *testing.T) {
	loads := 0
	layoutCalls := 0
	ft := &fakeTransport{
		apptsFn: func(context.Context, model.ScheduleFilter, string) ([]model.Appointment, error) {
			loads++
			return []model.Appointment{{ID: "12", Name: "Jane Roe"}}, nil
		},
	}
	engine, _ := newTestRouter(ft, func(*gin.Context) { layoutCalls++ })

	w := doRequest(engine, "/appointments")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, loads)
	assert.Equal(t, 1, layoutCalls)
	assert.Contains(t, w.Body.String(), "patientTableBody")
	assert.Contains(t, w.Body.String(), "Jane Roe")
	assert.Contains(t, w.Body.String(), `value="`+model.Today(nil)+`"`)
}
