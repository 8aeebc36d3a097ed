package schedule

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinic-portal/internal/handler"
	"github.com/jwalitptl/clinic-portal/internal/middleware"
	"github.com/jwalitptl/clinic-portal/internal/registry"
	"github.com/jwalitptl/clinic-portal/internal/session"
	"github.com/jwalitptl/clinic-portal/internal/view"
)

// LayoutFunc is the optional page-layout collaborator invoked on initial
// attachment. Nil means no layout setup is installed, which is not an
// error.
type LayoutFunc func(c *gin.Context)

// Handler wires the appointment-table fragment endpoints to the
// per-session schedule controller.
type Handler struct {
	registry *registry.Registry
	sessions session.Store
	layout   LayoutFunc
	logger   zerolog.Logger
}

func NewHandler(reg *registry.Registry, sessions session.Store, layout LayoutFunc, logger zerolog.Logger) *Handler {
	return &Handler{
		registry: reg,
		sessions: sessions,
		layout:   layout,
		logger:   logger.With().Str("handler", "schedule").Logger(),
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/appointments", h.page)

	appts := r.Group("/fragments/appointments")
	{
		appts.GET("", h.reload)
		appts.GET("/today", h.today)
	}
}

func (h *Handler) session(c *gin.Context) (*registry.Session, string) {
	sid := middleware.SessionID(c)
	return h.registry.Get(sid), sid
}

func (h *Handler) token(c *gin.Context, sid string) string {
	token, err := h.sessions.Token(c.Request.Context(), sid)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to read session token")
		return ""
	}
	return token
}

// reload applies whichever filter input fired (search keystroke sends
// name, the date picker sends date) and reloads the table.
func (h *Handler) reload(c *gin.Context) {
	sess, sid := h.session(c)

	if date := c.Query("date"); date != "" {
		sess.Schedule.SetDate(date)
	}
	if name, ok := c.GetQuery("name"); ok {
		sess.Schedule.SetPatientName(name)
	}

	sess.Schedule.Load(c.Request.Context(), h.token(c, sid))
	handler.HTML(c, http.StatusOK, sess.Schedule.HTML())
}

// today resets the selection to the current date, reflects it into the
// date-picker element, and reloads.
func (h *Handler) today(c *gin.Context) {
	sess, sid := h.session(c)

	date := sess.Schedule.ResetToToday()
	sess.Schedule.Load(c.Request.Context(), h.token(c, sid))

	picker := view.Elem("input").
		SetAttr("type", "date").
		SetAttr("id", "datePicker").
		SetAttr("name", "date").
		SetAttr("value", date).
		SetAttr("hx-get", "/fragments/appointments").
		SetAttr("hx-trigger", "change").
		SetAttr("hx-target", "#patientTableBody").
		SetAttr("hx-swap-oob", "true")

	handler.HTML(c, http.StatusOK, sess.Schedule.HTML(), picker)
}

const schedulePage = `<!DOCTYPE html>
<html>
<head>
  <title>Clinic Portal - Appointments</title>
  <script src="/static/htmx.min.js"></script>
</head>
<body>
  <div id="flash" class="flash"></div>
  <header class="dashboard-header">
    <input id="searchBar" name="name" type="text" placeholder="Search by patient name"
      hx-get="/fragments/appointments" hx-trigger="input"
      hx-target="#patientTableBody"/>
    <button id="todayButton"
      hx-get="/fragments/appointments/today"
      hx-target="#patientTableBody">Today's Appointments</button>
    <input id="datePicker" name="date" type="date" value="%s"
      hx-get="/fragments/appointments" hx-trigger="change"
      hx-target="#patientTableBody"/>
  </header>
  <table class="patient-table">
    <thead>
      <tr><th>ID</th><th>Name</th><th>Phone</th><th>Email</th></tr>
    </thead>
    <tbody id="patientTableBody">%s</tbody>
  </table>
</body>
</html>`

// page performs the initial attachment: optional layout setup, date-picker
// synchronized to the selected date, and exactly one load.
func (h *Handler) page(c *gin.Context) {
	if h.layout != nil {
		h.layout(c)
	}

	sess, sid := h.session(c)
	sess.Schedule.Load(c.Request.Context(), h.token(c, sid))

	body := fmt.Sprintf(schedulePage, html.EscapeString(sess.Schedule.SelectedDate()), sess.Schedule.HTML())
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
}
