package directory

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinic-portal/internal/backend"
	"github.com/jwalitptl/clinic-portal/internal/handler"
	"github.com/jwalitptl/clinic-portal/internal/middleware"
	"github.com/jwalitptl/clinic-portal/internal/model"
	"github.com/jwalitptl/clinic-portal/internal/mutation"
	"github.com/jwalitptl/clinic-portal/internal/registry"
	"github.com/jwalitptl/clinic-portal/internal/session"
	"github.com/jwalitptl/clinic-portal/internal/view"
)

// BookingOverlay is the external overlay collaborator. Open returns the
// fragment to ship; the core neither tracks nor awaits it.
type BookingOverlay interface {
	Open(trigger view.Trigger, doctor model.Doctor, patient *model.Patient) *view.Node
}

// Handler wires the directory's fragment endpoints to the per-session
// controllers. Role and token are read fresh from the session store at
// every operation.
type Handler struct {
	registry  *registry.Registry
	sessions  session.Store
	transport backend.Transport
	overlay   BookingOverlay
	logger    zerolog.Logger
}

func NewHandler(reg *registry.Registry, sessions session.Store, transport backend.Transport, overlay BookingOverlay, logger zerolog.Logger) *Handler {
	return &Handler{
		registry:  reg,
		sessions:  sessions,
		transport: transport,
		overlay:   overlay,
		logger:    logger.With().Str("handler", "directory").Logger(),
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.page)

	doctors := r.Group("/fragments/doctors")
	{
		doctors.GET("", h.list)
		doctors.GET("/filter", h.filter)
		doctors.POST("", h.create)
		doctors.DELETE("/:id", h.deleteDoctor)
		doctors.POST("/:id/book", h.book)
	}
}

func (h *Handler) session(c *gin.Context) (*registry.Session, string) {
	sid := middleware.SessionID(c)
	return h.registry.Get(sid), sid
}

func (h *Handler) role(c *gin.Context, sid string) model.Role {
	role, err := h.sessions.Role(c.Request.Context(), sid)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to resolve viewer role")
		return model.RoleUnknown
	}
	return role
}

func (h *Handler) token(c *gin.Context, sid string) string {
	token, err := h.sessions.Token(c.Request.Context(), sid)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to read session token")
		return ""
	}
	return token
}

// list performs the initial unfiltered load. A failed fetch leaves the
// container as it was and surfaces nothing to the user.
func (h *Handler) list(c *gin.Context) {
	sess, sid := h.session(c)
	role := h.role(c, sid)

	sess.Directory.LoadAll(c.Request.Context(), role)
	handler.HTML(c, http.StatusOK, sess.Directory.HTML())
}

// filter re-reads the three filter inputs and re-renders the card list.
func (h *Handler) filter(c *gin.Context) {
	sess, sid := h.session(c)
	role := h.role(c, sid)

	flash := sess.Directory.FilterChange(
		c.Request.Context(),
		role,
		c.Query("name"),
		c.Query("time"),
		c.Query("specialty"),
	)
	handler.HTML(c, http.StatusOK, sess.Directory.HTML(), flash)
}

// create handles the add-doctor form submission.
func (h *Handler) create(c *gin.Context) {
	var form mutation.DoctorForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	sess, sid := h.session(c)
	role := h.role(c, sid)
	token := h.token(c, sid)

	flash := sess.Dispatcher.AddDoctor(c.Request.Context(), form, token, role)
	handler.HTML(c, http.StatusOK, sess.Directory.HTML(), flash, sess.Modal.Node(mutation.AddDoctorModal))
}

// deleteDoctor is the admin card action. The confirmation happened on the
// client; a declined confirm never produces this request. The token is
// read directly with no pre-check, so an absent token simply rides along
// empty and the failure path is the only observable effect.
func (h *Handler) deleteDoctor(c *gin.Context) {
	sess, sid := h.session(c)
	if h.role(c, sid) != model.RoleAdmin {
		c.JSON(http.StatusForbidden, handler.NewErrorResponse("admin role required"))
		return
	}

	id := model.ID(c.Param("id"))
	token := h.token(c, sid)

	result := h.transport.DeleteDoctor(c.Request.Context(), id, token)
	switch {
	case result.OK:
		// Local removal only; the rest of the card list is not re-fetched.
		sess.Directory.RemoveDoctor(id)
		handler.Fragment(c, http.StatusOK, view.Flash(view.FlashSuccess, "Doctor deleted successfully."))

	case result.IsTransportFailure():
		h.logger.Error().Err(result.Err).Str("doctor_id", id.String()).Msg("doctor delete failed")
		handler.Fragment(c, http.StatusBadGateway, view.Flash(view.FlashError, "An error occurred while trying to delete the doctor."))

	default:
		handler.Fragment(c, http.StatusConflict, view.Flash(view.FlashError, "Failed to delete doctor."))
	}
}

// book is the patient card action, dispatched on the viewer role read at
// click time.
func (h *Handler) book(c *gin.Context) {
	sess, sid := h.session(c)
	id := model.ID(c.Param("id"))

	switch h.role(c, sid) {
	case model.RoleAnonymousPatient:
		// Short-circuits before any backend call.
		handler.Fragment(c, http.StatusOK, view.Flash(view.FlashInfo, "Please log in to book an appointment."))

	case model.RoleAuthenticatedPatient:
		token := h.token(c, sid)
		patient, err := h.transport.FetchPatientProfile(c.Request.Context(), token)
		if err != nil {
			h.logger.Error().Err(err).Msg("booking failed")
			handler.Fragment(c, http.StatusBadGateway, view.Flash(view.FlashError, "Unable to book appointment. Please try again."))
			return
		}
		doctor, ok := sess.Directory.Doctor(id)
		if !ok {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("doctor not found"))
			return
		}
		trigger := view.Trigger{Source: c.GetHeader("HX-Trigger")}
		overlay := h.overlay.Open(trigger, doctor, patient)
		handler.Fragment(c, http.StatusOK, overlay, view.EmptyFlash())

	default:
		c.Status(http.StatusNoContent)
	}
}
