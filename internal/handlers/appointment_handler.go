package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateAppointment
	update       *ucAppointment.UpdateAppointment
	remove       *ucAppointment.DeleteAppointment
	list         *ucAppointment.ListAppointments
	show         *ucAppointment.GetAppointment
}

func NewAppointmentHandler(
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	remove *ucAppointment.DeleteAppointment,
	list *ucAppointment.ListAppointments,
	show *ucAppointment.GetAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		availability: availability,
		create:       create,
		update:       update,
		remove:       remove,
		list:         list,
		show:         show,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Date        string `json:"date" binding:"required,isodate"`
	Time        string `json:"time" binding:"required,hhmm"`
	BarberID    uint   `json:"barbero_id" binding:"required,gt=0"`
	ServiceType string `json:"service_type" binding:"required,service_type"`
	Notes       string `json:"notes" binding:"max=500"`
}

type UpdateAppointmentRequest struct {
	Date        *string `json:"date" binding:"omitempty,isodate"`
	Time        *string `json:"time" binding:"omitempty,hhmm"`
	BarberID    *uint   `json:"barbero_id" binding:"omitempty,gt=0"`
	ServiceType *string `json:"service_type" binding:"omitempty,service_type"`
	Notes       *string `json:"notes" binding:"omitempty,max=500"`
	Status      *string `json:"status" binding:"omitempty,appointment_status"`

	// ClearNotes is set by an explicit "notes": null.
	ClearNotes bool `json:"-"`
}

func (r *UpdateAppointmentRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateAppointmentRequest
	var raw struct {
		plain
		Notes json.RawMessage `json:"notes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = UpdateAppointmentRequest(raw.plain)
	r.Notes = nil
	switch {
	case raw.Notes == nil:
	case bytes.Equal(raw.Notes, []byte("null")):
		r.ClearNotes = true
	default:
		var s string
		if err := json.Unmarshal(raw.Notes, &s); err != nil {
			return err
		}
		r.Notes = &s
	}
	return nil
}

// notes maps an explicit null to an empty string; absent stays nil.
func (r UpdateAppointmentRequest) notes() *string {
	if r.ClearNotes {
		empty := ""
		return &empty
	}
	return r.Notes
}

// ======================================================
// SLOTS (public)
// ======================================================

func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	barberID, err := queryUint(c, "barbero_id")
	if err != nil {
		httperr.Respond(c, httperr.ValidationField("barbero_id", "El barbero_id seleccionado es inválido."))
		return
	}

	res, err := h.availability.Execute(c.Request.Context(), ucAppointment.GetAvailabilityInput{
		Date:     c.Query("date"),
		BarberID: barberID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	apps, err := h.list.Execute(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"appointments": apps})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	user := middleware.CurrentUser(c)
	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID:      user.ID,
		Date:        req.Date,
		Time:        req.Time,
		BarberID:    req.BarberID,
		ServiceType: req.ServiceType,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Cita creada exitosamente", gin.H{"appointment": ap})
}

// ======================================================
// SHOW
// ======================================================

func (h *AppointmentHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.show.Execute(c.Request.Context(), middleware.CurrentUser(c).ID, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"appointment": ap})
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), middleware.CurrentUser(c), id, ucAppointment.UpdateAppointmentInput{
		Date:        req.Date,
		Time:        req.Time,
		BarberID:    req.BarberID,
		ServiceType: req.ServiceType,
		Notes:       req.notes(),
		Status:      req.Status,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	data := gin.H{"appointment": ap}
	if ap.User != nil {
		data["user"] = gin.H{"points": ap.User.Points}
	}
	httpresp.OKMessage(c, "Cita actualizada exitosamente", data)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if _, err := h.remove.Execute(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Cita eliminada exitosamente")
}
