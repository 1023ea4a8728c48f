package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/notification"
)

type NotificationHandler struct {
	notifier *notification.Notifier
}

func NewNotificationHandler(notifier *notification.Notifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

type MarkReadRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// --------- Staff feed ---------

func (h *NotificationHandler) List(c *gin.Context) {
	h.staffFeed(c, false)
}

func (h *NotificationHandler) Unread(c *gin.Context) {
	h.staffFeed(c, true)
}

func (h *NotificationHandler) staffFeed(c *gin.Context, unreadOnly bool) {
	rows, err := h.notifier.ListForStaff(c.Request.Context(), unreadOnly)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"notifications": rows,
		"count":         len(rows),
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req MarkReadRequest
	if !bindJSON(c, &req) {
		return
	}

	n, err := h.notifier.MarkRead(c.Request.Context(), req.IDs)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKMessage(c, "Notificaciones marcadas como leídas", gin.H{"updated": n})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	n, err := h.notifier.MarkAllRead(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKMessage(c, "Todas las notificaciones marcadas como leídas", gin.H{"updated": n})
}

// --------- Personal feed ---------

func (h *NotificationHandler) Mine(c *gin.Context) {
	rows, err := h.notifier.ListForUser(c.Request.Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"notifications": rows})
}

func (h *NotificationHandler) MarkMineRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.notifier.MarkUserRead(c.Request.Context(), middleware.CurrentUser(c).ID, id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Notificación marcada como leída")
}
