package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucBarber "github.com/BruksfildServices01/barber-booking/internal/usecase/barber"
)

type BarberHandler struct {
	list   *ucBarber.ListBarbers
	create *ucBarber.CreateBarber
	upload *ucBarber.UploadBarberImage
}

func NewBarberHandler(
	list *ucBarber.ListBarbers,
	create *ucBarber.CreateBarber,
	upload *ucBarber.UploadBarberImage,
) *BarberHandler {
	return &BarberHandler{list: list, create: create, upload: upload}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	ImageURL string `json:"image_url" binding:"omitempty,max=500"`
}

// --------- Handlers ---------

func (h *BarberHandler) Available(c *gin.Context) {
	barbers, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"barberos": barbers})
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.create.Execute(c.Request.Context(), middleware.CurrentUser(c).ID, ucBarber.CreateBarberInput{
		Name:     req.Name,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Barbero creado exitosamente", gin.H{"barbero": b})
}

// UploadImage takes a multipart "image" field.
func (h *BarberHandler) UploadImage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.Respond(c, httperr.ValidationField("image", "El campo image es obligatorio."))
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer f.Close()

	b, err := h.upload.Execute(c.Request.Context(), middleware.CurrentUser(c).ID, id, f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKMessage(c, "Imagen actualizada exitosamente", gin.H{"barbero": b})
}
