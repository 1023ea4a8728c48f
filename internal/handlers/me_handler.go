package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/loyalty"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetMe returns the authenticated user, role flags included.
func (h *MeHandler) GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	httpresp.OK(c, gin.H{
		"user": user,
		"role": user.Role(),
	})
}

func (h *MeHandler) Points(c *gin.Context) {
	user := middleware.CurrentUser(c)
	httpresp.OK(c, gin.H{
		"points":               user.Points,
		"can_get_free_haircut": loyalty.CanRedeemFreeHaircut(user.Points),
	})
}
