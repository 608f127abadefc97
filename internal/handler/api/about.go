package api

import (
	"net/http"

	resdto "room-booking/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
)

var about = resdto.AboutResponse{
	Name:        "Réservation de salles",
	Description: "Consultez les salles disponibles, filtrez-les par capacité et équipement, puis réservez un créneau.",
	Features: []string{
		"Catalogue de salles filtrable",
		"Réservation par créneau horaire",
		"Planning journalier",
		"Annulation des réservations",
	},
}

// @Summary About
// @Tags about
// @Produce json
// @Success 200 {object} resdto.AboutResponse
// @Router /api/about [get]
func About(c *gin.Context) {
	c.JSON(http.StatusOK, about)
}
