package api

import (
	"context"
	"net/http"

	"room-booking/internal/domain/contact"
	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// Non-standard status used by nginx for a client that went away mid-request.
const statusClientClosedRequest = 499

type ContactHandler struct {
	cmds commands.ContactCommands
}

func NewContactHandler(cmds commands.ContactCommands) *ContactHandler {
	return &ContactHandler{cmds: cmds}
}

// @Summary Send a contact message
// @Description Every invalid field is reported in detail, keyed by field name
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Contact form"
// @Success 202 {object} resdto.ContactResponse
// @Failure 400 {object} httperr.Response
// @Router /api/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	receipt, err := h.cmds.Submit(c.Request.Context(), req)
	if err != nil {
		var fieldErrs contact.FieldErrors
		switch {
		case errs.As(err, &fieldErrs):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid contact form", fieldErrs)
		case errs.Is(err, context.Canceled):
			httperr.AbortWithError(c, statusClientClosedRequest, err, "Request cancelled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusAccepted, resdto.ContactResponse{
		ID:         receipt.ID,
		ReceivedAt: receipt.ReceivedAt,
		Message:    "Votre message a bien été envoyé",
	})
}
