package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/khazna-app/khazna_backend/internal/core/ports/services"
	"github.com/khazna-app/khazna_backend/internal/dto"
)

// advisorHandler handles HTTP requests for ledger-wide advisory commentary.
type advisorHandler struct {
	advisorService portssvc.AdvisorSvc
}

// newAdvisorHandler creates a new advisorHandler.
func newAdvisorHandler(as portssvc.AdvisorSvc) *advisorHandler {
	return &advisorHandler{
		advisorService: as,
	}
}

// registerAdvisorRoutes registers routes related to advisory commentary.
func registerAdvisorRoutes(rg *gin.RouterGroup, advisorService portssvc.AdvisorSvc) {
	h := newAdvisorHandler(advisorService)

	rg.GET("/advice", h.getAdvice)
}

// getAdvice godoc
// @Summary Get advisory commentary on the ledger
// @Description Returns commentary on the most recent transactions. The text is always displayable; upstream failures are replaced with a fixed apology
// @Tags advisor
// @Produce  json
// @Success 200 {object} dto.AdviceResponse
// @Router /advice [get]
func (h *advisorHandler) getAdvice(c *gin.Context) {
	advice := h.advisorService.FinancialAdvice(c.Request.Context())
	c.JSON(http.StatusOK, dto.AdviceResponse{Advice: advice})
}
