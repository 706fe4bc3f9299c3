package controllers

import (
	"log"
	"net/http"
	"time"

	"hotel-reservations/services"
	"hotel-reservations/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	revenue *services.RevenueService
}

func NewReportController(revenue *services.RevenueService) *ReportController {
	return &ReportController{revenue: revenue}
}

// GetRevenueReport returns per-room monthly revenue for the current year.
// Store failure degrades to an empty report.
func (rc *ReportController) GetRevenueReport(c *gin.Context) {
	report, err := rc.revenue.GenerateReport(time.Now())
	if err != nil {
		log.Printf("❌ GenerateReport failed: %v", err)
		utils.JSONSuccess(c, http.StatusOK, []services.RoomRevenue{})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}
