package handlers

import (
	"net/http"
	"strconv"

	"wearecars/internal/http/middleware"
	"wearecars/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/bookings/export
func ExportBookingsCSV(c *gin.Context) {
	svc := bookingService(c)
	exporter := services.ExportService{
		Bookings:  svc.ListBookings,
		RequestID: middleware.GetRequestID(c),
	}

	data, filename, err := exporter.ExportCSV()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// GET /api/bookings/:id/receipt
func GetBookingReceipt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid booking id", err)
		return
	}

	svc := bookingService(c)
	docs := services.DocsService{
		RequestID: middleware.GetRequestID(c),
		Loader:    svc.GetBooking,
	}

	data, filename, err := docs.GenerateReceipt(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
