package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"wearecars/internal/domain"
	"wearecars/internal/http/middleware"
	"wearecars/internal/repositories"
	"wearecars/internal/services"
	"wearecars/internal/utils"
	"wearecars/internal/wizard"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/bookings?q=term
func GetBookings(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	svc := bookingService(c)

	rows, err := svc.SearchBookings(term)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, b := range rows {
		out = append(out, gin.H{
			"id":            b.ID,
			"customer_name": b.CustomerName,
			"car_type":      b.CarType,
			"fuel_type":     b.FuelType,
			"days":          b.Days,
			"total_cost":    utils.FormatPence(b.TotalCost),
			"booking_date":  b.BookingDate,
			"start_date":    b.StartDate,
			"end_date":      b.EndDate,
			"status":        b.Status,
		})
	}
	c.JSON(http.StatusOK, gin.H{"bookings": out, "count": len(out)})
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid booking id", err)
		return
	}

	b, err := bookingService(c).GetBooking(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":    b,
		"total_cost": utils.FormatPounds(b.TotalCost),
	})
}

// GET /api/stats
func GetBookingStats(c *gin.Context) {
	stats, err := bookingService(c).Stats()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total_bookings":   stats.TotalBookings,
		"total_revenue":    utils.FormatPence(stats.TotalRevenue),
		"active_bookings":  stats.ActiveBookings,
		"popular_car_type": stats.PopularCarType,
	})
}

// GET /api/cars
func GetCars(c *gin.Context) {
	repo := repositories.CarRepository{}
	cars, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusServiceUnavailable, "failed to load car inventory", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cars": cars})
}

type quoteRequest struct {
	Days             int    `json:"days"`
	CarType          string `json:"car_type"`
	FuelType         string `json:"fuel_type"`
	UnlimitedMileage bool   `json:"unlimited_mileage"`
	BreakdownCover   bool   `json:"breakdown_cover"`
}

// POST /api/bookings/quote
func QuoteBooking(c *gin.Context) {
	var req quoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	d := wizard.DefaultDraft()
	d.Days = req.Days
	d.CarType = domain.CarType(strings.TrimSpace(req.CarType))
	d.FuelType = domain.FuelType(strings.TrimSpace(req.FuelType))
	d.UnlimitedMileage = req.UnlimitedMileage
	d.BreakdownCover = req.BreakdownCover

	quote, err := bookingService(c).Quote(d)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"breakdown": quote,
		"total":     utils.FormatPounds(quote.TotalCost),
	})
}

type createBookingRequest struct {
	FirstName        string `json:"first_name"`
	Surname          string `json:"surname"`
	Address          string `json:"address"`
	Age              int    `json:"age"`
	LicenseValid     bool   `json:"license_valid"`
	Days             int    `json:"days"`
	CarType          string `json:"car_type"`
	FuelType         string `json:"fuel_type"`
	UnlimitedMileage bool   `json:"unlimited_mileage"`
	BreakdownCover   bool   `json:"breakdown_cover"`
	StartDate        string `json:"start_date"`
}

// POST /api/bookings creates a booking in one call, skipping the wizard. The
// same validation and transactional confirm apply.
func CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	d := wizard.Draft{
		FirstName:        req.FirstName,
		Surname:          req.Surname,
		Address:          req.Address,
		Age:              req.Age,
		LicenseValid:     req.LicenseValid,
		Days:             req.Days,
		CarType:          domain.CarType(strings.TrimSpace(req.CarType)),
		FuelType:         domain.FuelType(strings.TrimSpace(req.FuelType)),
		UnlimitedMileage: req.UnlimitedMileage,
		BreakdownCover:   req.BreakdownCover,
	}
	startDate := strings.TrimSpace(req.StartDate)
	if startDate == "" {
		startDate = utils.FormatDate(utils.NowUTC())
	}

	svc := bookingService(c)
	customerID, bookingID, err := svc.ConfirmBooking(d, startDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	quote := d.Quote()
	c.JSON(http.StatusCreated, gin.H{
		"booking_id":  bookingID,
		"customer_id": customerID,
		"start_date":  startDate,
		"total_cost":  utils.FormatPounds(quote.TotalCost),
	})
}
