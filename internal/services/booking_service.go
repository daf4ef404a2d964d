package services

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "wearecars/internal/config"
	"wearecars/internal/domain"
	"wearecars/internal/domain/models"
	"wearecars/internal/pricing"
	"wearecars/internal/repositories"
	"wearecars/internal/utils"
	"wearecars/internal/wizard"
)

// BookingService owns the confirm sequence and the viewer reads. Confirm
// writes the customer and the booking inside one transaction so a failed
// booking insert never leaves an orphaned customer row.
type BookingService struct {
	CustomerRepo repositories.CustomerRepository
	BookingRepo  repositories.BookingRepository
	DB           *sql.DB
	RequestID    string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) customers() repositories.CustomerRepository {
	if s.CustomerRepo.DB != nil {
		return s.CustomerRepo
	}
	return repositories.CustomerRepository{DB: s.db()}
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s BookingService) validateDraft(d wizard.Draft) error {
	if err := d.ValidateCustomer(); err != nil {
		return err
	}
	if d.Age < domain.MinCustomerAge || d.Age > domain.MaxCustomerAge {
		return domain.ValidationError{Field: "age", Msg: "age must be between 18 and 100"}
	}
	if d.Days < domain.MinRentalDays || d.Days > domain.MaxRentalDays {
		return domain.ValidationError{Field: "days", Msg: "rental length must be between 1 and 28 days"}
	}
	if !domain.ValidCarType(string(d.CarType)) {
		return domain.ValidationError{Field: "car_type", Msg: "unknown car type"}
	}
	if !domain.ValidFuelType(string(d.FuelType)) {
		return domain.ValidationError{Field: "fuel_type", Msg: "unknown fuel type"}
	}
	return nil
}

// ConfirmBooking persists a finished draft and returns the new customer and
// booking ids. Implements wizard.Store.
func (s BookingService) ConfirmBooking(d wizard.Draft, startDate string) (int64, int64, error) {
	if err := s.validateDraft(d); err != nil {
		return 0, 0, err
	}
	if _, err := utils.ParseDate(startDate); err != nil {
		return 0, 0, domain.ValidationError{Field: "start_date", Msg: "start date must be YYYY-MM-DD", Err: err}
	}

	db := s.db()
	if db == nil {
		return 0, 0, domain.UnavailableError{Msg: "store unavailable"}
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, 0, domain.UnavailableError{Msg: "store unavailable", Err: err}
	}

	customerID, err := s.customers().Create(tx, d.FirstName, d.Surname, d.Address, d.Age, d.LicenseValid)
	if err != nil {
		_ = tx.Rollback()
		return 0, 0, classifyStoreError(err)
	}

	quote := d.Quote()
	bookingID, err := s.bookings().Create(tx, models.Booking{
		CustomerID:       customerID,
		CustomerName:     utils.DisplayName(d.FirstName, d.Surname),
		CarType:          string(d.CarType),
		FuelType:         string(d.FuelType),
		Days:             d.Days,
		UnlimitedMileage: d.UnlimitedMileage,
		BreakdownCover:   d.BreakdownCover,
		BaseCost:         quote.BaseCost,
		CarSurcharge:     quote.CarSurcharge,
		FuelSurcharge:    quote.FuelSurcharge,
		ExtrasCost:       quote.ExtrasCost,
		TotalCost:        quote.TotalCost,
		StartDate:        startDate,
	})
	if err != nil {
		_ = tx.Rollback()
		return 0, 0, classifyStoreError(err)
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, domain.UnavailableError{Msg: "store unavailable", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "confirm",
		fmt.Sprintf("booking_id=%d customer_id=%d total=%s", bookingID, customerID, utils.FormatPence(quote.TotalCost)))
	return customerID, bookingID, nil
}

// Quote prices a draft without touching the store.
func (s BookingService) Quote(d wizard.Draft) (pricing.Breakdown, error) {
	if d.Days < domain.MinRentalDays || d.Days > domain.MaxRentalDays {
		return pricing.Breakdown{}, domain.ValidationError{Field: "days", Msg: "rental length must be between 1 and 28 days"}
	}
	if !domain.ValidCarType(string(d.CarType)) {
		return pricing.Breakdown{}, domain.ValidationError{Field: "car_type", Msg: "unknown car type"}
	}
	if !domain.ValidFuelType(string(d.FuelType)) {
		return pricing.Breakdown{}, domain.ValidationError{Field: "fuel_type", Msg: "unknown fuel type"}
	}
	return d.Quote(), nil
}

// ListBookings returns all bookings, newest id first.
func (s BookingService) ListBookings() ([]models.BookingSummary, error) {
	out, err := s.bookings().List()
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return out, nil
}

// SearchBookings filters by name or id substring; empty term lists everything.
func (s BookingService) SearchBookings(term string) ([]models.BookingSummary, error) {
	out, err := s.bookings().Search(term)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return out, nil
}

// GetBooking loads a single booking for the detail view.
func (s BookingService) GetBooking(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "invalid booking id"}
	}
	b, err := s.bookings().GetByID(id)
	if err == sql.ErrNoRows {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return models.Booking{}, classifyStoreError(err)
	}
	return b, nil
}

// Stats aggregates the dashboard numbers.
func (s BookingService) Stats() (models.BookingStats, error) {
	stats, err := s.bookings().Stats()
	if err != nil {
		return models.BookingStats{}, classifyStoreError(err)
	}
	return stats, nil
}

// classifyStoreError keeps validation errors intact, maps SQLite foreign key
// failures to a referential violation, and treats everything else as the store
// being unreachable.
func classifyStoreError(err error) error {
	if err == nil {
		return nil
	}
	if domain.IsValidation(err) || domain.IsNotFound(err) {
		return err
	}
	if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return domain.ReferentialError{Resource: "customer", Err: err}
	}
	return domain.UnavailableError{Msg: "store unavailable", Err: err}
}
