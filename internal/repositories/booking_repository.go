package repositories

import (
	"database/sql"
	"strings"

	"wearecars/internal/domain"
	"wearecars/internal/domain/models"
	"wearecars/internal/utils"
)

// BookingRepository wraps raw access to the bookings table. Bookings are
// written once at wizard confirmation and never mutated by this service.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	return sharedDB(r.DB)
}

const summaryColumns = `id, customer_name, car_type, fuel_type, days, total_cost,
	       booking_date, start_date, end_date, COALESCE(status,'Active')`

// Create inserts a booking and returns its fresh surrogate id. The end date is
// derived here from start date plus rental length; status defaults to Active.
func (r BookingRepository) Create(q Execer, b models.Booking) (int64, error) {
	if q == nil {
		q = r.db()
	}
	endDate, err := utils.AddDays(b.StartDate, b.Days)
	if err != nil {
		return 0, domain.ValidationError{Field: "start_date", Msg: "start date must be YYYY-MM-DD", Err: err}
	}
	status := b.Status
	if status == "" {
		status = domain.StatusActive
	}
	bookingDate := b.BookingDate
	if bookingDate == "" {
		bookingDate = utils.FormatDateTime(utils.NowUTC())
	}

	res, err := q.Exec(
		`INSERT INTO bookings (customer_id, customer_name, car_type, fuel_type, days,
			unlimited_mileage, breakdown_cover, base_cost, car_surcharge,
			fuel_surcharge, extras_cost, total_cost, booking_date,
			start_date, end_date, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.CustomerID, b.CustomerName, b.CarType, b.FuelType, b.Days,
		boolToInt(b.UnlimitedMileage), boolToInt(b.BreakdownCover), b.BaseCost, b.CarSurcharge,
		b.FuelSurcharge, b.ExtrasCost, b.TotalCost, bookingDate,
		b.StartDate, endDate, status,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID loads a full booking row.
func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	var b models.Booking
	var mileage, cover int
	err := r.db().QueryRow(
		`SELECT id, customer_id, customer_name, car_type, fuel_type, days,
			COALESCE(unlimited_mileage,0), COALESCE(breakdown_cover,0),
			base_cost, car_surcharge, fuel_surcharge, extras_cost, total_cost,
			booking_date, start_date, end_date, COALESCE(status,'Active')
		 FROM bookings WHERE id=? LIMIT 1`, id,
	).Scan(
		&b.ID, &b.CustomerID, &b.CustomerName, &b.CarType, &b.FuelType, &b.Days,
		&mileage, &cover,
		&b.BaseCost, &b.CarSurcharge, &b.FuelSurcharge, &b.ExtrasCost, &b.TotalCost,
		&b.BookingDate, &b.StartDate, &b.EndDate, &b.Status,
	)
	if err != nil {
		return models.Booking{}, err
	}
	b.UnlimitedMileage = mileage != 0
	b.BreakdownCover = cover != 0
	return b, nil
}

// List returns every booking, newest id first.
func (r BookingRepository) List() ([]models.BookingSummary, error) {
	rows, err := r.db().Query(
		`SELECT ` + summaryColumns + `
		 FROM bookings
		 ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

// Search filters by case-insensitive customer name substring or by booking id
// substring. An empty term behaves exactly like List.
func (r BookingRepository) Search(term string) ([]models.BookingSummary, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return r.List()
	}
	like := "%" + strings.ToLower(term) + "%"
	rows, err := r.db().Query(
		`SELECT `+summaryColumns+`
		 FROM bookings
		 WHERE LOWER(customer_name) LIKE ? OR CAST(id AS TEXT) LIKE ?
		 ORDER BY id DESC`, like, "%"+term+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

func scanSummaries(rows *sql.Rows) ([]models.BookingSummary, error) {
	out := []models.BookingSummary{}
	for rows.Next() {
		var s models.BookingSummary
		if err := rows.Scan(
			&s.ID, &s.CustomerName, &s.CarType, &s.FuelType, &s.Days, &s.TotalCost,
			&s.BookingDate, &s.StartDate, &s.EndDate, &s.Status,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Stats aggregates the dashboard numbers. Popularity ties break on car type
// name ascending so the result is deterministic.
func (r BookingRepository) Stats() (models.BookingStats, error) {
	db := r.db()
	var stats models.BookingStats

	if err := db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(total_cost),0) FROM bookings`).
		Scan(&stats.TotalBookings, &stats.TotalRevenue); err != nil {
		return stats, err
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM bookings WHERE status='Active'`).
		Scan(&stats.ActiveBookings); err != nil {
		return stats, err
	}

	err := db.QueryRow(
		`SELECT car_type
		 FROM bookings
		 GROUP BY car_type
		 ORDER BY COUNT(*) DESC, car_type ASC
		 LIMIT 1`).Scan(&stats.PopularCarType)
	if err == sql.ErrNoRows {
		stats.PopularCarType = "N/A"
		return stats, nil
	}
	if err != nil {
		return stats, err
	}
	return stats, nil
}
