package models

// Customer is written once per confirmed booking and never edited afterwards.
type Customer struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	Surname      string `json:"surname"`
	Address      string `json:"address"`
	Age          int    `json:"age"`
	LicenseValid bool   `json:"license_valid"`
	CreatedDate  string `json:"created_date"`
}

// Booking is a persisted rental. All monetary fields are integer pence.
type Booking struct {
	ID               int64  `json:"id"`
	CustomerID       int64  `json:"customer_id"`
	CustomerName     string `json:"customer_name"`
	CarType          string `json:"car_type"`
	FuelType         string `json:"fuel_type"`
	Days             int    `json:"days"`
	UnlimitedMileage bool   `json:"unlimited_mileage"`
	BreakdownCover   bool   `json:"breakdown_cover"`
	BaseCost         int64  `json:"base_cost"`
	CarSurcharge     int64  `json:"car_surcharge"`
	FuelSurcharge    int64  `json:"fuel_surcharge"`
	ExtrasCost       int64  `json:"extras_cost"`
	TotalCost        int64  `json:"total_cost"`
	BookingDate      string `json:"booking_date"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Status           string `json:"status"`
}

// BookingSummary is the row shape of the bookings viewer and CSV export.
type BookingSummary struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customer_name"`
	CarType      string `json:"car_type"`
	FuelType     string `json:"fuel_type"`
	Days         int    `json:"days"`
	TotalCost    int64  `json:"total_cost"`
	BookingDate  string `json:"booking_date"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Status       string `json:"status"`
}

// BookingStats feeds the dashboard header of the bookings viewer.
type BookingStats struct {
	TotalBookings  int    `json:"total_bookings"`
	TotalRevenue   int64  `json:"total_revenue"`
	ActiveBookings int    `json:"active_bookings"`
	PopularCarType string `json:"popular_car_type"`
}

// Car is seed/reference inventory. Pricing reads its own static tables, not
// this row; the seeder keeps the two aligned.
type Car struct {
	ID          int64  `json:"id"`
	CarType     string `json:"car_type"`
	DailyRate   int64  `json:"daily_rate"`
	Surcharge   int64  `json:"surcharge"`
	Available   bool   `json:"available"`
	Description string `json:"description"`
}
