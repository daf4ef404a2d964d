package db

import (
	"database/sql"
	"fmt"

	"wearecars/internal/domain"
	"wearecars/internal/pricing"
	"wearecars/internal/utils"
)

// EnsureSchema creates the tables the service relies on. Monetary columns
// store integer pence.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("db not available")
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name TEXT NOT NULL,
			surname TEXT NOT NULL,
			address TEXT NOT NULL,
			age INTEGER NOT NULL,
			license_valid INTEGER NOT NULL,
			created_date TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			customer_id INTEGER NOT NULL,
			customer_name TEXT NOT NULL,
			car_type TEXT NOT NULL,
			fuel_type TEXT NOT NULL,
			days INTEGER NOT NULL,
			unlimited_mileage INTEGER DEFAULT 0,
			breakdown_cover INTEGER DEFAULT 0,
			base_cost INTEGER NOT NULL,
			car_surcharge INTEGER NOT NULL,
			fuel_surcharge INTEGER NOT NULL,
			extras_cost INTEGER NOT NULL,
			total_cost INTEGER NOT NULL,
			booking_date TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			status TEXT DEFAULT 'Active',
			FOREIGN KEY (customer_id) REFERENCES customers (id)
		)`,
		`CREATE TABLE IF NOT EXISTS cars (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			car_type TEXT NOT NULL,
			daily_rate INTEGER NOT NULL,
			surcharge INTEGER NOT NULL,
			available INTEGER DEFAULT 1,
			description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'staff',
			created_at TEXT NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("schema bootstrap failed: %w", err)
		}
	}
	return nil
}

// SeedCars inserts the reference inventory once. Rates and surcharges mirror
// the static pricing tables; the pricing package never reads these rows.
func SeedCars(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM cars`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	descriptions := map[domain.CarType]string{
		domain.CarCity:   "Perfect for urban driving",
		domain.CarFamily: "Spacious and comfortable",
		domain.CarSports: "High performance vehicle",
		domain.CarSUV:    "All-terrain capability",
	}
	for _, ct := range domain.CarTypes() {
		_, err := db.Exec(
			`INSERT INTO cars (car_type, daily_rate, surcharge, available, description) VALUES (?, ?, ?, 1, ?)`,
			string(ct), pricing.BaseRatePence, pricing.CarSurcharge(ct), descriptions[ct],
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// SeedDemo inserts a deterministic set of sample customers and bookings so a
// fresh install has something to show. No-op when bookings already exist.
func SeedDemo(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM bookings`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	type sample struct {
		first, surname, address string
		age                     int
		carType                 domain.CarType
		fuelType                domain.FuelType
		days                    int
		mileage, breakdown      bool
		startOffset             int
	}
	samples := []sample{
		{"John", "Smith", "123 Main St, London", 35, domain.CarFamily, domain.FuelPetrol, 7, true, false, -3},
		{"Emma", "Johnson", "456 Park Ave, Manchester", 28, domain.CarCity, domain.FuelHybrid, 3, false, true, -6},
		{"Michael", "Brown", "789 Oak Rd, Birmingham", 42, domain.CarSUV, domain.FuelElectric, 10, false, false, -9},
	}

	now := utils.NowUTC()
	for _, s := range samples {
		res, err := db.Exec(
			`INSERT INTO customers (first_name, surname, address, age, license_valid, created_date)
			 VALUES (?, ?, ?, ?, 1, ?)`,
			s.first, s.surname, s.address, s.age, utils.FormatDateTime(now),
		)
		if err != nil {
			return err
		}
		customerID, err := res.LastInsertId()
		if err != nil {
			return err
		}

		quote := pricing.Quote(s.days, s.carType, s.fuelType, s.mileage, s.breakdown)
		start := utils.FormatDate(now.AddDate(0, 0, s.startOffset))
		end, err := utils.AddDays(start, s.days)
		if err != nil {
			return err
		}

		_, err = db.Exec(
			`INSERT INTO bookings (customer_id, customer_name, car_type, fuel_type, days,
				unlimited_mileage, breakdown_cover, base_cost, car_surcharge,
				fuel_surcharge, extras_cost, total_cost, booking_date,
				start_date, end_date, status)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			customerID, utils.DisplayName(s.first, s.surname), string(s.carType), string(s.fuelType), s.days,
			boolToInt(s.mileage), boolToInt(s.breakdown), quote.BaseCost, quote.CarSurcharge,
			quote.FuelSurcharge, quote.ExtrasCost, quote.TotalCost, utils.FormatDateTime(now),
			start, end, domain.StatusActive,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
