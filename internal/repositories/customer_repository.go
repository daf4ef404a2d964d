package repositories

import (
	"database/sql"

	"wearecars/internal/domain/models"
	"wearecars/internal/utils"
)

// CustomerRepository wraps raw access to the customers table. Customers are
// written once per confirmed booking; there are no update or delete paths.
type CustomerRepository struct {
	DB *sql.DB
}

func (r CustomerRepository) db() *sql.DB {
	return sharedDB(r.DB)
}

// Create inserts a customer and returns its fresh surrogate id. The q
// parameter is the shared connection or the confirm transaction.
func (r CustomerRepository) Create(q Execer, first, surname, address string, age int, licenseValid bool) (int64, error) {
	if q == nil {
		q = r.db()
	}
	res, err := q.Exec(
		`INSERT INTO customers (first_name, surname, address, age, license_valid, created_date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		utils.TrimOrEmpty(first), utils.TrimOrEmpty(surname), utils.TrimOrEmpty(address),
		age, boolToInt(licenseValid), utils.FormatDateTime(utils.NowUTC()),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByID loads one customer row.
func (r CustomerRepository) GetByID(id int64) (models.Customer, error) {
	var c models.Customer
	var license int
	err := r.db().QueryRow(
		`SELECT id, first_name, surname, address, age, license_valid, COALESCE(created_date,'')
		 FROM customers WHERE id=? LIMIT 1`, id,
	).Scan(&c.ID, &c.FirstName, &c.Surname, &c.Address, &c.Age, &license, &c.CreatedDate)
	if err != nil {
		return models.Customer{}, err
	}
	c.LicenseValid = license != 0
	return c, nil
}

// Exists reports whether a customer row with the given id is present.
func (r CustomerRepository) Exists(id int64) (bool, error) {
	var one int
	err := r.db().QueryRow(`SELECT 1 FROM customers WHERE id=? LIMIT 1`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
