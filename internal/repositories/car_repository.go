package repositories

import (
	"database/sql"

	"wearecars/internal/domain/models"
)

// CarRepository reads the seeded car inventory. The booking flow never prices
// from these rows; they back the reference listing only.
type CarRepository struct {
	DB *sql.DB
}

func (r CarRepository) db() *sql.DB {
	return sharedDB(r.DB)
}

// List returns the inventory in id order.
func (r CarRepository) List() ([]models.Car, error) {
	rows, err := r.db().Query(
		`SELECT id, car_type, daily_rate, surcharge, COALESCE(available,1), COALESCE(description,'')
		 FROM cars ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Car{}
	for rows.Next() {
		var c models.Car
		var available int
		if err := rows.Scan(&c.ID, &c.CarType, &c.DailyRate, &c.Surcharge, &available, &c.Description); err != nil {
			return nil, err
		}
		c.Available = available != 0
		out = append(out, c)
	}
	return out, rows.Err()
}
