package pricing

import "wearecars/internal/domain"

// All amounts are integer pence. The rate card is fixed: a flat daily base
// rate, an additive surcharge per car and fuel category, and two flat per-day
// extras.
const (
	// BaseRatePence is the daily base rate (£25.00).
	BaseRatePence int64 = 2500

	// MileageRatePence is the unlimited mileage extra per day (£10.00).
	MileageRatePence int64 = 1000

	// BreakdownRatePence is the breakdown cover extra per day (£2.00).
	BreakdownRatePence int64 = 200
)

var carSurcharges = map[domain.CarType]int64{
	domain.CarCity:   0,
	domain.CarFamily: 5000,
	domain.CarSports: 7500,
	domain.CarSUV:    6500,
}

var fuelSurcharges = map[domain.FuelType]int64{
	domain.FuelPetrol:   0,
	domain.FuelDiesel:   0,
	domain.FuelHybrid:   3000,
	domain.FuelElectric: 5000,
}

// CarSurcharge returns the flat surcharge for a car type; unknown types cost nothing extra.
func CarSurcharge(ct domain.CarType) int64 {
	return carSurcharges[ct]
}

// FuelSurcharge returns the flat surcharge for a fuel type.
func FuelSurcharge(ft domain.FuelType) int64 {
	return fuelSurcharges[ft]
}

// Breakdown is a fully itemized price for one rental.
type Breakdown struct {
	BaseCost      int64 `json:"base_cost"`
	CarSurcharge  int64 `json:"car_surcharge"`
	FuelSurcharge int64 `json:"fuel_surcharge"`
	MileageCost   int64 `json:"mileage_cost"`
	BreakdownCost int64 `json:"breakdown_cost"`
	ExtrasCost    int64 `json:"extras_cost"`
	TotalCost     int64 `json:"total_cost"`
}

// Quote computes the full price breakdown for a draft. Pure and deterministic;
// callers re-run it whenever the draft changes rather than caching.
func Quote(days int, carType domain.CarType, fuelType domain.FuelType, unlimitedMileage, breakdownCover bool) Breakdown {
	b := Breakdown{
		BaseCost:      BaseRatePence * int64(days),
		CarSurcharge:  CarSurcharge(carType),
		FuelSurcharge: FuelSurcharge(fuelType),
	}
	if unlimitedMileage {
		b.MileageCost = MileageRatePence * int64(days)
	}
	if breakdownCover {
		b.BreakdownCost = BreakdownRatePence * int64(days)
	}
	b.ExtrasCost = b.MileageCost + b.BreakdownCost
	b.TotalCost = b.BaseCost + b.CarSurcharge + b.FuelSurcharge + b.ExtrasCost
	return b
}
