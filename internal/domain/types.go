package domain

// ID is used across domain entities.
type ID int64

// CarType is one of the four rental categories.
type CarType string

const (
	CarCity   CarType = "City Car"
	CarFamily CarType = "Family Car"
	CarSports CarType = "Sports Car"
	CarSUV    CarType = "SUV"
)

// FuelType is one of the four supported fuels.
type FuelType string

const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelHybrid   FuelType = "Hybrid"
	FuelElectric FuelType = "Electric"
)

// CarTypes lists valid car types in display order.
func CarTypes() []CarType {
	return []CarType{CarCity, CarFamily, CarSports, CarSUV}
}

// FuelTypes lists valid fuel types in display order.
func FuelTypes() []FuelType {
	return []FuelType{FuelPetrol, FuelDiesel, FuelHybrid, FuelElectric}
}

// ValidCarType reports whether s names a known car type.
func ValidCarType(s string) bool {
	for _, c := range CarTypes() {
		if string(c) == s {
			return true
		}
	}
	return false
}

// ValidFuelType reports whether s names a known fuel type.
func ValidFuelType(s string) bool {
	for _, f := range FuelTypes() {
		if string(f) == s {
			return true
		}
	}
	return false
}

const (
	// MinRentalDays and MaxRentalDays bound the rental length slider.
	MinRentalDays = 1
	MaxRentalDays = 28

	// MinCustomerAge and MaxCustomerAge bound the age input.
	MinCustomerAge = 18
	MaxCustomerAge = 100

	// StatusActive is the default status of a fresh booking.
	StatusActive = "Active"
)
