package pricing

import (
	"testing"

	"wearecars/internal/domain"
)

func TestQuoteFamilyElectricWithMileage(t *testing.T) {
	b := Quote(5, domain.CarFamily, domain.FuelElectric, true, false)

	if b.BaseCost != 12500 {
		t.Fatalf("base cost: got %d want 12500", b.BaseCost)
	}
	if b.CarSurcharge != 5000 {
		t.Fatalf("car surcharge: got %d want 5000", b.CarSurcharge)
	}
	if b.FuelSurcharge != 5000 {
		t.Fatalf("fuel surcharge: got %d want 5000", b.FuelSurcharge)
	}
	if b.MileageCost != 5000 {
		t.Fatalf("mileage cost: got %d want 5000", b.MileageCost)
	}
	if b.BreakdownCost != 0 {
		t.Fatalf("breakdown cost: got %d want 0", b.BreakdownCost)
	}
	if b.ExtrasCost != 5000 {
		t.Fatalf("extras cost: got %d want 5000", b.ExtrasCost)
	}
	if b.TotalCost != 27500 {
		t.Fatalf("total: got %d want 27500", b.TotalCost)
	}
}

func TestQuoteMinimum(t *testing.T) {
	b := Quote(1, domain.CarCity, domain.FuelPetrol, false, false)
	if b.TotalCost != 2500 {
		t.Fatalf("minimum total: got %d want 2500", b.TotalCost)
	}
	if b.ExtrasCost != 0 {
		t.Fatalf("extras: got %d want 0", b.ExtrasCost)
	}
}

func TestQuoteTotalIsSumOfParts(t *testing.T) {
	for days := domain.MinRentalDays; days <= domain.MaxRentalDays; days++ {
		for _, ct := range domain.CarTypes() {
			for _, ft := range domain.FuelTypes() {
				for _, mileage := range []bool{false, true} {
					for _, cover := range []bool{false, true} {
						b := Quote(days, ct, ft, mileage, cover)
						sum := b.BaseCost + b.CarSurcharge + b.FuelSurcharge + b.ExtrasCost
						if b.TotalCost != sum {
							t.Fatalf("days=%d car=%s fuel=%s mileage=%v cover=%v: total %d != sum %d",
								days, ct, ft, mileage, cover, b.TotalCost, sum)
						}
						if b.ExtrasCost != b.MileageCost+b.BreakdownCost {
							t.Fatalf("extras %d != mileage %d + breakdown %d",
								b.ExtrasCost, b.MileageCost, b.BreakdownCost)
						}
					}
				}
			}
		}
	}
}

func TestQuoteBreakdownCoverOnly(t *testing.T) {
	b := Quote(10, domain.CarSUV, domain.FuelDiesel, false, true)
	if b.BreakdownCost != 2000 {
		t.Fatalf("breakdown cost: got %d want 2000", b.BreakdownCost)
	}
	if b.TotalCost != 25000+6500+0+2000 {
		t.Fatalf("total: got %d want %d", b.TotalCost, 25000+6500+2000)
	}
}
