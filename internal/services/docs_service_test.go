package services

import (
	"strings"
	"testing"

	"wearecars/internal/domain/models"
)

func TestDocsServiceGenerateReceipt(t *testing.T) {
	loader := func(id int64) (models.Booking, error) {
		return models.Booking{
			ID:               id,
			CustomerID:       7,
			CustomerName:     "Jane Doe",
			CarType:          "Family Car",
			FuelType:         "Electric",
			Days:             5,
			UnlimitedMileage: true,
			BaseCost:         12500,
			CarSurcharge:     5000,
			FuelSurcharge:    5000,
			ExtrasCost:       5000,
			TotalCost:        27500,
			StartDate:        "2025-06-01",
			EndDate:          "2025-06-06",
			Status:           "Active",
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateReceipt(11)
	if err != nil {
		t.Fatalf("GenerateReceipt returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateReceipt returned empty data")
	}
	if !strings.HasPrefix(filename, "RECEIPT_11_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}
