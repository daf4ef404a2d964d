package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"

	"wearecars/internal/domain/models"
)

func TestExportCSV(t *testing.T) {
	svc := ExportService{
		Bookings: func() ([]models.BookingSummary, error) {
			return []models.BookingSummary{
				{ID: 2, CustomerName: "Emma Johnson", CarType: "City Car", FuelType: "Hybrid", Days: 3,
					TotalCost: 13100, BookingDate: "2025-05-02 09:00:00", StartDate: "2025-05-02", EndDate: "2025-05-05", Status: "Active"},
				{ID: 1, CustomerName: "John Smith", CarType: "Family Car", FuelType: "Petrol", Days: 7,
					TotalCost: 29500, BookingDate: "2025-05-01 09:00:00", StartDate: "2025-05-01", EndDate: "2025-05-08", Status: "Active"},
			}, nil
		},
	}

	data, filename, err := svc.ExportCSV()
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if filename != "wearecars_bookings.csv" {
		t.Fatalf("filename: got %q", filename)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("output not parseable csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("rows: got %d want 3", len(records))
	}

	wantHeader := []string{"ID", "Customer Name", "Car Type", "Fuel Type", "Days",
		"Total Cost", "Booking Date", "Start Date", "End Date", "Status"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Fatalf("header[%d]: got %q want %q", i, records[0][i], col)
		}
	}

	if records[1][0] != "2" || records[1][5] != "131.00" {
		t.Fatalf("first data row wrong: %v", records[1])
	}
	if records[2][5] != "295.00" {
		t.Fatalf("total cost must be raw decimal, got %q", records[2][5])
	}
}

func TestExportCSVEmptyStore(t *testing.T) {
	svc := ExportService{
		Bookings: func() ([]models.BookingSummary, error) { return nil, nil },
	}
	data, _, err := svc.ExportCSV()
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil || len(records) != 1 {
		t.Fatalf("empty export should contain header only, got %v (%v)", records, err)
	}
}

func TestExportCSVPropagatesStoreError(t *testing.T) {
	boom := errors.New("store unavailable")
	svc := ExportService{
		Bookings: func() ([]models.BookingSummary, error) { return nil, boom },
	}
	if _, _, err := svc.ExportCSV(); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}
