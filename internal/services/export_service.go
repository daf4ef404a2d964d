package services

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"wearecars/internal/domain/models"
	"wearecars/internal/utils"
)

// ExportService renders the bookings viewer rows as CSV. Field values are
// written raw; monetary amounts carry no currency symbol.
type ExportService struct {
	Bookings  func() ([]models.BookingSummary, error)
	RequestID string
}

var exportHeader = []string{
	"ID", "Customer Name", "Car Type", "Fuel Type", "Days",
	"Total Cost", "Booking Date", "Start Date", "End Date", "Status",
}

// ExportCSV returns the CSV body and a suggested filename.
func (s ExportService) ExportCSV() ([]byte, string, error) {
	rows, err := s.Bookings()
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, "", err
	}
	for _, b := range rows {
		record := []string{
			strconv.FormatInt(b.ID, 10),
			b.CustomerName,
			b.CarType,
			b.FuelType,
			strconv.Itoa(b.Days),
			utils.FormatPence(b.TotalCost),
			b.BookingDate,
			b.StartDate,
			b.EndDate,
			b.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "export", "csv", "rows="+strconv.Itoa(len(rows)))
	return buf.Bytes(), "wearecars_bookings.csv", nil
}
