package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"wearecars/internal/domain/models"
	"wearecars/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders a booking receipt PDF with the full price breakdown.
type DocsService struct {
	RequestID string
	Loader    func(int64) (models.Booking, error)
}

// GenerateReceipt builds the receipt for one booking.
func (s DocsService) GenerateReceipt(bookingID int64) ([]byte, string, error) {
	b, err := s.Loader(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", fmt.Sprintf("booking_id=%d", bookingID))
	return buildReceiptPDF(b)
}

func buildReceiptPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "WeAreCars - Booking Receipt")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Booking No : #%d", b.ID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Customer")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Name : "+b.CustomerName)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Rental")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Car      : %s (%s)", b.CarType, b.FuelType))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Duration : %d days (%s to %s)", b.Days, b.StartDate, b.EndDate))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Price Breakdown")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	lines := []struct {
		label string
		pence int64
	}{
		{fmt.Sprintf("Base cost (%d days)", b.Days), b.BaseCost},
		{"Car surcharge (" + b.CarType + ")", b.CarSurcharge},
		{"Fuel surcharge (" + b.FuelType + ")", b.FuelSurcharge},
	}
	if b.UnlimitedMileage || b.BreakdownCover {
		extras := []string{}
		if b.UnlimitedMileage {
			extras = append(extras, "unlimited mileage")
		}
		if b.BreakdownCover {
			extras = append(extras, "breakdown cover")
		}
		lines = append(lines, struct {
			label string
			pence int64
		}{"Extras (" + strings.Join(extras, ", ") + ")", b.ExtrasCost})
	}
	for _, line := range lines {
		pdf.Cell(120, 6, line.label)
		pdf.CellFormat(0, 6, utils.FormatPounds(line.pence), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(120, 8, "Total")
	pdf.CellFormat(0, 8, utils.FormatPounds(b.TotalCost), "", 1, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Status: "+b.Status, "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%d_%s.pdf", b.ID, safeFilenamePart(b.CustomerName))
	return buf.Bytes(), filename, nil
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	s = replacer.Replace(s)
	if s == "" {
		return "booking"
	}
	return s
}
