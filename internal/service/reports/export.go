package reports

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
	reportModels "github.com/m04kA/SMC-VenueBooking/internal/service/reports/models"
)

const (
	bookingsSheet = "Bookings"
	summarySheet  = "Summary"
)

var bookingHeaders = []string{
	"ID", "Date", "Room", "Category", "Check-in", "Check-out", "Status",
	"Customer", "Email", "Mobile", "Purpose", "Addons",
	"Billed hours", "Hall cost", "Addon cost", "Total cost", "Rescheduled",
}

// Export формирует выгрузку .xlsx за период: лист бронирований и лист сводки
func (s *Service) Export(ctx context.Context, req *reportModels.SummaryRequest) (*reportModels.ExportResponse, error) {
	bookings, err := s.load(ctx, "Export", req)
	if err != nil {
		return nil, err
	}

	summary := summarize(req, bookings)

	f := excelize.NewFile()
	defer f.Close()

	if err := writeBookingsSheet(f, bookings); err != nil {
		s.logger.Error("Export: failed to write bookings sheet: %v", err)
		return nil, fmt.Errorf("%w: Export - bookings sheet: %v", ErrInternal, err)
	}
	if err := writeSummarySheet(f, summary); err != nil {
		s.logger.Error("Export: failed to write summary sheet: %v", err)
		return nil, fmt.Errorf("%w: Export - summary sheet: %v", ErrInternal, err)
	}

	// Удаляем стандартный лист
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("%w: Export - delete default sheet: %v", ErrInternal, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("Export: failed to render workbook: %v", err)
		return nil, fmt.Errorf("%w: Export - write workbook: %v", ErrInternal, err)
	}

	fileName := fmt.Sprintf("bookings_%s_to_%s.xlsx", summary.From, summary.To)
	s.logger.Info("Export: built %s with %d bookings", fileName, len(bookings))

	return &reportModels.ExportResponse{
		FileName: fileName,
		Content:  buf.Bytes(),
	}, nil
}

func writeBookingsSheet(f *excelize.File, bookings []*domain.Booking) error {
	index, err := f.NewSheet(bookingsSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	if err := writeHeaderRow(f, bookingsSheet, bookingHeaders); err != nil {
		return err
	}

	for i, booking := range bookings {
		row := []interface{}{
			booking.ID,
			booking.Date.Format(domain.DateFormat),
			booking.RoomID,
			string(booking.Category),
			booking.CheckIn.String(),
			booking.CheckOut.String(),
			string(booking.Status),
			booking.FirstName + " " + booking.LastName,
			booking.Email,
			booking.MobileNumber,
			booking.Purpose,
			formatAddons(booking.Beverages),
			booking.BilledHours,
			booking.HallCost,
			booking.AddonCost,
			booking.TotalCost,
			booking.Rescheduled,
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(bookingsSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(bookingsSheet, "A", "Q", 14)
}

func writeSummarySheet(f *excelize.File, summary *reportModels.SummaryResponse) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Period", summary.From + " - " + summary.To},
		{"Total bookings", summary.TotalBookings},
		{"Total revenue", summary.TotalRevenue},
		{},
		{"Status", "Bookings"},
	}
	for _, status := range domain.BookingStatuses {
		rows = append(rows, []interface{}{string(status), summary.ByStatus[string(status)]})
	}

	rows = append(rows, []interface{}{}, []interface{}{"Category", "Bookings", "Billed hours", "Revenue"})
	for _, category := range summary.ByCategory {
		rows = append(rows, []interface{}{category.Category, category.Bookings, category.BilledHours, category.Revenue})
	}

	rows = append(rows, []interface{}{}, []interface{}{"Date", "Bookings", "Revenue"})
	for _, daily := range summary.ByDate {
		rows = append(rows, []interface{}{daily.Date, daily.Bookings, daily.Revenue})
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &rows[i]); err != nil {
			return err
		}
	}

	return f.SetColWidth(summarySheet, "A", "D", 18)
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	lastCell, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", lastCell, style)
}

func formatAddons(q domain.AddonQuantities) string {
	result := ""
	for i, addon := range models.FromAddonQuantities(q) {
		if i > 0 {
			result += ", "
		}
		result += fmt.Sprintf("%s x%d", addon.Name, addon.Quantity)
	}
	return result
}
