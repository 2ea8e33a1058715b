// Package export flattens the donation and request collections into a
// two-sheet xlsx workbook for the admin download.
package export

import (
	"fmt"

	"pasithulir/internal/utils"
	"pasithulir/pkg/types"

	"github.com/xuri/excelize/v2"
)

const (
	DonationSheet = "Donations"
	RequestSheet  = "Requests"

	// Filename is the fixed download name for the admin export.
	Filename = "Pasithulir_Admin_Data.xlsx"

	expiryTimeLayout = "2006-01-02 15:04"
)

var donationHeader = []any{"Name", "Email", "Phone", "FoodType", "Address", "ExpiryTime", "Status"}
var requestHeader = []any{"Organization", "ContactPerson", "Phone", "Urgency", "Address", "PreferredTime", "Status"}

// Workbook materializes one row per record on each sheet, regardless of
// lifecycle bucket. The whole dataset is held in memory; fine for the record
// counts this site sees.
func Workbook(donations []*types.Donation, requests []*types.Request) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", DonationSheet); err != nil {
		return nil, fmt.Errorf("rename donation sheet: %w", err)
	}

	if _, err := f.NewSheet(RequestSheet); err != nil {
		return nil, fmt.Errorf("create request sheet: %w", err)
	}

	if err := writeSheet(f, DonationSheet, donationHeader, donationRows(donations)); err != nil {
		return nil, err
	}

	if err := writeSheet(f, RequestSheet, requestHeader, requestRows(requests)); err != nil {
		return nil, err
	}

	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("resolve %s row cell: %w", sheet, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}

	return nil
}

func donationRows(donations []*types.Donation) [][]any {
	rows := make([][]any, 0, len(donations))
	for _, d := range donations {
		rows = append(rows, []any{
			d.DonorName,
			utils.PtrString(d.Email),
			d.ContactNumber,
			d.FoodType,
			d.Address,
			d.ExpiryTime.Format(expiryTimeLayout),
			donationStatus(d),
		})
	}
	return rows
}

func requestRows(requests []*types.Request) [][]any {
	rows := make([][]any, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, []any{
			r.OrganizationName,
			r.ContactPerson,
			r.ContactNumber,
			r.UrgencyLevel,
			r.Address,
			r.PreferredTime,
			requestStatus(r),
		})
	}
	return rows
}

func donationStatus(d *types.Donation) string {
	if d.Finished {
		return "Finished"
	}
	return "Active"
}

func requestStatus(r *types.Request) string {
	switch {
	case r.Finished:
		return "Finished"
	case r.Status != nil && *r.Status != "":
		return *r.Status
	default:
		return "Pending"
	}
}
