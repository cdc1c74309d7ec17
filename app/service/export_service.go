package service

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"fiber/khayalethu/app/model"
	"fiber/khayalethu/app/repo"
)

const (
	exportSheet    = "Applications"
	exportFilename = "student_applications.xlsx"
	xlsxMIME       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	maxColWidth    = 50
)

var exportHeaders = []string{
	"ID", "Full Names", "Student Number", "Email", "Phone", "Institution",
	"Year", "ID Number", "Gender", "Ethnicity", "Home Language",
	"Home Address", "Guardian Name", "Guardian Relationship",
	"Guardian Phone", "Guardian Email", "Status", "Submitted At",
}

type ExportService struct {
	repo repo.ApplicationRepository
}

func NewExportService(r repo.ApplicationRepository) *ExportService {
	return &ExportService{repo: r}
}

func exportRow(a model.Application) []string {
	return []string{
		fmt.Sprintf("%d", a.ID), a.FullNames, a.StudentNumber, a.Email,
		a.Phone, a.Institution, a.Year, a.IDNumber, a.Gender, a.Ethnicity,
		a.HomeLanguage, a.HomeAddress, a.GuardianName,
		a.GuardianRelationship, a.GuardianPhone, a.GuardianEmail,
		string(a.Status), a.SubmittedAt.Format("2006-01-02 15:04:05"),
	}
}

// GET /api/export/excel
//
// Always the full table, newest first; an empty store still yields a valid
// workbook with just the header row.
func (s *ExportService) Excel(c *fiber.Ctx) error {
	apps, err := s.repo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to fetch applications",
		})
	}

	buf, err := BuildWorkbook(apps)
	if err != nil {
		log.Printf("[export] workbook build failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to generate export",
		})
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+exportFilename)
	c.Set(fiber.HeaderContentType, xlsxMIME)
	return c.Send(buf)
}

// BuildWorkbook renders applications into a single-sheet xlsx byte slice
// with columns sized to their longest content.
func BuildWorkbook(apps []model.Application) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	widths := make([]int, len(exportHeaders))
	for col, h := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, err
		}
		widths[col] = len(h)
	}

	for i, a := range apps {
		for col, v := range exportRow(a) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, err
			}
			if len(v) > widths[col] {
				widths[col] = len(v)
			}
		}
	}

	for col, w := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if w+2 > maxColWidth {
			w = maxColWidth - 2
		}
		if err := f.SetColWidth(exportSheet, name, name, float64(w+2)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
