package http

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"workforce-api/internal/shared/logger"
	"workforce-api/internal/workforce/domain/model"
	"workforce-api/internal/workforce/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// ReportHandler renders tabular exports of the employee roster.
type ReportHandler struct {
	usecase usecase.EmployeeUsecaseInterface
	log     logger.Logger
}

// NewReportHandler creates a new report HTTP handler.
func NewReportHandler(uc usecase.EmployeeUsecaseInterface, log logger.Logger) *ReportHandler {
	return &ReportHandler{usecase: uc, log: log.WithComponent("report_handler")}
}

// RegisterRoutes mounts the report routes.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/reports/employees", h.EmployeeReport)
}

// EmployeeReport streams the employee roster as an xlsx workbook. The same
// CEL `filter` parameter accepted by the list endpoint narrows the export.
func (h *ReportHandler) EmployeeReport(c *fiber.Ctx) error {
	format := c.Query("format", "xlsx")
	if format != "xlsx" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "format must be xlsx",
		})
	}

	employees, err := h.usecase.List(c.UserContext(), c.Query("filter"))
	if err != nil {
		return respondError(c, err)
	}

	buf, err := buildEmployeeWorkbook(employees)
	if err != nil {
		h.log.WithContext(c.UserContext()).Errorf("Failed to build employee report: %v", err)
		return respondError(c, err)
	}

	filename := fmt.Sprintf("employees_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.SendStream(buf)
}

var employeeReportColumns = []string{
	"Employee ID", "First Name", "Last Name", "Email", "Position",
	"Department", "Salary", "Hire Date", "Tags", "Active",
}

func buildEmployeeWorkbook(employees []*model.Employee) (*bytes.Reader, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Employees"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, col := range employeeReportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, fmt.Errorf("write header %q: %w", col, err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(employeeReportColumns), 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("style header row: %w", err)
	}

	for row, emp := range employees {
		values := []interface{}{
			emp.EmployeeID,
			emp.FirstName,
			emp.LastName,
			emp.Email,
			emp.Position,
			emp.DepartmentID,
			emp.Salary,
			emp.HireDate.Format("2006-01-02"),
			strings.Join(emp.Tags, ", "),
			emp.IsActive,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row+2, err)
			}
		}
	}

	out, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return bytes.NewReader(out.Bytes()), nil
}
