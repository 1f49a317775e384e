package excel

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/staffdesk/internal/model"
)

// Generator renders the expiring-contracts workbook: one summary sheet plus
// one detail sheet per expiration window.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(groups []model.ExpiringContractsGroup, at time.Time) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, groups, at); err != nil {
		return nil, err
	}

	for _, group := range groups {
		sheetName := fmt.Sprintf("Expiring in %d days", group.Days)
		file.NewSheet(sheetName)
		if err := g.writeDetail(file, sheetName, group, at); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, groups []model.ExpiringContractsGroup, at time.Time) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Report")
	set("B1", "Expiring contracts")
	set("A2", "Reference date")
	set("B2", formatDate(at))

	tableRow := 4
	set(fmt.Sprintf("A%d", tableRow), "Window, days")
	set(fmt.Sprintf("B%d", tableRow), "Contracts")
	set(fmt.Sprintf("C%d", tableRow), "Clients affected")
	set(fmt.Sprintf("D%d", tableRow), "Professionals involved")
	set(fmt.Sprintf("E%d", tableRow), "Monthly value at risk")

	for i, group := range groups {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), group.Days)
		set(fmt.Sprintf("B%d", row), len(group.Contracts))
		set(fmt.Sprintf("C%d", row), group.ClientsAffected)
		set(fmt.Sprintf("D%d", row), group.ProfessionalsInvolved)
		set(fmt.Sprintf("E%d", row), formatMoney(group.TotalMonthlyValue))
	}

	_ = file.SetColWidth(sheet, "A", "A", 16)
	_ = file.SetColWidth(sheet, "B", "D", 22)
	_ = file.SetColWidth(sheet, "E", "E", 22)
	return nil
}

func (g *Generator) writeDetail(file *excelize.File, sheet string, group model.ExpiringContractsGroup, at time.Time) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Window, days")
	set("B1", group.Days)
	set("A2", "Reference date")
	set("B2", formatDate(at))
	set("A3", "Contracts")
	set("B3", len(group.Contracts))
	set("A4", "Monthly value at risk")
	set("B4", formatMoney(group.TotalMonthlyValue))

	tableRow := 6
	headers := []string{
		"Contract",
		"Client",
		"Project",
		"End date",
		"Days until expiration",
		"Monthly value",
		"Positions",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, contract := range group.Contracts {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), contract.ContractNumber)
		set(fmt.Sprintf("B%d", row), contract.Client.Name)
		set(fmt.Sprintf("C%d", row), formatString(contract.ProjectName))
		set(fmt.Sprintf("D%d", row), formatDate(contract.EndDate))
		set(fmt.Sprintf("E%d", row), contract.DaysUntilExpiration)
		set(fmt.Sprintf("F%d", row), formatMoney(contract.MonthlyValue))
		set(fmt.Sprintf("G%d", row), len(contract.Positions))
	}

	_ = file.SetColWidth(sheet, "A", "B", 24)
	_ = file.SetColWidth(sheet, "C", "C", 32)
	_ = file.SetColWidth(sheet, "D", "G", 18)
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func formatMoney(value decimal.Decimal) string {
	return value.StringFixed(2)
}
