package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite"
	"github.com/ukaji3/xlsxlite-go/pkg/xlsxlite/models"
)

type demo struct {
	file  string
	build func() (*xlsxlite.Workbook, error)
}

var demos = []demo{
	{"InMemory.xlsx", func() (*xlsxlite.Workbook, error) { return employeesDemo(0, 0) }},
	{"InMemoryEmptyRows.xlsx", func() (*xlsxlite.Workbook, error) { return employeesDemo(2, 0) }},
	{"InMemoryEmptyRowsAF.xlsx", func() (*xlsxlite.Workbook, error) { return employeesDemo(0, 2) }},
	{"InMemoryHyperlinks.xlsx", func() (*xlsxlite.Workbook, error) { return linksDemo(0) }},
	{"InMemoryHyperlinksEmptyRows.xlsx", func() (*xlsxlite.Workbook, error) { return linksDemo(2) }},
	{"InMemoryMultiSheet.xlsx", multiSheetDemo},
	{"InMemoryMultiSheetHyperlinks.xlsx", multiSheetLinksDemo},
	{"InMemoryMultiSheetEmptyRows.xlsx", multiSheetEmptyRowsDemo},
	{"InMemoryTenSheets.xlsx", tenSheetsDemo},
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// employeesDemo writes the employee table with optional empty rows before
// the header and between data rows.
func employeesDemo(before, between int) (*xlsxlite.Workbook, error) {
	wb := xlsxlite.New()
	s, err := wb.AddSheet("Employees")
	if err != nil {
		return nil, err
	}
	if err := s.AddEmptyRows(before); err != nil {
		return nil, err
	}
	if err := s.AddRow("Id", "Name", "JoinDate", "Salary", "Active"); err != nil {
		return nil, err
	}

	t := today()
	rows := [][]interface{}{
		{1, "Alex", t, decimal.RequireFromString("5000.5"), true},
		{2, "Brian", t.AddDate(0, 0, -3), decimal.RequireFromString("6500.75"), true},
		{3, "Cindy", t.AddDate(0, 0, -10), decimal.NewFromInt(7200), false},
	}
	for i, row := range rows {
		if i > 0 {
			if err := s.AddEmptyRows(between); err != nil {
				return nil, err
			}
		}
		if err := s.AddRow(row...); err != nil {
			return nil, err
		}
	}
	s.FreezePanes(uint32(before)+1, 0)
	return wb, nil
}

func linksDemo(before int) (*xlsxlite.Workbook, error) {
	wb := xlsxlite.New()
	s, err := wb.AddSheet("Links")
	if err != nil {
		return nil, err
	}
	if err := s.AddEmptyRows(before); err != nil {
		return nil, err
	}
	return wb, s.AddRows([][]interface{}{
		{"Name", "Website"},
		{"Google", models.Hyperlink{Text: "Visit Google", URL: "https://google.com"}},
		{"Repo", models.Hyperlink{Text: "GitHub", URL: "https://github.com/livedcode/OpenExcelLite"}},
	})
}

func multiSheetDemo() (*xlsxlite.Workbook, error) {
	wb := xlsxlite.New()
	content := []struct {
		name string
		rows [][]interface{}
	}{
		{"Employees", [][]interface{}{{"Id", "Name"}, {1, "Alex"}, {2, "Brian"}}},
		{"Departments", [][]interface{}{{"DeptId", "Department"}, {10, "Finance"}, {20, "IT"}}},
		{"Summary", [][]interface{}{{"Generated", time.Now()}}},
	}
	for _, c := range content {
		s, err := wb.AddSheet(c.name)
		if err != nil {
			return nil, err
		}
		if err := s.AddRows(c.rows); err != nil {
			return nil, err
		}
	}
	return wb, nil
}

func multiSheetLinksDemo() (*xlsxlite.Workbook, error) {
	wb := xlsxlite.New()
	content := []struct {
		name, header, label string
		link                models.Hyperlink
	}{
		{"Links1", "Website", "Google", models.Hyperlink{Text: "Visit Google", URL: "https://google.com"}},
		{"Links2", "URL", "Users", models.Hyperlink{Text: "User API", URL: "https://yourapi.com/users"}},
		{"Links3", "URL", "README", models.Hyperlink{Text: "README", URL: "https://github.com/livedcode/OpenExcelLite/blob/main/README.md"}},
	}
	for _, c := range content {
		s, err := wb.AddSheet(c.name)
		if err != nil {
			return nil, err
		}
		if err := s.AddRows([][]interface{}{{"Name", c.header}, {c.label, c.link}}); err != nil {
			return nil, err
		}
	}
	return wb, nil
}

func multiSheetEmptyRowsDemo() (*xlsxlite.Workbook, error) {
	wb := xlsxlite.New()
	a, err := wb.AddSheet("A")
	if err != nil {
		return nil, err
	}
	if err := a.AddEmptyRows(3); err != nil {
		return nil, err
	}
	if err := a.AddRows([][]interface{}{{"Id", "Value"}, {1, "AAA"}}); err != nil {
		return nil, err
	}

	b, err := wb.AddSheet("B")
	if err != nil {
		return nil, err
	}
	if err := b.AddRow("Key", "Result"); err != nil {
		return nil, err
	}
	if err := b.AddEmptyRows(2); err != nil {
		return nil, err
	}
	if err := b.AddRow("X", 111); err != nil {
		return nil, err
	}

	c, err := wb.AddSheet("C")
	if err != nil {
		return nil, err
	}
	if err := c.AddEmptyRows(5); err != nil {
		return nil, err
	}
	return wb, c.AddRows([][]interface{}{{"Title", "Data"}, {"Demo", 999}})
}

func tenSheetsDemo() (*xlsxlite.Workbook, error) {
	wb := xlsxlite.New()
	for i := 1; i <= 10; i++ {
		s, err := wb.AddSheet(fmt.Sprintf("Sheet_%d", i))
		if err != nil {
			return nil, err
		}
		if err := s.AddRow("Row", "Value"); err != nil {
			return nil, err
		}
		for r := 1; r <= 5; r++ {
			if err := s.AddRow(r, fmt.Sprintf("Data %d in Sheet %d", r, i)); err != nil {
				return nil, err
			}
		}
	}
	return wb, nil
}
