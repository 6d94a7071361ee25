package handlers

import (
	"centavo-server/src/models"
	"centavo-server/src/snapshot"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

type exportRow struct {
	Type        string
	Value       float64
	Date        time.Time
	Category    string
	Description string
}

func exportRows(snap *models.Snapshot) []exportRow {
	rows := make([]exportRow, 0,
		len(snap.Incomes)+len(snap.Expenses)+len(snap.PendingIncomes)+len(snap.FixedExpenses))
	for _, i := range snap.Incomes {
		rows = append(rows, exportRow{"income", i.Value, i.Date, i.Category, i.Description})
	}
	for _, e := range snap.Expenses {
		rows = append(rows, exportRow{"expense", e.Value, e.Date, e.Category, e.Description})
	}
	for _, p := range snap.PendingIncomes {
		rows = append(rows, exportRow{"pending_income", p.Value, p.ExpectedDate, p.Category, p.Description})
	}
	for _, f := range snap.FixedExpenses {
		rows = append(rows, exportRow{"fixed_expense", f.Value, fixedDueDate(f), models.CategoryBills, f.Name})
	}
	return rows
}

// fixedDueDate builds the calendar due date of a fixed expense from its
// month key and due day.
func fixedDueDate(f models.FixedExpense) time.Time {
	month, err := time.ParseInLocation("2006-01", f.Month, time.Local)
	if err != nil {
		return time.Time{}
	}
	return month.AddDate(0, 0, f.DueDay-1)
}

func ExportCSV(store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)

		writer := csv.NewWriter(w)
		writer.Write([]string{"Type", "Value", "Date", "Category", "Description"})
		for _, row := range exportRows(store.Current()) {
			writer.Write([]string{
				row.Type,
				strconv.FormatFloat(row.Value, 'f', 2, 64),
				row.Date.Format("2006-01-02"),
				row.Category,
				row.Description,
			})
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			log.Printf("ERROR: Failed to write CSV export: %v", err)
		}
	}
}

func ExportJSON(store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="snapshot.json"`)
		json.NewEncoder(w).Encode(store.Current())
	}
}

func ExportXLSX(store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := excelize.NewFile()
		defer f.Close()

		sheet := "Transactions"
		index, err := f.NewSheet(sheet)
		if err != nil {
			log.Printf("ERROR: Failed to create export sheet: %v", err)
			http.Error(w, "failed to build export", http.StatusInternalServerError)
			return
		}
		f.SetActiveSheet(index)
		f.DeleteSheet("Sheet1")

		headers := []string{"Type", "Value", "Date", "Category", "Description"}
		for col, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(sheet, cell, h)
		}
		for i, row := range exportRows(store.Current()) {
			values := []interface{}{
				row.Type,
				row.Value,
				row.Date.Format("2006-01-02"),
				row.Category,
				row.Description,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
				f.SetCellValue(sheet, cell, v)
			}
		}
		f.SetColWidth(sheet, "A", "E", 20)

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="transactions-%s.xlsx"`, time.Now().Format("2006-01-02")))
		if err := f.Write(w); err != nil {
			log.Printf("ERROR: Failed to write XLSX export: %v", err)
		}
	}
}
