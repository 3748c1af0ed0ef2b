package service

import (
	"io"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"salestrack_backend/internals/features/reports/monthly_targets/dto"
	"salestrack_backend/internals/features/reports/monthly_targets/model"
	helper "salestrack_backend/internals/helpers"
)

// Spreadsheet header aliases (case-insensitive, underscores/spaces ignored).
var columnAliases = map[string]string{
	"username":       "username",
	"agent":          "username",
	"month":          "month",
	"newtarget":      "new_target",
	"newbusiness":    "new_target",
	"renewtarget":    "renew_target",
	"renewaltarget":  "renew_target",
	"renewcollected": "renew_collected",
	"renewalcollect": "renew_collected",
}

// ParseWorkbook reads the first sheet of an uploaded .xlsx into target rows.
// The first row is the header; unknown columns are ignored.
func ParseWorkbook(r io.Reader) ([]dto.TargetRow, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, helper.NewValidationError("file", "not a readable .xlsx workbook")
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, helper.NewValidationError("file", "workbook has no sheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, helper.NewValidationError("file", "could not read sheet rows")
	}
	if len(rows) < 2 {
		return nil, nil
	}

	// map header positions
	cols := map[string]int{}
	for i, h := range rows[0] {
		key := normalizeHeader(h)
		if name, ok := columnAliases[key]; ok {
			if _, taken := cols[name]; !taken {
				cols[name] = i
			}
		}
	}
	if _, ok := cols["username"]; !ok {
		return nil, helper.NewValidationError("file", "missing Username column")
	}

	out := make([]dto.TargetRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := dto.TargetRow{
			Username:       cellAt(cells, cols, "username"),
			Month:          cellAt(cells, cols, "month"),
			NewTarget:      decimalAt(cells, cols, "new_target"),
			RenewTarget:    decimalAt(cells, cols, "renew_target"),
			RenewCollected: decimalAt(cells, cols, "renew_collected"),
		}
		row.Normalize()
		out = append(out, row)
	}
	return out, nil
}

// IngestRows upserts each row keyed on (username, month), replacing all three
// measures wholesale. Rows fail independently; processing always continues.
func IngestRows(db *gorm.DB, rows []dto.TargetRow) (results []dto.RowResult, processed int) {
	currentMonth := time.Now().Format("2006-01")

	for _, row := range rows {
		if row.Username == "" {
			results = append(results, dto.RowResult{Status: "skipped", Error: "no username"})
			continue
		}
		month := row.Month
		if month == "" {
			month = currentMonth
		}

		target := model.MonthlyTargetModel{
			Username:          row.Username,
			Month:             month,
			NewBusinessTarget: row.NewTarget,
			RenewalTarget:     row.RenewTarget,
			RenewalCollected:  row.RenewCollected,
		}

		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "username"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"new_business_target", "renewal_target", "renewal_collected", "updated_at",
			}),
		}).Create(&target).Error

		if err != nil {
			log.Printf("[ERROR] monthly target upsert failed (username=%s month=%s): %v", row.Username, month, err)
			results = append(results, dto.RowResult{
				Username: row.Username,
				Month:    month,
				Status:   "failed",
				Error:    err.Error(),
			})
			continue
		}

		results = append(results, dto.RowResult{Username: row.Username, Month: month, Status: "ok"})
		processed++
	}

	return results, processed
}

// Query filters stored targets by optional month and/or username.
func Query(db *gorm.DB, month, username string) ([]model.MonthlyTargetModel, error) {
	tx := db.Order("month DESC, username ASC")
	if month != "" {
		tx = tx.Where("month = ?", month)
	}
	if username != "" {
		tx = tx.Where("username = ?", strings.ToLower(strings.TrimSpace(username)))
	}

	var targets []model.MonthlyTargetModel
	if err := tx.Find(&targets).Error; err != nil {
		return nil, helper.NewStorageError("fetch monthly targets", err)
	}
	return targets, nil
}

// Summarize sums the three measures with zero-default semantics.
func Summarize(targets []model.MonthlyTargetModel) dto.TargetSummary {
	sum := dto.TargetSummary{
		NewBusinessTarget: decimal.Zero,
		RenewalTarget:     decimal.Zero,
		RenewalCollected:  decimal.Zero,
		Rows:              len(targets),
	}
	for _, t := range targets {
		sum.NewBusinessTarget = sum.NewBusinessTarget.Add(t.NewBusinessTarget)
		sum.RenewalTarget = sum.RenewalTarget.Add(t.RenewalTarget)
		sum.RenewalCollected = sum.RenewalCollected.Add(t.RenewalCollected)
	}
	return sum
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "_", "")
	h = strings.ReplaceAll(h, " ", "")
	return h
}

func cellAt(cells []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

// decimalAt parses a cell as a decimal; blank or non-numeric cells count as 0.
func decimalAt(cells []string, cols map[string]int, name string) decimal.Decimal {
	raw := strings.ReplaceAll(cellAt(cells, cols, name), ",", "")
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
