// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/worktrack/backend/internal/application/usecase/calculator"
	"github.com/worktrack/backend/internal/domain/valueobject"
)

// reportRepository implements the calculator.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) calculator.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// GetGroupedWork aggregates work records in the range into groups keyed by
// "{pricePerUnit}|{typeName}". Row order is fixed by the query (price
// descending, then type name, then user name) and carried through to the
// payload: that order is the tie-break order for the report sort.
func (r *reportRepository) GetGroupedWork(ctx context.Context, filter calculator.ReportFilter) (*calculator.RawReport, error) {
	var rows []struct {
		PricePerUnit decimal.Decimal  `gorm:"column:price_per_unit"`
		TypeName     string           `gorm:"column:type_name"`
		UserID       uuid.UUID        `gorm:"column:user_id"`
		UserName     string           `gorm:"column:user_name"`
		TotalAmount  decimal.Decimal  `gorm:"column:total_amount"`
		PersonalRate *decimal.Decimal `gorm:"column:personal_rate"`
	}

	query := `
		SELECT
			wt.price_per_unit AS price_per_unit,
			wt.name AS type_name,
			u.id AS user_id,
			u.name AS user_name,
			SUM(w.quantity * wt.price_per_unit) AS total_amount,
			r.price_per_unit AS personal_rate
		FROM works w
		JOIN work_types wt ON wt.id = w.work_type_id
		JOIN users u ON u.id = w.user_id
		LEFT JOIN user_work_type_rates r
			ON r.user_id = w.user_id AND r.work_type_id = w.work_type_id
		WHERE w.deleted_at IS NULL
			AND w.date >= ?
			AND w.date <= ?`
	args := []interface{}{filter.FromDate, filter.ToDate}

	if filter.TagID != nil {
		query += `
			AND EXISTS (SELECT 1 FROM work_tags wt2 WHERE wt2.work_id = w.id AND wt2.tag_id = ?)`
		args = append(args, *filter.TagID)
	}
	if filter.ExcludeTagID != nil {
		query += `
			AND NOT EXISTS (SELECT 1 FROM work_tags wt2 WHERE wt2.work_id = w.id AND wt2.tag_id = ?)`
		args = append(args, *filter.ExcludeTagID)
	}

	query += `
		GROUP BY wt.price_per_unit, wt.name, u.id, u.name, r.price_per_unit
		ORDER BY wt.price_per_unit DESC, wt.name ASC, u.name ASC, u.id ASC`

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate work records: %w", err)
	}

	report := &calculator.RawReport{TotalOfAll: decimal.Zero}
	for _, row := range rows {
		key := valueobject.GroupKey{PricePerUnit: row.PricePerUnit, TypeName: row.TypeName}
		token := key.Token()

		if len(report.Groups) == 0 || report.Groups[len(report.Groups)-1].Key != token {
			report.Groups = append(report.Groups, calculator.RawGroup{Key: token})
		}
		group := &report.Groups[len(report.Groups)-1]

		group.Users = append(group.Users, calculator.UserWorkRecord{
			UserID:                   row.UserID,
			UserName:                 row.UserName,
			GroupPricePerUnit:        row.PricePerUnit,
			TotalAmount:              row.TotalAmount,
			UserWorkTypePricePerUnit: row.PersonalRate,
		})
		report.TotalOfAll = report.TotalOfAll.Add(row.TotalAmount)
	}

	profit, err := r.profitForRange(ctx, filter, report.TotalOfAll)
	if err != nil {
		return nil, err
	}
	report.Profit = profit

	return report, nil
}

// profitForRange computes sales minus expenses minus the labor total for the
// date range. The ledger is not tag-scoped; only the labor side follows the
// report filter.
func (r *reportRepository) profitForRange(ctx context.Context, filter calculator.ReportFilter, laborTotal decimal.Decimal) (decimal.Decimal, error) {
	var sums struct {
		Sales    decimal.Decimal `gorm:"column:sales"`
		Expenses decimal.Decimal `gorm:"column:expenses"`
	}

	query := `
		SELECT
			COALESCE((SELECT SUM(amount) FROM sales
				WHERE deleted_at IS NULL AND date >= ? AND date <= ?), 0) AS sales,
			COALESCE((SELECT SUM(amount) FROM expenses
				WHERE deleted_at IS NULL AND date >= ? AND date <= ?), 0) AS expenses`

	err := r.db.WithContext(ctx).
		Raw(query, filter.FromDate, filter.ToDate, filter.FromDate, filter.ToDate).
		Scan(&sums).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum ledger for profit: %w", err)
	}

	return sums.Sales.Sub(sums.Expenses).Sub(laborTotal), nil
}
