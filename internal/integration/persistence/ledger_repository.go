// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/worktrack/backend/internal/application/adapter"
	"github.com/worktrack/backend/internal/domain/entity"
	domainerror "github.com/worktrack/backend/internal/domain/error"
	"github.com/worktrack/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByFilter retrieves expenses within the date window, newest first.
func (r *expenseRepository) FindByFilter(ctx context.Context, filter adapter.LedgerFilter) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	query := applyLedgerFilter(r.db.WithContext(ctx), filter)
	result := query.Order("date DESC, created_at DESC").Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	expenses := make([]*entity.Expense, 0, len(expenseModels))
	for i := range expenseModels {
		expenses = append(expenses, expenseModels[i].ToEntity())
	}
	return expenses, nil
}

// SumByFilter sums expense amounts within the date window.
func (r *expenseRepository) SumByFilter(ctx context.Context, filter adapter.LedgerFilter) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	query := applyLedgerFilter(r.db.WithContext(ctx), filter).Model(&model.ExpenseModel{})
	err := query.Select("COALESCE(SUM(amount), 0) as total").Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Save(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes an expense from the database.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// saleRepository implements the adapter.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository instance.
func NewSaleRepository(db *gorm.DB) adapter.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// Create creates a new sale in the database.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	result := r.db.WithContext(ctx).Create(saleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a sale by its ID.
func (r *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleModel model.SaleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&saleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSaleNotFound
		}
		return nil, result.Error
	}
	return saleModel.ToEntity(), nil
}

// FindByFilter retrieves sales within the date window, newest first.
func (r *saleRepository) FindByFilter(ctx context.Context, filter adapter.LedgerFilter) ([]*entity.Sale, error) {
	var saleModels []model.SaleModel
	query := applyLedgerFilter(r.db.WithContext(ctx), filter)
	result := query.Order("date DESC, created_at DESC").Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}
	sales := make([]*entity.Sale, 0, len(saleModels))
	for i := range saleModels {
		sales = append(sales, saleModels[i].ToEntity())
	}
	return sales, nil
}

// SumByFilter sums sale amounts within the date window.
func (r *saleRepository) SumByFilter(ctx context.Context, filter adapter.LedgerFilter) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	query := applyLedgerFilter(r.db.WithContext(ctx), filter).Model(&model.SaleModel{})
	err := query.Select("COALESCE(SUM(amount), 0) as total").Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// Update updates an existing sale in the database.
func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	result := r.db.WithContext(ctx).Save(saleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a sale from the database.
func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SaleModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// applyLedgerFilter adds the optional date-window clauses.
func applyLedgerFilter(query *gorm.DB, filter adapter.LedgerFilter) *gorm.DB {
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	return query
}
