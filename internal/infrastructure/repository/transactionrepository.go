package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/seralkhatem3210/urway/internal/domain/payment"
	"github.com/seralkhatem3210/urway/internal/infrastructure/persistence/mappers"
	"github.com/seralkhatem3210/urway/internal/infrastructure/persistence/models"
	"github.com/seralkhatem3210/urway/internal/shared/db"
	apperrors "github.com/seralkhatem3210/urway/internal/shared/errors"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(database *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: database}
}

var _ payment.TransactionRepository = (*TransactionRepository)(nil)

func (r *TransactionRepository) Create(ctx context.Context, tx *payment.Transaction) error {
	model := mappers.TransactionToModel(tx)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	tx.SetID(model.ID)

	return nil
}

func (r *TransactionRepository) Update(ctx context.Context, tx *payment.Transaction) error {
	model := mappers.TransactionToModel(tx)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TransactionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"state":              model.State,
			"provider_reference": model.ProviderReference,
			"state_message":      model.StateMessage,
			"version":            model.Version,
			"updated_at":         model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}

	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uint) (*payment.Transaction, error) {
	var model models.TransactionModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("transaction not found")
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return mappers.TransactionToDomain(&model), nil
}

func (r *TransactionRepository) GetByReference(ctx context.Context, reference string) (*payment.Transaction, error) {
	var model models.TransactionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("reference = ?", reference).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", reference))
		}
		return nil, fmt.Errorf("failed to get transaction by reference: %w", err)
	}

	return mappers.TransactionToDomain(&model), nil
}

func (r *TransactionRepository) FindAllByReference(ctx context.Context, reference string) ([]*payment.Transaction, error) {
	var txModels []models.TransactionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("reference = ?", reference).
		Order("created_at ASC").
		Find(&txModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find transactions by reference: %w", err)
	}

	transactions := make([]*payment.Transaction, len(txModels))
	for i := range txModels {
		transactions[i] = mappers.TransactionToDomain(&txModels[i])
	}

	return transactions, nil
}
