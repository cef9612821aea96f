package mappers

import (
	"github.com/seralkhatem3210/urway/internal/domain/payment"
	vo "github.com/seralkhatem3210/urway/internal/domain/payment/valueobjects"
	"github.com/seralkhatem3210/urway/internal/infrastructure/persistence/models"
)

func TransactionToModel(tx *payment.Transaction) *models.TransactionModel {
	customer := tx.Customer()
	return &models.TransactionModel{
		ID:                tx.ID(),
		Reference:         tx.Reference(),
		Amount:            tx.Amount().AmountInCents(),
		Currency:          tx.Amount().Currency(),
		State:             tx.State().String(),
		ProviderReference: tx.ProviderReference(),
		StateMessage:      tx.StateMessage(),
		CustomerName:      customer.Name,
		CustomerEmail:     customer.Email,
		CustomerAddress:   customer.Address,
		CustomerCity:      customer.City,
		CustomerZip:       customer.Zip,
		CountryCode:       customer.CountryCode,
		Language:          customer.Language,
		Version:           tx.Version(),
		CreatedAt:         tx.CreatedAt(),
		UpdatedAt:         tx.UpdatedAt(),
	}
}

func TransactionToDomain(model *models.TransactionModel) *payment.Transaction {
	return payment.ReconstructTransaction(
		model.ID,
		model.Reference,
		vo.NewMoney(model.Amount, model.Currency),
		vo.Customer{
			Name:        model.CustomerName,
			Email:       model.CustomerEmail,
			Address:     model.CustomerAddress,
			City:        model.CustomerCity,
			Zip:         model.CustomerZip,
			CountryCode: model.CountryCode,
			Language:    model.Language,
		},
		vo.TransactionState(model.State),
		model.ProviderReference,
		model.StateMessage,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
