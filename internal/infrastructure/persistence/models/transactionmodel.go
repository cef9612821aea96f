package models

import "time"

// TransactionModel is the gorm persistence model for payment transactions.
// Reference is deliberately a non-unique index: uniqueness among open
// transactions is a host-platform invariant, and the notification verifier
// must be able to observe a multiplicity violation rather than have the
// database silently forbid it.
type TransactionModel struct {
	ID                uint    `gorm:"primaryKey"`
	Reference         string  `gorm:"index;size:64;not null"`
	Amount            int64   `gorm:"not null"`
	Currency          string  `gorm:"size:10;not null"`
	State             string  `gorm:"size:20;not null;index"`
	ProviderReference *string `gorm:"size:128"`
	StateMessage      *string `gorm:"type:text"`

	CustomerName    string `gorm:"size:128"`
	CustomerEmail   string `gorm:"size:128"`
	CustomerAddress string `gorm:"size:256"`
	CustomerCity    string `gorm:"size:64"`
	CustomerZip     string `gorm:"size:20"`
	CountryCode     string `gorm:"size:2"`
	Language        string `gorm:"size:8"`

	Version   int `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TransactionModel) TableName() string {
	return "payment_transactions"
}
