package domain

import "github.com/shopspring/decimal"

// MinOpeningBalance is the smallest balance an account may be created with.
var MinOpeningBalance = decimal.NewFromInt(2000)

// BalanceScale is the number of decimal places a balance is stored with.
const BalanceScale int32 = 2

type Account struct {
	ID            int64
	Name          string
	AccountNumber string
	DateOfBirth   string
	City          string
	PasswordHash  string
	Balance       decimal.Decimal
	ContactNumber string
	Email         string
	Address       string
	IsActive      bool
}

func (a Account) StatusLabel() string {
	if a.IsActive {
		return "Active"
	}
	return "Inactive"
}
