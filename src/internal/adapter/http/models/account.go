package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Deepanshipatil/Banking-application/src/internal/domain"
	"github.com/Deepanshipatil/Banking-application/src/internal/validation"
)

type CreateAccountRequest struct {
	Name           string `json:"name"`
	DateOfBirth    string `json:"dateOfBirth"`
	City           string `json:"city"`
	Password       string `json:"password"`
	InitialBalance string `json:"initialBalance"`
	ContactNumber  string `json:"contactNumber"`
	Email          string `json:"email"`
	Address        string `json:"address"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if !validation.IsValidName(r.Name) {
		errs = append(errs, "name must contain only letters and spaces")
	}
	if !validation.IsPresent(r.DateOfBirth) {
		errs = append(errs, "dateOfBirth is required")
	}
	if !validation.IsValidPassword(r.Password) {
		errs = append(errs, "password must be 8 to 72 bytes long with at least 1 digit and 1 uppercase letter")
	}
	if balance, err := r.Balance(); err != nil {
		errs = append(errs, "initialBalance must be numeric")
	} else if !validation.HasBalanceScale(balance) {
		errs = append(errs, fmt.Sprintf("initialBalance must have at most %d decimal places", domain.BalanceScale))
	} else if !validation.IsValidOpeningBalance(balance) {
		errs = append(errs, fmt.Sprintf("initialBalance must be at least %s", domain.MinOpeningBalance))
	}
	if !validation.IsValidContactNumber(r.ContactNumber) {
		errs = append(errs, "contactNumber must be exactly 10 digits")
	}
	if !validation.IsValidEmail(r.Email) {
		errs = append(errs, "email is invalid")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(errs, "; "))
	}

	return nil
}

func (r CreateAccountRequest) Balance() (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(r.InitialBalance))
}

type CreateAccountResponse struct {
	ID            int64  `json:"id"`
	AccountNumber string `json:"accountNumber"`
	Name          string `json:"name"`
	Balance       string `json:"balance"`
	Status        string `json:"status"`
}

type AccountResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	AccountNumber string `json:"accountNumber"`
	DateOfBirth   string `json:"dateOfBirth"`
	City          string `json:"city"`
	Balance       string `json:"balance"`
	ContactNumber string `json:"contactNumber"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	IsActive      bool   `json:"isActive"`
	Status        string `json:"status"`
}

func NewAccountResponse(account domain.Account) AccountResponse {
	return AccountResponse{
		ID:            account.ID,
		Name:          account.Name,
		AccountNumber: account.AccountNumber,
		DateOfBirth:   account.DateOfBirth,
		City:          account.City,
		Balance:       account.Balance.StringFixed(domain.BalanceScale),
		ContactNumber: account.ContactNumber,
		Email:         account.Email,
		Address:       account.Address,
		IsActive:      account.IsActive,
		Status:        account.StatusLabel(),
	}
}
