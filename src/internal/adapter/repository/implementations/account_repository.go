package implementations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Deepanshipatil/Banking-application/src/internal/domain"
	"github.com/Deepanshipatil/Banking-application/src/internal/logger"
)

type AccountRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts one account. The caller supplies the account number; a
// collision is reported as domain.ErrDuplicateAccountNumber so it can retry
// with a fresh one.
func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	logger.Info("account repository create", logger.Fields{
		"accountNumber": account.AccountNumber,
		"name":          account.Name,
	})

	if account.Balance.LessThan(domain.MinOpeningBalance) {
		logger.Info("account repository create rejected balance", logger.Fields{
			"accountNumber": account.AccountNumber,
			"balance":       account.Balance.String(),
		})
		return domain.Account{}, domain.ErrBelowMinimumBalance
	}

	const query = `
INSERT INTO accounts (
	name,
	account_number,
	date_of_birth,
	city,
	password_hash,
	balance,
	contact_number,
	email,
	address
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, is_active`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		account.Name,
		account.AccountNumber,
		account.DateOfBirth,
		account.City,
		account.PasswordHash,
		account.Balance,
		account.ContactNumber,
		account.Email,
		account.Address,
	).Scan(&account.ID, &account.IsActive); err != nil {
		if isUniqueViolation(err) {
			logger.Info("account repository duplicate account number", logger.Fields{
				"accountNumber": account.AccountNumber,
			})
			return domain.Account{}, domain.ErrDuplicateAccountNumber
		}
		logger.Error("account repository create failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		return domain.Account{}, fmt.Errorf("create account: %w: %w", domain.ErrStorageUnavailable, err)
	}

	logger.Info("account repository create success", logger.Fields{
		"accountId":     account.ID,
		"accountNumber": account.AccountNumber,
	})

	return account, nil
}

// List returns every account in whatever order the database yields them.
func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	logger.Info("account repository list", nil)

	const query = `
SELECT id, name, account_number, date_of_birth, city, password_hash, balance, contact_number, email, address, is_active
FROM accounts`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("account repository list failed", err, nil)
		return nil, fmt.Errorf("list accounts: %w: %w", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			logger.Error("account repository list scan failed", err, nil)
			return nil, fmt.Errorf("scan account: %w: %w", domain.ErrStorageUnavailable, err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		logger.Error("account repository list rows failed", err, nil)
		return nil, fmt.Errorf("iterate accounts: %w: %w", domain.ErrStorageUnavailable, err)
	}

	logger.Info("account repository list success", logger.Fields{
		"count": len(accounts),
	})

	return accounts, nil
}

func scanAccount(scanner rowScanner) (domain.Account, error) {
	var account domain.Account
	err := scanner.Scan(
		&account.ID,
		&account.Name,
		&account.AccountNumber,
		&account.DateOfBirth,
		&account.City,
		&account.PasswordHash,
		&account.Balance,
		&account.ContactNumber,
		&account.Email,
		&account.Address,
		&account.IsActive,
	)
	return account, err
}
