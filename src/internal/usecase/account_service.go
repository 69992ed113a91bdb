package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Deepanshipatil/Banking-application/src/internal/adapter/http/models"
	"github.com/Deepanshipatil/Banking-application/src/internal/domain"
	"github.com/Deepanshipatil/Banking-application/src/internal/logger"
)

type AccountNumberSource interface {
	Generate() (string, error)
}

type AccountService struct {
	accountRepo  domain.AccountRepository
	numbers      AccountNumberSource
	maxAttempts  int
	passwordCost int
}

func NewAccountService(
	accountRepo domain.AccountRepository,
	numbers AccountNumberSource,
	maxAttempts int,
	passwordCost int,
) *AccountService {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &AccountService{
		accountRepo:  accountRepo,
		numbers:      numbers,
		maxAttempts:  maxAttempts,
		passwordCost: passwordCost,
	}
}

// CreateAccount validates the request, hashes the password and inserts the
// account under a freshly drawn number. Number collisions are retried up to
// maxAttempts times; any other storage fault ends the operation.
func (s *AccountService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.Response[models.CreateAccountResponse], error) {
	if err := req.Validate(); err != nil {
		return models.ErrorResponse[models.CreateAccountResponse]("validation failed", err.Error()), err
	}

	balance, err := req.Balance()
	if err != nil {
		return models.ErrorResponse[models.CreateAccountResponse]("validation failed", "initialBalance must be numeric"), fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	passwordHash, err := hashPassword(req.Password, s.passwordCost)
	if err != nil {
		return models.ErrorResponse[models.CreateAccountResponse]("failed to create account", "failed to hash password"), err
	}

	account := domain.Account{
		Name:          req.Name,
		DateOfBirth:   req.DateOfBirth,
		City:          req.City,
		PasswordHash:  passwordHash,
		Balance:       balance,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Address:       req.Address,
	}

	created, err := s.insertWithFreshNumber(ctx, account)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBelowMinimumBalance):
			return models.ErrorResponse[models.CreateAccountResponse]("validation failed", err.Error()), err
		case errors.Is(err, domain.ErrAccountNumberExhausted):
			return models.ErrorResponse[models.CreateAccountResponse]("failed to create account", "Account could not be created. Try again."), err
		default:
			return models.ErrorResponse[models.CreateAccountResponse]("failed to create account", "Unable to create account right now"), err
		}
	}

	response := models.CreateAccountResponse{
		ID:            created.ID,
		AccountNumber: created.AccountNumber,
		Name:          created.Name,
		Balance:       created.Balance.StringFixed(domain.BalanceScale),
		Status:        created.StatusLabel(),
	}

	return models.SuccessResponse("account created successfully", response), nil
}

func (s *AccountService) ListAccounts(ctx context.Context) (models.Response[[]models.AccountResponse], error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return models.ErrorResponse[[]models.AccountResponse]("failed to list accounts", "Unable to fetch accounts right now"), err
	}

	response := make([]models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, models.NewAccountResponse(account))
	}

	return models.SuccessResponse("accounts fetched successfully", response), nil
}

func (s *AccountService) insertWithFreshNumber(ctx context.Context, account domain.Account) (domain.Account, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		number, err := s.numbers.Generate()
		if err != nil {
			return domain.Account{}, err
		}
		account.AccountNumber = number

		created, err := s.accountRepo.Create(ctx, account)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, domain.ErrDuplicateAccountNumber) {
			return domain.Account{}, err
		}

		logger.Info("account number collision", logger.Fields{
			"accountNumber": number,
			"attempt":       attempt,
			"maxAttempts":   s.maxAttempts,
		})
	}

	return domain.Account{}, fmt.Errorf("%w: %d attempts", domain.ErrAccountNumberExhausted, s.maxAttempts)
}

func hashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hashed), nil
}
