package service_interfaces

import (
	"context"

	"github.com/Deepanshipatil/Banking-application/src/internal/adapter/http/models"
)

type AccountService interface {
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.Response[models.CreateAccountResponse], error)
	ListAccounts(ctx context.Context) (models.Response[[]models.AccountResponse], error)
}
