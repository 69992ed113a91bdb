package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Deepanshipatil/Banking-application/src/internal/adapter/http/models"
	"github.com/Deepanshipatil/Banking-application/src/internal/adapter/repository/implementations"
	"github.com/Deepanshipatil/Banking-application/src/internal/config"
	"github.com/Deepanshipatil/Banking-application/src/internal/domain"
	"github.com/Deepanshipatil/Banking-application/src/internal/logger"
	"github.com/Deepanshipatil/Banking-application/src/internal/usecase"
)

type accountServiceStub struct {
	createFn func(ctx context.Context, req models.CreateAccountRequest) (models.Response[models.CreateAccountResponse], error)
	listFn   func(ctx context.Context) (models.Response[[]models.AccountResponse], error)
}

func (s accountServiceStub) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.Response[models.CreateAccountResponse], error) {
	if s.createFn != nil {
		return s.createFn(ctx, req)
	}
	return models.SuccessResponse("account created successfully", models.CreateAccountResponse{AccountNumber: "1234567890"}), nil
}

func (s accountServiceStub) ListAccounts(ctx context.Context) (models.Response[[]models.AccountResponse], error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return models.SuccessResponse("accounts fetched successfully", []models.AccountResponse{}), nil
}

func lines(in ...string) io.Reader {
	return strings.NewReader(strings.Join(in, "\n") + "\n")
}

func TestRunExitAndUnknownChoice(t *testing.T) {
	var out bytes.Buffer
	err := New(lines("9", "3"), &out, accountServiceStub{}).Run(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Invalid choice. Please try again.") {
		t.Fatalf("expected invalid choice message in %q", text)
	}
	if strings.Count(text, "--- Banking System ---") != 2 {
		t.Fatalf("expected the menu to be shown twice, got %q", text)
	}
	if !strings.HasSuffix(text, "Exiting...\n") {
		t.Fatalf("expected exit message, got %q", text)
	}
}

func TestRunStopsOnEOF(t *testing.T) {
	var out bytes.Buffer
	if err := New(strings.NewReader(""), &out, accountServiceStub{}).Run(context.Background()); err != nil {
		t.Fatalf("expected nil error on EOF, got %v", err)
	}
}

func TestCreateAccountRepromptsInvalidFields(t *testing.T) {
	var got models.CreateAccountRequest
	svc := accountServiceStub{
		createFn: func(_ context.Context, req models.CreateAccountRequest) (models.Response[models.CreateAccountResponse], error) {
			got = req
			return models.SuccessResponse("account created successfully", models.CreateAccountResponse{AccountNumber: "4455667788"}), nil
		},
	}

	input := lines(
		"1",
		"Ada1", "Ada Lovelace",
		"", "1990-01-01",
		"London",
		"password", "Passw0rd"+strings.Repeat("x", 70), "Passw0rd",
		"lots", "2000.005", "1999.99", "2000",
		"12345", "0123456789",
		"ada@example.co.uk", "ada@example.com",
		"12 St James's Square",
		"3",
	)

	var out bytes.Buffer
	if err := New(input, &out, svc).Run(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	text := out.String()
	if n := strings.Count(text, "Invalid password. Please enter again."); n != 2 {
		t.Errorf("expected both bad passwords to be rejected, got %d rejections", n)
	}
	for _, want := range []string{
		"Invalid name. Please enter again.",
		"Date of birth is required.",
		"Invalid password. Please enter again.",
		"Invalid amount. Please enter a number.",
		"Invalid amount. Use at most 2 decimal places.",
		"Minimum balance should be 2000.",
		"Invalid contact number. Please enter again.",
		"Invalid email. Please enter again.",
		"Account created successfully. Account Number: 4455667788",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in output", want)
		}
	}

	want := models.CreateAccountRequest{
		Name:           "Ada Lovelace",
		DateOfBirth:    "1990-01-01",
		City:           "London",
		Password:       "Passw0rd",
		InitialBalance: "2000",
		ContactNumber:  "0123456789",
		Email:          "ada@example.com",
		Address:        "12 St James's Square",
	}
	if got != want {
		t.Fatalf("unexpected request:\n got %+v\nwant %+v", got, want)
	}
}

func TestCreateAccountUsesPasswordReader(t *testing.T) {
	var got string
	svc := accountServiceStub{
		createFn: func(_ context.Context, req models.CreateAccountRequest) (models.Response[models.CreateAccountResponse], error) {
			got = req.Password
			return models.SuccessResponse("account created successfully", models.CreateAccountResponse{AccountNumber: "1"}), nil
		},
	}
	masked := WithPasswordReader(func() (string, error) { return "Secr3tPass", nil })

	input := lines("1", "Ada", "1990-01-01", "London", "2500", "0123456789", "ada@example.com", "Street", "3")
	var out bytes.Buffer
	if err := New(input, &out, svc, masked).Run(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got != "Secr3tPass" {
		t.Fatalf("expected password from reader, got %q", got)
	}
}

func TestCreateAccountReportsFailures(t *testing.T) {
	cases := map[string]struct {
		err  error
		resp models.Response[models.CreateAccountResponse]
		want string
	}{
		"collision": {
			err:  domain.ErrAccountNumberExhausted,
			resp: models.ErrorResponse[models.CreateAccountResponse]("failed to create account"),
			want: "Error: Account could not be created. Try again.",
		},
		"storage": {
			err:  domain.ErrStorageUnavailable,
			resp: models.ErrorResponse[models.CreateAccountResponse]("failed to create account", "Unable to create account right now"),
			want: "Error: failed to create account: Unable to create account right now.",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			svc := accountServiceStub{
				createFn: func(context.Context, models.CreateAccountRequest) (models.Response[models.CreateAccountResponse], error) {
					return tc.resp, tc.err
				},
			}

			input := lines("1", "Ada", "1990-01-01", "London", "Passw0rd", "2500", "0123456789", "ada@example.com", "Street", "3")
			var out bytes.Buffer
			if err := New(input, &out, svc).Run(context.Background()); err != nil {
				t.Fatalf("expected the shell to keep running, got %v", err)
			}
			if !strings.Contains(out.String(), tc.want) {
				t.Fatalf("expected %q in %q", tc.want, out.String())
			}
			if !strings.HasSuffix(out.String(), "Exiting...\n") {
				t.Fatal("expected the menu to come back after the failure")
			}
		})
	}
}

func TestShowAccounts(t *testing.T) {
	svc := accountServiceStub{
		listFn: func(context.Context) (models.Response[[]models.AccountResponse], error) {
			return models.SuccessResponse("accounts fetched successfully", []models.AccountResponse{
				{Name: "Ada Lovelace", AccountNumber: "1234567890", Balance: "2000.00", Status: "Active"},
				{Name: "Charles Babbage", AccountNumber: "9876543210", Balance: "5000.00", Status: "Inactive"},
			}), nil
		},
	}

	var out bytes.Buffer
	if err := New(lines("2", "3"), &out, svc).Run(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	text := out.String()
	for _, want := range []string{"Name: Ada Lovelace", "Account Number: 9876543210", "Status: Active", "Status: Inactive", "Balance: 5000.00"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestShowAccountsEmptyAndFailure(t *testing.T) {
	var out bytes.Buffer
	if err := New(lines("2", "3"), &out, accountServiceStub{}).Run(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out.String(), "No accounts found.") {
		t.Fatalf("expected empty message, got %q", out.String())
	}

	failing := accountServiceStub{
		listFn: func(context.Context) (models.Response[[]models.AccountResponse], error) {
			return models.ErrorResponse[[]models.AccountResponse]("failed to list accounts"), errors.New("database is locked")
		},
	}
	out.Reset()
	if err := New(lines("2", "3"), &out, failing).Run(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out.String(), "Error: failed to list accounts.") {
		t.Fatalf("expected failure message, got %q", out.String())
	}
}

func TestShellAgainstSQLite(t *testing.T) {
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "shell.db") + "?_foreign_keys=on"
	db, err := implementations.Open(ctx, config.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer db.Close()

	migrations, err := implementations.Migrations(config.DriverSQLite, "")
	if err != nil {
		t.Fatalf("load migrations: %v", err)
	}
	if err := implementations.RunMigrations(ctx, db, migrations); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	numbers, err := usecase.NewAccountNumberGenerator(10)
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	svc := usecase.NewAccountService(implementations.NewAccountRepository(db), numbers, 5, bcrypt.MinCost)

	input := lines("1", "Ada Lovelace", "1990-01-01", "London", "Passw0rd", "2500.50", "0123456789", "ada@example.com", "Street", "2", "3")
	var out bytes.Buffer
	if err := New(input, &out, svc).Run(ctx); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	text := out.String()
	for _, want := range []string{"Account created successfully. Account Number: ", "Name: Ada Lovelace", "Balance: 2500.50", "Status: Active"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in output:\n%s", want, text)
		}
	}
}
