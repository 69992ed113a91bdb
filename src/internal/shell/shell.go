// Package shell is the interactive text menu in front of the account service.
// It owns every re-prompt loop, so requests it hands to the service have
// already passed the validation gates.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Deepanshipatil/Banking-application/src/internal/adapter/http/models"
	"github.com/Deepanshipatil/Banking-application/src/internal/domain"
	"github.com/Deepanshipatil/Banking-application/src/internal/usecase/service_interfaces"
	"github.com/Deepanshipatil/Banking-application/src/internal/validation"
)

const (
	passwordPrompt = "Enter password (8 to 72 chars, 1 digit, 1 uppercase): "
	balancePrompt  = "Enter initial balance (min 2000): "
)

// PasswordReader reads one password after its prompt has been printed.
type PasswordReader func() (string, error)

type Shell struct {
	in           *bufio.Reader
	out          io.Writer
	service      service_interfaces.AccountService
	readPassword PasswordReader
}

type Option func(*Shell)

// WithPasswordReader replaces the plain line read used for passwords, e.g.
// with one that disables terminal echo.
func WithPasswordReader(read PasswordReader) Option {
	return func(s *Shell) {
		s.readPassword = read
	}
}

func New(in io.Reader, out io.Writer, service service_interfaces.AccountService, opts ...Option) *Shell {
	s := &Shell{
		in:      bufio.NewReader(in),
		out:     out,
		service: service,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.readPassword == nil {
		s.readPassword = s.readLine
	}
	return s
}

// Run shows the menu until the user exits or input ends. Failed operations
// are reported and the menu comes back; only I/O errors end the loop early.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.printf("\n--- Banking System ---\n")
		s.printf("1. Create Account\n")
		s.printf("2. Show Accounts\n")
		s.printf("3. Exit\n")

		choice, err := s.prompt("Enter your choice: ")
		if err != nil {
			return ignoreEOF(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if err := s.createAccount(ctx); err != nil {
				return ignoreEOF(err)
			}
		case "2":
			s.showAccounts(ctx)
		case "3":
			s.printf("Exiting...\n")
			return nil
		default:
			s.printf("Invalid choice. Please try again.\n")
		}
	}
}

func (s *Shell) createAccount(ctx context.Context) error {
	s.printf("\n--- Create Account ---\n")

	var req models.CreateAccountRequest
	var err error

	if req.Name, err = s.promptUntil("Enter name: ", "Invalid name. Please enter again.", validation.IsValidName); err != nil {
		return err
	}
	if req.DateOfBirth, err = s.promptUntil("Enter Date of Birth (YYYY-MM-DD): ", "Date of birth is required.", validation.IsPresent); err != nil {
		return err
	}
	if req.City, err = s.prompt("Enter city: "); err != nil {
		return err
	}
	if req.Password, err = s.promptPassword(); err != nil {
		return err
	}
	if req.InitialBalance, err = s.promptBalance(); err != nil {
		return err
	}
	if req.ContactNumber, err = s.promptUntil("Enter contact number: ", "Invalid contact number. Please enter again.", validation.IsValidContactNumber); err != nil {
		return err
	}
	if req.Email, err = s.promptUntil("Enter email: ", "Invalid email. Please enter again.", validation.IsValidEmail); err != nil {
		return err
	}
	if req.Address, err = s.prompt("Enter address: "); err != nil {
		return err
	}

	resp, err := s.service.CreateAccount(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNumberExhausted) || errors.Is(err, domain.ErrDuplicateAccountNumber) {
			s.printf("Error: Account could not be created. Try again.\n")
			return nil
		}
		s.printf("Error: %s.\n", describe(resp.Message, resp.Errors))
		return nil
	}

	s.printf("Account created successfully. Account Number: %s\n", resp.Data.AccountNumber)
	return nil
}

func (s *Shell) showAccounts(ctx context.Context) {
	s.printf("\n--- Account Information ---\n")

	resp, err := s.service.ListAccounts(ctx)
	if err != nil {
		s.printf("Error: %s.\n", describe(resp.Message, resp.Errors))
		return
	}

	if resp.Data == nil || len(*resp.Data) == 0 {
		s.printf("No accounts found.\n")
		return
	}

	for _, a := range *resp.Data {
		s.printf("Name: %s\n", a.Name)
		s.printf("Account Number: %s\n", a.AccountNumber)
		s.printf("DOB: %s\n", a.DateOfBirth)
		s.printf("City: %s\n", a.City)
		s.printf("Balance: %s\n", a.Balance)
		s.printf("Contact: %s\n", a.ContactNumber)
		s.printf("Email: %s\n", a.Email)
		s.printf("Address: %s\n", a.Address)
		s.printf("Status: %s\n", a.Status)
		s.printf("---\n")
	}
}

func (s *Shell) promptUntil(label, invalid string, valid func(string) bool) (string, error) {
	for {
		value, err := s.prompt(label)
		if err != nil {
			return "", err
		}
		if valid(value) {
			return value, nil
		}
		s.printf("%s\n", invalid)
	}
}

func (s *Shell) promptPassword() (string, error) {
	for {
		s.printf("%s", passwordPrompt)
		password, err := s.readPassword()
		if err != nil {
			return "", err
		}
		if validation.IsValidPassword(password) {
			return password, nil
		}
		s.printf("Invalid password. Please enter again.\n")
	}
}

func (s *Shell) promptBalance() (string, error) {
	for {
		raw, err := s.prompt(balancePrompt)
		if err != nil {
			return "", err
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			s.printf("Invalid amount. Please enter a number.\n")
			continue
		}
		if !validation.HasBalanceScale(amount) {
			s.printf("Invalid amount. Use at most %d decimal places.\n", domain.BalanceScale)
			continue
		}
		if !validation.IsValidOpeningBalance(amount) {
			s.printf("Minimum balance should be %s.\n", domain.MinOpeningBalance)
			continue
		}
		return strings.TrimSpace(raw), nil
	}
}

func (s *Shell) prompt(label string) (string, error) {
	s.printf("%s", label)
	return s.readLine()
}

// readLine returns the next line without its terminator. A final line with
// no newline is still returned; io.EOF only comes back once input is empty.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func describe(message string, details []string) string {
	if message == "" {
		message = "operation failed"
	}
	if len(details) == 0 {
		return message
	}
	return message + ": " + strings.Join(details, "; ")
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
