package usecase

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const maxAccountNumberDigits = 18

// AccountNumberGenerator draws account numbers of a fixed digit width,
// uniformly from [10^(digits-1), 10^digits-1]. It does not check the
// numbers against storage.
type AccountNumberGenerator struct {
	digits int
	min    *big.Int
	span   *big.Int
	random io.Reader
}

func NewAccountNumberGenerator(digits int) (*AccountNumberGenerator, error) {
	return newAccountNumberGenerator(digits, rand.Reader)
}

func newAccountNumberGenerator(digits int, random io.Reader) (*AccountNumberGenerator, error) {
	if digits < 1 || digits > maxAccountNumberDigits {
		return nil, fmt.Errorf("account number width must be between 1 and %d digits, got %d", maxAccountNumberDigits, digits)
	}

	lower := pow10(digits - 1)
	return &AccountNumberGenerator{
		digits: digits,
		min:    lower,
		span:   new(big.Int).Sub(pow10(digits), lower),
		random: random,
	}, nil
}

func (g *AccountNumberGenerator) Digits() int {
	return g.digits
}

func (g *AccountNumberGenerator) Generate() (string, error) {
	n, err := rand.Int(g.random, g.span)
	if err != nil {
		return "", fmt.Errorf("draw account number: %w", err)
	}

	return n.Add(n, g.min).String(), nil
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
