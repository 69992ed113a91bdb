package domain

import "errors"

var ErrValidation = errors.New("validation failed")
var ErrDuplicateAccountNumber = errors.New("account number already exists")
var ErrAccountNumberExhausted = errors.New("no free account number after retries")
var ErrBelowMinimumBalance = errors.New("balance is below the minimum opening balance")
var ErrStorageUnavailable = errors.New("storage unavailable")
