package validators

import (
	"math/big"

	"github.com/go-playground/validator/v10"
)

// primalityRounds is the number of Miller-Rabin rounds run by ProbablyPrime
const primalityRounds = 20

// PrimeValidation validates that a decimal string field holds a probable prime.
func PrimeValidation(fl validator.FieldLevel) bool {
	p, ok := new(big.Int).SetString(fl.Field().String(), 10)
	if !ok {
		return false
	}
	return p.Sign() > 0 && p.ProbablyPrime(primalityRounds)
}

// PublicExponentValidation validates that an integer field is an odd exponent of at least 3.
func PublicExponentValidation(fl validator.FieldLevel) bool {
	e := fl.Field().Int()
	return e >= 3 && e%2 == 1
}
