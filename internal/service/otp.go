package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Generator produces one-time passcodes for account verification and
// password recovery.
type Generator interface {
	Generate() (int64, error)
}

// NewGenerator returns the production Generator: a uniformly random
// five-digit code drawn from crypto/rand.
func NewGenerator() Generator {
	return randomGenerator{}
}

type randomGenerator struct{}

func (randomGenerator) Generate() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(90000))
	if err != nil {
		return 0, fmt.Errorf("otp generation failed: %w", err)
	}
	return 10000 + n.Int64(), nil
}

// StaticGenerator always returns its own value. Test use only.
type StaticGenerator int64

func (g StaticGenerator) Generate() (int64, error) {
	return int64(g), nil
}
