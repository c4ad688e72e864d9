// Package codegen implements employee code generation.
package codegen

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"staffgate/internal/domain/service"
)

const (
	codeMin   = 100000
	codeRange = 900000
)

// randomGenerator draws candidate codes uniformly from 100000-999999 using
// crypto/rand, so codes are not guessable from earlier allocations.
type randomGenerator struct{}

// NewRandomGenerator is the constructor for randomGenerator.
func NewRandomGenerator() service.CodeGenerator {
	return &randomGenerator{}
}

// Candidate returns one 6-digit candidate code.
func (g *randomGenerator) Candidate() string {
	n, err := rand.Int(rand.Reader, big.NewInt(codeRange))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken;
		// nothing sensible can continue past that.
		panic(err)
	}

	return strconv.FormatInt(codeMin+n.Int64(), 10)
}
