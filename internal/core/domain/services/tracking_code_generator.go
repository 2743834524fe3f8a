package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/pkg/errs"
)

// ErrTrackingCodeSpaceExhausted is returned when the generator cannot find an
// unused tracking code within its retry budget. With an 8-character
// alphanumeric body this signals either a near-full code space or a broken
// uniqueness check.
var ErrTrackingCodeSpaceExhausted = errors.New("tracking code space exhausted")

// codeCharset is the alphabet of the 8-character code body.
const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// maxGenerateAttempts bounds the uniqueness retry loop.
const maxGenerateAttempts = 5

var codePrefixPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// CodeExistsFunc reports whether a candidate code is already assigned.
type CodeExistsFunc func(ctx context.Context, code fulfillment.TrackingCode) (bool, error)

// TrackingCodeGenerator is a domain service minting public tracking codes:
// a fixed 3-letter marketplace prefix followed by 8 random uppercase
// alphanumerics.
//
// The random source is injected so tests can make generation deterministic.
type TrackingCodeGenerator struct {
	prefix string
	intN   func(n int) int
}

// NewTrackingCodeGenerator creates a generator with the given marketplace
// prefix, drawing randomness from the shared PCG source.
func NewTrackingCodeGenerator(prefix string) (*TrackingCodeGenerator, error) {
	return NewTrackingCodeGeneratorWithRand(prefix, rand.IntN)
}

// NewTrackingCodeGeneratorWithRand creates a generator with an explicit
// random source.
func NewTrackingCodeGeneratorWithRand(prefix string, intN func(n int) int) (*TrackingCodeGenerator, error) {
	if prefix == "" {
		return nil, errs.NewValueIsRequiredError("tracking code prefix")
	}
	if !codePrefixPattern.MatchString(prefix) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"tracking code prefix",
			fmt.Errorf("%q is not three uppercase letters", prefix),
		)
	}
	if intN == nil {
		return nil, errs.NewValueIsRequiredError("random source")
	}
	return &TrackingCodeGenerator{prefix: prefix, intN: intN}, nil
}

// Generate mints one candidate code. Candidates are uniformly random over the
// code body alphabet; uniqueness is the caller's concern.
func (g *TrackingCodeGenerator) Generate() fulfillment.TrackingCode {
	var b strings.Builder
	b.Grow(fulfillment.TrackingCodeLength)
	b.WriteString(g.prefix)
	for i := 0; i < fulfillment.TrackingCodeLength-len(g.prefix); i++ {
		b.WriteByte(codeCharset[g.intN(len(codeCharset))])
	}
	code, err := fulfillment.NewTrackingCode(b.String())
	if err != nil {
		// Unreachable: the builder emits exactly the validated format.
		panic(err)
	}
	return code
}

// GenerateUnique mints a code the exists predicate reports as unused,
// retrying on collisions. After the retry budget is spent it fails with
// ErrTrackingCodeSpaceExhausted.
func (g *TrackingCodeGenerator) GenerateUnique(ctx context.Context, exists CodeExistsFunc) (fulfillment.TrackingCode, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		code := g.Generate()
		taken, err := exists(ctx, code)
		if err != nil {
			return fulfillment.TrackingCode{}, err
		}
		if !taken {
			return code, nil
		}
	}
	return fulfillment.TrackingCode{}, ErrTrackingCodeSpaceExhausted
}
