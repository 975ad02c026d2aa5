// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec converts real-valued coordinates to and from the signed
// fixed-point integers that are encrypted and stored on the ledger.
//
// Values are scaled by [Scale] and rounded to the nearest integer, so the
// encoding is lossy below 1e-6 degree (about 0.11 m at the equator). Within
// that precision Decode is the exact inverse of Encode.
package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pet-locator/models"
)

// Scale is the fixed-point factor applied to coordinates.
const Scale = 1_000_000

var (
	// ErrEmptyValue is returned by Parse for blank input.
	ErrEmptyValue = errors.New("empty value")
	// ErrNotANumber is returned by Parse when the input is not a finite number.
	ErrNotANumber = errors.New("value is not a finite number")
	// ErrOutOfRange is returned when an encoded value would not fit into int64.
	ErrOutOfRange = errors.New("value out of range")
)

// Encode returns round(v * 10^6). Half-way cases round away from zero.
func Encode(v float64) int64 {
	return int64(math.Round(v * Scale))
}

// Decode returns i / 10^6.
func Decode(i int64) float64 {
	return float64(i) / Scale
}

// Parse trims s, parses it as a float and returns its encoded form.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyValue
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}

	scaled := math.Round(v * Scale)
	// float64(math.MaxInt64) rounds up to 2^63, which is itself out of range.
	if scaled >= math.MaxInt64 || scaled < math.MinInt64 {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}

	return int64(scaled), nil
}

// DecodeCoordinates builds a decoded coordinate pair from the encoded
// confidential latitude and public longitude.
func DecodeCoordinates(latitude, longitude int64) models.Coordinates {
	return models.Coordinates{
		Latitude:  Decode(latitude),
		Longitude: Decode(longitude),
	}
}
