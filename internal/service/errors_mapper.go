// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pet-locator/internal/adapter"
)

// mapCreateError translates a Create collaborator failure into a service error.
func mapCreateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrUserRejected):
		return fmt.Errorf("%w: %w", ErrUserCancelled, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	default:
		return fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
}

// mapRevealError translates a Reveal collaborator failure into a service error.
func mapRevealError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrAlreadyVerified):
		return fmt.Errorf("%w: %w", ErrAlreadyVerified, err)
	case errors.Is(err, adapter.ErrUserRejected):
		return fmt.Errorf("%w: %w", ErrUserCancelled, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	default:
		return fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
}
