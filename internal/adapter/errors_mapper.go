package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Revert reasons the contract and the signer use. Matching is case-insensitive.
const (
	reasonUserRejected    = "user rejected transaction"
	reasonAlreadyVerified = "data already verified"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if err := mapLedgerError(body); err != nil {
		return err
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// mapLedgerError classifies a revert or signer message. It returns nil when
// the message carries no known reason.
func mapLedgerError(msg string) error {
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, reasonUserRejected):
		return fmt.Errorf("%w: %s", ErrUserRejected, msg)
	case strings.Contains(lower, reasonAlreadyVerified):
		return fmt.Errorf("%w: %s", ErrAlreadyVerified, msg)
	default:
		return nil
	}
}
