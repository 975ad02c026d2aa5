package adapter

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-pet-locator/internal/utils"
)

func newHTTPClient(raw string, timeout time.Duration) (*utils.HTTPClient, error) {
	baseURL, err := normalizeBaseURL(raw)
	if err != nil {
		return nil, err
	}

	return utils.NewHTTPClient(baseURL, timeout), nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
