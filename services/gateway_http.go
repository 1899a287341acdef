package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// HTTPGateway talks to the remote payment provider's REST API. It implements
// PaymentGateway; swap in a fake for tests.
type HTTPGateway struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewHTTPGateway(baseURL, apiKey string) *HTTPGateway {
	return &HTTPGateway{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *HTTPGateway) CreateIntent(amount float64, receipt string) (string, error) {
	if g.BaseURL == "" {
		return "", errors.New("payment gateway not configured")
	}

	body, _ := json.Marshal(map[string]any{
		// gateways take minor units
		"amount":   int64(amount * 100),
		"currency": "INR",
		"receipt":  receipt,
	})
	req, err := http.NewRequest(http.MethodPost, g.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.APIKey)

	res, err := g.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return "", fmt.Errorf("gateway returned %s", res.Status)
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", errors.New("gateway response missing intent id")
	}
	return out.ID, nil
}
