package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"campus_trade/internal/usecase/interfaces"
)

var ErrMissingKorapaySecretKey = errors.New("missing KORAPAY_SECRET_KEY")

// KorapayGateway talks to the Korapay charges REST API. There is no official
// Go SDK; the two endpoints this service needs (initialize a hosted checkout,
// poll a charge by reference) are called directly.
//
// Exactly one HTTP attempt per call. The client timeout is the configured
// request timeout; a timeout surfaces as an error the coordinator maps to
// GatewayUnavailable.

type KorapayGateway struct {
	client    *http.Client
	baseURL   string
	secretKey string
	mockMode  bool
}

var _ interfaces.IPaymentGateway = (*KorapayGateway)(nil)

func NewKorapayGateway(baseURL, secretKey string, timeout time.Duration) (*KorapayGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &KorapayGateway{mockMode: true}, nil
	}

	if secretKey == "" {
		log.Printf("[payment][gateway] missing KORAPAY_SECRET_KEY")
		return nil, ErrMissingKorapaySecretKey
	}

	return &KorapayGateway{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
	}, nil
}

type korapayCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type korapayInitializeRequest struct {
	Amount      float64         `json:"amount"`
	Currency    string          `json:"currency"`
	Reference   string          `json:"reference"`
	Customer    korapayCustomer `json:"customer"`
	RedirectURL string          `json:"redirect_url"`
}

type korapayChargeData struct {
	Reference   string `json:"reference"`
	CheckoutURL string `json:"checkout_url"`
	Status      string `json:"status"`
}

type korapayEnvelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    korapayChargeData `json:"data"`
}

func (g *KorapayGateway) InitializeCharge(ctx context.Context, req interfaces.ChargeRequest) (interfaces.Charge, error) {
	if g.mockMode {
		log.Printf("[payment][gateway] mock initialize reference=%s amount=%.2f", req.Reference, req.Amount)
		return interfaces.Charge{
			CheckoutURL: "https://checkout.korapay.test/" + req.Reference,
			Reference:   req.Reference,
		}, nil
	}

	body, err := json.Marshal(korapayInitializeRequest{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Reference:   req.Reference,
		Customer:    korapayCustomer{Name: req.CustomerName, Email: req.CustomerEmail},
		RedirectURL: req.RedirectURL,
	})
	if err != nil {
		return interfaces.Charge{}, err
	}

	var envelope korapayEnvelope
	if err := g.do(ctx, http.MethodPost, g.baseURL+"/charges/initialize", bytes.NewReader(body), &envelope); err != nil {
		return interfaces.Charge{}, err
	}
	if !envelope.Status {
		return interfaces.Charge{}, fmt.Errorf("korapay initialize rejected: %s", envelope.Message)
	}
	log.Printf("[payment][gateway] charge initialized reference=%s", envelope.Data.Reference)

	return interfaces.Charge{
		CheckoutURL: envelope.Data.CheckoutURL,
		Reference:   envelope.Data.Reference,
	}, nil
}

func (g *KorapayGateway) GetChargeStatus(ctx context.Context, reference string) (interfaces.ChargeStatus, error) {
	if g.mockMode {
		log.Printf("[payment][gateway] mock status reference=%s status=success", reference)
		return interfaces.ChargeStatusSuccess, nil
	}

	var envelope korapayEnvelope
	if err := g.do(ctx, http.MethodGet, g.baseURL+"/charges/"+reference, nil, &envelope); err != nil {
		return "", err
	}
	log.Printf("[payment][gateway] charge status reference=%s status=%s", reference, envelope.Data.Status)

	switch strings.ToLower(envelope.Data.Status) {
	case "success":
		return interfaces.ChargeStatusSuccess, nil
	case "failed", "expired":
		return interfaces.ChargeStatusFailed, nil
	default:
		return interfaces.ChargeStatusPending, nil
	}
}

func (g *KorapayGateway) do(ctx context.Context, method, url string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("korapay %s %s: status %d: %s", method, url, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return json.Unmarshal(raw, out)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "KORAPAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
