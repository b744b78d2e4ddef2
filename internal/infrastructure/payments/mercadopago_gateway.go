package payments

import (
	"context"
	"errors"
	"fmt"
	"log"

	"campus_trade/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway is the alternative provider behind the same gateway
// contract: a checkout preference gives the hosted checkout URL, and charge
// status is resolved by searching payments by external_reference.

type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) InitializeCharge(ctx context.Context, req interfaces.ChargeRequest) (interfaces.Charge, error) {
	resp, err := g.preferences.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      fmt.Sprintf("Posting fee %s", req.Reference),
				Quantity:   1,
				UnitPrice:  req.Amount,
				CurrencyID: req.Currency,
			},
		},
		ExternalReference: req.Reference,
		Payer: &preference.PayerRequest{
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
		},
		BackURLs: &preference.BackURLsRequest{
			Success: req.RedirectURL,
			Pending: req.RedirectURL,
			Failure: req.RedirectURL,
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] preference create failed reference=%s err=%v", req.Reference, err)
		return interfaces.Charge{}, err
	}
	log.Printf("[payment][gateway] preference created reference=%s preference_id=%s", req.Reference, resp.ID)

	return interfaces.Charge{
		CheckoutURL: resp.InitPoint,
		Reference:   req.Reference,
	}, nil
}

func (g *MercadoPagoGateway) GetChargeStatus(ctx context.Context, reference string) (interfaces.ChargeStatus, error) {
	resp, err := g.payments.Search(ctx, payment.SearchRequest{
		Filters: map[string]string{
			"external_reference": reference,
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] payment search failed reference=%s err=%v", reference, err)
		return "", err
	}
	if len(resp.Results) == 0 {
		// No payment yet for this preference: the buyer has not completed
		// checkout, which is an indeterminate state, not a failure.
		return interfaces.ChargeStatusPending, nil
	}

	status := resp.Results[0].Status
	log.Printf("[payment][gateway] payment status reference=%s provider_status=%s", reference, status)

	switch status {
	case "approved":
		return interfaces.ChargeStatusSuccess, nil
	case "rejected", "cancelled", "refunded", "charged_back":
		return interfaces.ChargeStatusFailed, nil
	default:
		return interfaces.ChargeStatusPending, nil
	}
}
