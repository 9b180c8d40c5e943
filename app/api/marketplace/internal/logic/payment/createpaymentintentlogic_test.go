package payment

import (
	"context"
	"testing"

	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/svc"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/types"
	stripeclient "github.com/fnadeau-1/wrestle-swap/app/client/stripe"
	"github.com/fnadeau-1/wrestle-swap/app/common/consts/errno"
)

func TestCreatePaymentIntent_RejectsNonPositiveAmount(t *testing.T) {
	stripe := &fakeStripe{}
	l := NewCreatePaymentIntentLogic(context.Background(), &svc.ServiceContext{Stripe: stripe})

	for _, amount := range []int64{0, -100} {
		resp, err := l.CreatePaymentIntent(&types.CreatePaymentIntentRequest{Amount: amount})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Status_code != errno.InvalidParam {
			t.Errorf("amount %d: status = %d, want %d", amount, resp.Status_code, errno.InvalidParam)
		}
	}
	if len(stripe.IntentCalls) != 0 {
		t.Errorf("processor called %d times for invalid amounts, want 0", len(stripe.IntentCalls))
	}
}

func TestCreatePaymentIntent_UnconfiguredProcessor(t *testing.T) {
	l := NewCreatePaymentIntentLogic(context.Background(), &svc.ServiceContext{})

	resp, err := l.CreatePaymentIntent(&types.CreatePaymentIntentRequest{Amount: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status_code != errno.ConfigError {
		t.Errorf("status = %d, want %d", resp.Status_code, errno.ConfigError)
	}
}

func TestCreatePaymentIntent_NoSplitWithoutSellerAccount(t *testing.T) {
	stripe := &fakeStripe{}
	l := NewCreatePaymentIntentLogic(context.Background(), &svc.ServiceContext{Stripe: stripe})

	resp, err := l.CreatePaymentIntent(&types.CreatePaymentIntentRequest{Amount: 1600})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status_code != errno.StatusOK {
		t.Fatalf("status = %d, want %d (%s)", resp.Status_code, errno.StatusOK, resp.Status_msg)
	}
	if len(stripe.IntentCalls) != 1 {
		t.Fatalf("processor called %d times, want 1", len(stripe.IntentCalls))
	}
	call := stripe.IntentCalls[0]
	if call.DestinationAccountID != "" || call.ApplicationFeeCents != 0 {
		t.Errorf("unexpected split: destination %q fee %d", call.DestinationAccountID, call.ApplicationFeeCents)
	}
	if call.Currency != "usd" {
		t.Errorf("currency = %q, want usd default", call.Currency)
	}
	if call.IdempotencyKey == "" {
		t.Error("expected a minted idempotency key")
	}
}

func TestCreatePaymentIntent_AttachesDestinationSplit(t *testing.T) {
	stripe := &fakeStripe{}
	l := NewCreatePaymentIntentLogic(context.Background(), &svc.ServiceContext{Stripe: stripe})

	resp, err := l.CreatePaymentIntent(&types.CreatePaymentIntentRequest{
		Amount:          1600,
		Product_amount:  1000,
		Shipping_amount: 500,
		Tax_amount:      100,
		Seller_account:  "acct_seller",
		Product_id:      42,
		Idempotency_key: "client-key-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status_code != errno.StatusOK {
		t.Fatalf("status = %d (%s)", resp.Status_code, resp.Status_msg)
	}
	if resp.Payment_intent_id != "pi_test" || resp.Client_secret != "pi_test_secret" {
		t.Errorf("response ids = %q/%q", resp.Payment_intent_id, resp.Client_secret)
	}

	call := stripe.IntentCalls[0]
	if call.DestinationAccountID != "acct_seller" {
		t.Errorf("destination = %q, want acct_seller", call.DestinationAccountID)
	}
	// Platform keeps 10% of the $10.00 product plus shipping and tax: $7.00.
	if call.ApplicationFeeCents != 700 {
		t.Errorf("application fee = %d, want 700", call.ApplicationFeeCents)
	}
	if call.IdempotencyKey != "client-key-1" {
		t.Errorf("idempotency key = %q, want client-key-1", call.IdempotencyKey)
	}
	for k, want := range map[string]string{
		"product_amount":  "1000",
		"shipping_amount": "500",
		"tax_amount":      "100",
		"platform_fee":    "100",
		"seller_receives": "900",
		"product_id":      "42",
	} {
		if got := call.Metadata[k]; got != want {
			t.Errorf("metadata[%s] = %q, want %q", k, got, want)
		}
	}
}

func TestCreatePaymentIntent_ProcessorFailure(t *testing.T) {
	stripe := &fakeStripe{
		CreateIntentFunc: func(ctx context.Context, req stripeclient.IntentRequest) (*stripeclient.Intent, error) {
			return nil, errMockStripe
		},
	}
	l := NewCreatePaymentIntentLogic(context.Background(), &svc.ServiceContext{Stripe: stripe})

	resp, err := l.CreatePaymentIntent(&types.CreatePaymentIntentRequest{Amount: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status_code != errno.StripeError {
		t.Errorf("status = %d, want %d", resp.Status_code, errno.StripeError)
	}
	if resp.Status_msg == "" {
		t.Error("expected a relayed failure message")
	}
}
