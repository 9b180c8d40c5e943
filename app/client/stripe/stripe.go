// Package stripe wraps the Stripe SDK behind a narrow interface so logic
// code can be exercised against fakes.
package stripe

import (
	"context"

	stripesdk "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// IntentRequest carries everything needed to open a payment intent.
// A zero ApplicationFeeCents together with an empty DestinationAccountID
// means no marketplace split: all proceeds stay on the platform account.
type IntentRequest struct {
	AmountCents          int64
	Currency             string
	ApplicationFeeCents  int64
	DestinationAccountID string
	Metadata             map[string]string
	IdempotencyKey       string
}

type Intent struct {
	ID             string
	ClientSecret   string
	Status         string
	AmountCents    int64
	Currency       string
	LatestChargeID string
}

type RefundRequest struct {
	PaymentIntentID string
	AmountCents     int64
	Metadata        map[string]string
	IdempotencyKey  string
}

type Refund struct {
	ID          string
	AmountCents int64
	Status      string
}

type ConnectAccount struct {
	ID               string
	ChargesEnabled   bool
	DetailsSubmitted bool
	PayoutsEnabled   bool
}

type Client interface {
	CreatePaymentIntent(ctx context.Context, req IntentRequest) (*Intent, error)
	GetPaymentIntent(ctx context.Context, id string) (*Intent, error)
	CreateRefund(ctx context.Context, req RefundRequest) (*Refund, error)
	CreateConnectAccount(ctx context.Context, email string) (*ConnectAccount, error)
	CreateAccountLink(ctx context.Context, accountID, returnURL, refreshURL string) (string, error)
	GetAccount(ctx context.Context, accountID string) (*ConnectAccount, error)
}

var _ Client = (*apiClient)(nil)

type apiClient struct {
	sc *client.API
}

// New constructs a client bound to the given secret key. The SDK handle is
// built once here and shared; nothing in this package touches the package
// level stripe.Key singleton.
func New(secretKey string) Client {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &apiClient{sc: sc}
}

func (c *apiClient) CreatePaymentIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	params := &stripesdk.PaymentIntentParams{
		Amount:   stripesdk.Int64(req.AmountCents),
		Currency: stripesdk.String(req.Currency),
		AutomaticPaymentMethods: &stripesdk.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripesdk.Bool(true),
		},
	}
	params.Context = ctx
	if req.DestinationAccountID != "" {
		params.ApplicationFeeAmount = stripesdk.Int64(req.ApplicationFeeCents)
		params.TransferData = &stripesdk.PaymentIntentTransferDataParams{
			Destination: stripesdk.String(req.DestinationAccountID),
		}
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	pi, err := c.sc.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return toIntent(pi), nil
}

func (c *apiClient) GetPaymentIntent(ctx context.Context, id string) (*Intent, error) {
	params := &stripesdk.PaymentIntentParams{}
	params.Context = ctx
	pi, err := c.sc.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, err
	}
	return toIntent(pi), nil
}

func (c *apiClient) CreateRefund(ctx context.Context, req RefundRequest) (*Refund, error) {
	params := &stripesdk.RefundParams{
		PaymentIntent: stripesdk.String(req.PaymentIntentID),
		Amount:        stripesdk.Int64(req.AmountCents),
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	re, err := c.sc.Refunds.New(params)
	if err != nil {
		return nil, err
	}
	return &Refund{
		ID:          re.ID,
		AmountCents: re.Amount,
		Status:      string(re.Status),
	}, nil
}

func (c *apiClient) CreateConnectAccount(ctx context.Context, email string) (*ConnectAccount, error) {
	params := &stripesdk.AccountParams{
		Type:         stripesdk.String(string(stripesdk.AccountTypeExpress)),
		Country:      stripesdk.String("US"),
		Email:        stripesdk.String(email),
		BusinessType: stripesdk.String(string(stripesdk.AccountBusinessTypeIndividual)),
		Capabilities: &stripesdk.AccountCapabilitiesParams{
			CardPayments: &stripesdk.AccountCapabilitiesCardPaymentsParams{
				Requested: stripesdk.Bool(true),
			},
			Transfers: &stripesdk.AccountCapabilitiesTransfersParams{
				Requested: stripesdk.Bool(true),
			},
		},
	}
	params.Context = ctx

	acct, err := c.sc.Accounts.New(params)
	if err != nil {
		return nil, err
	}
	return toConnectAccount(acct), nil
}

func (c *apiClient) CreateAccountLink(ctx context.Context, accountID, returnURL, refreshURL string) (string, error) {
	params := &stripesdk.AccountLinkParams{
		Account:    stripesdk.String(accountID),
		ReturnURL:  stripesdk.String(returnURL),
		RefreshURL: stripesdk.String(refreshURL),
		Type:       stripesdk.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := c.sc.AccountLinks.New(params)
	if err != nil {
		return "", err
	}
	return link.URL, nil
}

func (c *apiClient) GetAccount(ctx context.Context, accountID string) (*ConnectAccount, error) {
	params := &stripesdk.AccountParams{}
	params.Context = ctx
	acct, err := c.sc.Accounts.GetByID(accountID, params)
	if err != nil {
		return nil, err
	}
	return toConnectAccount(acct), nil
}

func toIntent(pi *stripesdk.PaymentIntent) *Intent {
	out := &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		AmountCents:  pi.Amount,
		Currency:     string(pi.Currency),
	}
	if pi.LatestCharge != nil {
		out.LatestChargeID = pi.LatestCharge.ID
	}
	return out
}

func toConnectAccount(acct *stripesdk.Account) *ConnectAccount {
	return &ConnectAccount{
		ID:               acct.ID,
		ChargesEnabled:   acct.ChargesEnabled,
		DetailsSubmitted: acct.DetailsSubmitted,
		PayoutsEnabled:   acct.PayoutsEnabled,
	}
}

// ErrorMessage extracts the human readable message from a Stripe SDK error,
// falling back to the raw error text.
func ErrorMessage(err error) string {
	if serr, ok := err.(*stripesdk.Error); ok && serr.Msg != "" {
		return serr.Msg
	}
	return err.Error()
}
