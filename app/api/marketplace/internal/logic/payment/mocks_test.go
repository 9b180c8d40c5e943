package payment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/fnadeau-1/wrestle-swap/app/client/shippo"
	stripeclient "github.com/fnadeau-1/wrestle-swap/app/client/stripe"
	productdal "github.com/fnadeau-1/wrestle-swap/app/dal/product"
)

var errMockStripe = errors.New("mock stripe error")

// fakeStripe implements the stripe client with per-method hooks and call
// recording.
type fakeStripe struct {
	CreateIntentFunc func(ctx context.Context, req stripeclient.IntentRequest) (*stripeclient.Intent, error)
	GetIntentFunc    func(ctx context.Context, id string) (*stripeclient.Intent, error)
	CreateRefundFunc func(ctx context.Context, req stripeclient.RefundRequest) (*stripeclient.Refund, error)

	IntentCalls []stripeclient.IntentRequest
	RefundCalls []stripeclient.RefundRequest
}

func (f *fakeStripe) CreatePaymentIntent(ctx context.Context, req stripeclient.IntentRequest) (*stripeclient.Intent, error) {
	f.IntentCalls = append(f.IntentCalls, req)
	if f.CreateIntentFunc != nil {
		return f.CreateIntentFunc(ctx, req)
	}
	return &stripeclient.Intent{ID: "pi_test", ClientSecret: "pi_test_secret", AmountCents: req.AmountCents}, nil
}

func (f *fakeStripe) GetPaymentIntent(ctx context.Context, id string) (*stripeclient.Intent, error) {
	if f.GetIntentFunc != nil {
		return f.GetIntentFunc(ctx, id)
	}
	return &stripeclient.Intent{ID: id, AmountCents: 2000, LatestChargeID: "ch_test"}, nil
}

func (f *fakeStripe) CreateRefund(ctx context.Context, req stripeclient.RefundRequest) (*stripeclient.Refund, error) {
	f.RefundCalls = append(f.RefundCalls, req)
	if f.CreateRefundFunc != nil {
		return f.CreateRefundFunc(ctx, req)
	}
	return &stripeclient.Refund{ID: "re_test", AmountCents: req.AmountCents, Status: "succeeded"}, nil
}

func (f *fakeStripe) CreateConnectAccount(ctx context.Context, email string) (*stripeclient.ConnectAccount, error) {
	return nil, errMockStripe
}

func (f *fakeStripe) CreateAccountLink(ctx context.Context, accountID, returnURL, refreshURL string) (string, error) {
	return "", errMockStripe
}

func (f *fakeStripe) GetAccount(ctx context.Context, accountID string) (*stripeclient.ConnectAccount, error) {
	return nil, errMockStripe
}

type fakeShippo struct {
	VoidFunc  func(ctx context.Context, transactionID string) error
	VoidCalls []string
}

func (f *fakeShippo) CreateShipment(ctx context.Context, req shippo.ShipmentRequest) ([]json.RawMessage, error) {
	return nil, errors.New("not used")
}

func (f *fakeShippo) PurchaseLabel(ctx context.Context, rateObjectID, labelFileType string) (*shippo.Transaction, error) {
	return nil, errors.New("not used")
}

func (f *fakeShippo) VoidLabel(ctx context.Context, transactionID string) error {
	f.VoidCalls = append(f.VoidCalls, transactionID)
	if f.VoidFunc != nil {
		return f.VoidFunc(ctx, transactionID)
	}
	return nil
}

type fakeProducts struct {
	MarkUnsoldFunc  func(ctx context.Context, id int64) error
	MarkUnsoldCalls []int64
}

func (f *fakeProducts) Insert(ctx context.Context, data *productdal.Products) (sql.Result, error) {
	return nil, errors.New("not used")
}

func (f *fakeProducts) FindOne(ctx context.Context, id int64) (*productdal.Products, error) {
	return nil, productdal.ErrNotFound
}

func (f *fakeProducts) Update(ctx context.Context, data *productdal.Products) error {
	return errors.New("not used")
}

func (f *fakeProducts) Delete(ctx context.Context, id int64) error {
	return errors.New("not used")
}

func (f *fakeProducts) FindStaleSoldIds(ctx context.Context, soldBeforeMs int64, limit int) ([]int64, error) {
	return nil, nil
}

func (f *fakeProducts) DeleteBatch(ctx context.Context, ids []int64) error {
	return nil
}

func (f *fakeProducts) MarkUnsold(ctx context.Context, id int64) error {
	f.MarkUnsoldCalls = append(f.MarkUnsoldCalls, id)
	if f.MarkUnsoldFunc != nil {
		return f.MarkUnsoldFunc(ctx, id)
	}
	return nil
}
