package seller

import (
	"context"
	"database/sql"
	"errors"

	stripeclient "github.com/fnadeau-1/wrestle-swap/app/client/stripe"
	userdal "github.com/fnadeau-1/wrestle-swap/app/dal/user"
)

var errMockStripe = errors.New("mock stripe error")

type fakeSellers struct {
	rows map[string]*userdal.Sellers

	SaveCalls []string
	SaveErr   error
}

func newFakeSellers() *fakeSellers {
	return &fakeSellers{rows: map[string]*userdal.Sellers{}}
}

func (f *fakeSellers) Insert(ctx context.Context, data *userdal.Sellers) (sql.Result, error) {
	return nil, errors.New("not used")
}

func (f *fakeSellers) FindOne(ctx context.Context, userId string) (*userdal.Sellers, error) {
	if row, ok := f.rows[userId]; ok {
		return row, nil
	}
	return nil, userdal.ErrNotFound
}

func (f *fakeSellers) Update(ctx context.Context, data *userdal.Sellers) error {
	return errors.New("not used")
}

func (f *fakeSellers) Delete(ctx context.Context, userId string) error {
	return errors.New("not used")
}

func (f *fakeSellers) SaveAccountMapping(ctx context.Context, userId, email, accountId string) error {
	f.SaveCalls = append(f.SaveCalls, userId)
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.rows[userId] = &userdal.Sellers{
		UserId:          userId,
		Email:           email,
		StripeAccountId: sql.NullString{String: accountId, Valid: true},
	}
	return nil
}

type fakeStripe struct {
	CreateAccountFunc func(ctx context.Context, email string) (*stripeclient.ConnectAccount, error)
	GetAccountFunc    func(ctx context.Context, accountID string) (*stripeclient.ConnectAccount, error)

	AccountCalls []string
	LinkCalls    []string
}

func (f *fakeStripe) CreatePaymentIntent(ctx context.Context, req stripeclient.IntentRequest) (*stripeclient.Intent, error) {
	return nil, errMockStripe
}

func (f *fakeStripe) GetPaymentIntent(ctx context.Context, id string) (*stripeclient.Intent, error) {
	return nil, errMockStripe
}

func (f *fakeStripe) CreateRefund(ctx context.Context, req stripeclient.RefundRequest) (*stripeclient.Refund, error) {
	return nil, errMockStripe
}

func (f *fakeStripe) CreateConnectAccount(ctx context.Context, email string) (*stripeclient.ConnectAccount, error) {
	f.AccountCalls = append(f.AccountCalls, email)
	if f.CreateAccountFunc != nil {
		return f.CreateAccountFunc(ctx, email)
	}
	return &stripeclient.ConnectAccount{ID: "acct_new"}, nil
}

func (f *fakeStripe) CreateAccountLink(ctx context.Context, accountID, returnURL, refreshURL string) (string, error) {
	f.LinkCalls = append(f.LinkCalls, accountID)
	return "https://connect.stripe.com/setup/" + accountID, nil
}

func (f *fakeStripe) GetAccount(ctx context.Context, accountID string) (*stripeclient.ConnectAccount, error) {
	if f.GetAccountFunc != nil {
		return f.GetAccountFunc(ctx, accountID)
	}
	return &stripeclient.ConnectAccount{ID: accountID, ChargesEnabled: true, DetailsSubmitted: true, PayoutsEnabled: true}, nil
}
