package seller

import (
	"context"
	"testing"

	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/svc"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/types"
	"github.com/fnadeau-1/wrestle-swap/app/common/consts/errno"
)

func TestCreateConnectedAccount_RequiresUserAndEmail(t *testing.T) {
	stripe := &fakeStripe{}
	l := NewCreateConnectedAccountLogic(context.Background(), &svc.ServiceContext{Stripe: stripe, Sellers: newFakeSellers()})

	for _, req := range []*types.CreateConnectedAccountRequest{
		{},
		{User_id: "u1"},
		{Email: "a@b.com"},
	} {
		resp, err := l.CreateConnectedAccount(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Status_code != errno.InvalidParam {
			t.Errorf("req %+v: status = %d, want %d", req, resp.Status_code, errno.InvalidParam)
		}
	}
	if len(stripe.AccountCalls) != 0 {
		t.Errorf("accounts created for invalid requests: %v", stripe.AccountCalls)
	}
}

func TestCreateConnectedAccount_FirstOnboarding(t *testing.T) {
	stripe := &fakeStripe{}
	sellers := newFakeSellers()
	l := NewCreateConnectedAccountLogic(context.Background(), &svc.ServiceContext{Stripe: stripe, Sellers: sellers})

	resp, err := l.CreateConnectedAccount(&types.CreateConnectedAccountRequest{User_id: "u1", Email: "u1@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status_code != errno.StatusOK {
		t.Fatalf("status = %d (%s)", resp.Status_code, resp.Status_msg)
	}
	if resp.Account_id != "acct_new" {
		t.Errorf("account id = %q, want acct_new", resp.Account_id)
	}
	if resp.Url == "" {
		t.Error("expected an onboarding url")
	}
	if len(stripe.AccountCalls) != 1 || stripe.AccountCalls[0] != "u1@example.com" {
		t.Errorf("account calls = %v", stripe.AccountCalls)
	}
	if len(sellers.SaveCalls) != 1 {
		t.Errorf("mapping saved %d times, want 1", len(sellers.SaveCalls))
	}
}

func TestCreateConnectedAccount_IsIdempotent(t *testing.T) {
	stripe := &fakeStripe{}
	sellers := newFakeSellers()
	l := NewCreateConnectedAccountLogic(context.Background(), &svc.ServiceContext{Stripe: stripe, Sellers: sellers})

	req := &types.CreateConnectedAccountRequest{User_id: "u1", Email: "u1@example.com"}
	first, err := l.CreateConnectedAccount(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := l.CreateConnectedAccount(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Account_id != second.Account_id {
		t.Errorf("account ids differ across calls: %q vs %q", first.Account_id, second.Account_id)
	}
	if len(stripe.AccountCalls) != 1 {
		t.Errorf("account created %d times for one seller, want 1", len(stripe.AccountCalls))
	}
	// Links are single use, each call must mint a fresh one.
	if len(stripe.LinkCalls) != 2 {
		t.Errorf("links minted %d times, want 2", len(stripe.LinkCalls))
	}
}

func TestCheckSellerStatus_UnknownSeller(t *testing.T) {
	l := NewCheckSellerStatusLogic(context.Background(), &svc.ServiceContext{Stripe: &fakeStripe{}, Sellers: newFakeSellers()})

	resp, err := l.CheckSellerStatus(&types.CheckSellerStatusRequest{User_id: "ghost"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status_code != errno.StatusOK {
		t.Fatalf("status = %d (%s)", resp.Status_code, resp.Status_msg)
	}
	if resp.Connected {
		t.Error("unknown seller reported connected")
	}
}

func TestCheckSellerStatus_ConnectedSeller(t *testing.T) {
	stripe := &fakeStripe{}
	sellers := newFakeSellers()
	if err := sellers.SaveAccountMapping(context.Background(), "u1", "u1@example.com", "acct_live"); err != nil {
		t.Fatalf("seed mapping: %v", err)
	}
	l := NewCheckSellerStatusLogic(context.Background(), &svc.ServiceContext{Stripe: stripe, Sellers: sellers})

	resp, err := l.CheckSellerStatus(&types.CheckSellerStatusRequest{User_id: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Connected || !resp.Charges_enabled || !resp.Details_submitted || !resp.Payouts_enabled {
		t.Errorf("flags = %+v, want all set", resp)
	}
}
