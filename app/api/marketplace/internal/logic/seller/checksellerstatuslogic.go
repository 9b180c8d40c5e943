// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package seller

import (
	"context"

	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/svc"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/types"
	"github.com/fnadeau-1/wrestle-swap/app/common/consts/errno"
	userdal "github.com/fnadeau-1/wrestle-swap/app/dal/user"
	stripeclient "github.com/fnadeau-1/wrestle-swap/app/client/stripe"

	"github.com/zeromicro/go-zero/core/logx"
)

type CheckSellerStatusLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCheckSellerStatusLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CheckSellerStatusLogic {
	return &CheckSellerStatusLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CheckSellerStatusLogic) CheckSellerStatus(req *types.CheckSellerStatusRequest) (*types.CheckSellerStatusResponse, error) {
	resp := &types.CheckSellerStatusResponse{}

	if req == nil || req.User_id == "" {
		resp.Status_code = errno.InvalidParam
		resp.Status_msg = "user_id is required"
		return resp, nil
	}

	seller, err := l.svcCtx.Sellers.FindOne(l.ctx, req.User_id)
	if err == userdal.ErrNotFound {
		resp.Status_code = errno.StatusOK
		resp.Status_msg = "ok"
		return resp, nil
	}
	if err != nil {
		l.Logger.Errorf("seller lookup for %s failed: %v", req.User_id, err)
		resp.Status_code = errno.InternalError
		resp.Status_msg = "seller lookup failed"
		return resp, err
	}
	if !seller.StripeAccountId.Valid || seller.StripeAccountId.String == "" {
		resp.Status_code = errno.StatusOK
		resp.Status_msg = "ok"
		return resp, nil
	}

	if l.svcCtx.Stripe == nil {
		resp.Status_code = errno.ConfigError
		resp.Status_msg = "payment processor is not configured"
		return resp, nil
	}

	account, err := l.svcCtx.Stripe.GetAccount(l.ctx, seller.StripeAccountId.String)
	if err != nil {
		l.Logger.Errorf("account fetch for %s failed: %v", seller.StripeAccountId.String, err)
		resp.Status_code = errno.StripeError
		resp.Status_msg = stripeclient.ErrorMessage(err)
		return resp, nil
	}

	resp.Status_code = errno.StatusOK
	resp.Status_msg = "ok"
	resp.Connected = true
	resp.Charges_enabled = account.ChargesEnabled
	resp.Details_submitted = account.DetailsSubmitted
	resp.Payouts_enabled = account.PayoutsEnabled
	return resp, nil
}
