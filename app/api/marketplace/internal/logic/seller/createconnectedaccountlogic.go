// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package seller

import (
	"context"

	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/svc"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/types"
	"github.com/fnadeau-1/wrestle-swap/app/common/consts/biz"
	"github.com/fnadeau-1/wrestle-swap/app/common/consts/errno"
	userdal "github.com/fnadeau-1/wrestle-swap/app/dal/user"
	stripeclient "github.com/fnadeau-1/wrestle-swap/app/client/stripe"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreateConnectedAccountLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateConnectedAccountLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateConnectedAccountLogic {
	return &CreateConnectedAccountLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// CreateConnectedAccount onboards a seller: reuse the stored connected
// account when one exists, otherwise create it and persist the mapping.
// Either way a fresh onboarding link is minted, links are single use.
func (l *CreateConnectedAccountLogic) CreateConnectedAccount(req *types.CreateConnectedAccountRequest) (*types.CreateConnectedAccountResponse, error) {
	resp := &types.CreateConnectedAccountResponse{}

	if req == nil || req.User_id == "" || req.Email == "" {
		resp.Status_code = errno.InvalidParam
		resp.Status_msg = "user_id and email are required"
		return resp, nil
	}
	if l.svcCtx.Stripe == nil {
		resp.Status_code = errno.ConfigError
		resp.Status_msg = "payment processor is not configured"
		return resp, nil
	}

	accountId := ""
	seller, err := l.svcCtx.Sellers.FindOne(l.ctx, req.User_id)
	switch err {
	case nil:
		if seller.StripeAccountId.Valid {
			accountId = seller.StripeAccountId.String
		}
	case userdal.ErrNotFound:
	default:
		l.Logger.Errorf("seller lookup for %s failed: %v", req.User_id, err)
		resp.Status_code = errno.InternalError
		resp.Status_msg = "seller lookup failed"
		return resp, err
	}

	if accountId == "" {
		account, err := l.svcCtx.Stripe.CreateConnectAccount(l.ctx, req.Email)
		if err != nil {
			l.Logger.Errorf("connect account creation for %s failed: %v", req.User_id, err)
			resp.Status_code = errno.StripeError
			resp.Status_msg = stripeclient.ErrorMessage(err)
			return resp, nil
		}
		accountId = account.ID

		if err := l.svcCtx.Sellers.SaveAccountMapping(l.ctx, req.User_id, req.Email, accountId); err != nil {
			l.Logger.Errorf("persist account mapping for %s failed: %v", req.User_id, err)
			resp.Status_code = errno.InternalError
			resp.Status_msg = "failed to persist account mapping"
			return resp, err
		}
	}

	returnURL := req.Return_url
	if returnURL == "" {
		returnURL = biz.DefaultOnboardingReturnURL
	}
	refreshURL := req.Refresh_url
	if refreshURL == "" {
		refreshURL = biz.DefaultOnboardingRefreshURL
	}

	url, err := l.svcCtx.Stripe.CreateAccountLink(l.ctx, accountId, returnURL, refreshURL)
	if err != nil {
		l.Logger.Errorf("onboarding link for account %s failed: %v", accountId, err)
		resp.Status_code = errno.StripeError
		resp.Status_msg = stripeclient.ErrorMessage(err)
		return resp, nil
	}

	resp.Status_code = errno.StatusOK
	resp.Status_msg = "ok"
	resp.Account_id = accountId
	resp.Url = url
	return resp, nil
}
