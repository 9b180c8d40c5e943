// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package payment

import (
	"context"
	"strconv"

	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/mq"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/svc"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/types"
	"github.com/fnadeau-1/wrestle-swap/app/common/consts/biz"
	"github.com/fnadeau-1/wrestle-swap/app/common/consts/errno"
	"github.com/fnadeau-1/wrestle-swap/app/common/snowflake"
	stripeclient "github.com/fnadeau-1/wrestle-swap/app/client/stripe"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreatePaymentIntentLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreatePaymentIntentLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreatePaymentIntentLogic {
	return &CreatePaymentIntentLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreatePaymentIntentLogic) CreatePaymentIntent(req *types.CreatePaymentIntentRequest) (*types.CreatePaymentIntentResponse, error) {
	resp := &types.CreatePaymentIntentResponse{}

	if req == nil || req.Amount <= 0 {
		resp.Status_code = errno.InvalidParam
		resp.Status_msg = "amount must be a positive number of cents"
		return resp, nil
	}
	if l.svcCtx.Stripe == nil {
		resp.Status_code = errno.ConfigError
		resp.Status_msg = "payment processor is not configured"
		return resp, nil
	}

	currency := req.Currency
	if currency == "" {
		currency = biz.DefaultCurrency
	}

	in := stripeclient.IntentRequest{
		AmountCents:    req.Amount,
		Currency:       currency,
		IdempotencyKey: req.Idempotency_key,
	}
	if in.IdempotencyKey == "" {
		// Mint one so a client retry of this exact request body cannot
		// double-charge inside the processor.
		in.IdempotencyKey = "pi-" + strconv.FormatInt(snowflake.Next(), 10)
	}

	// A destination split only applies when the seller is connected and the
	// product amount is known; otherwise all proceeds stay on the platform.
	if req.Seller_account != "" && req.Product_amount > 0 {
		platformFee := PlatformFee(req.Product_amount)
		sellerReceives := SellerReceives(req.Product_amount)
		in.ApplicationFeeCents = ApplicationFee(req.Amount, sellerReceives)
		in.DestinationAccountID = req.Seller_account
		in.Metadata = map[string]string{
			"product_amount":  strconv.FormatInt(req.Product_amount, 10),
			"shipping_amount": strconv.FormatInt(req.Shipping_amount, 10),
			"tax_amount":      strconv.FormatInt(req.Tax_amount, 10),
			"platform_fee":    strconv.FormatInt(platformFee, 10),
			"seller_receives": strconv.FormatInt(sellerReceives, 10),
		}
		if req.Product_id > 0 {
			in.Metadata["product_id"] = strconv.FormatInt(req.Product_id, 10)
		}
	}

	intent, err := l.svcCtx.Stripe.CreatePaymentIntent(l.ctx, in)
	if err != nil {
		l.Logger.Errorf("create payment intent failed: %v", err)
		resp.Status_code = errno.StripeError
		resp.Status_msg = stripeclient.ErrorMessage(err)
		return resp, nil
	}

	if err := mq.PublishPaymentCreatedEvent(l.svcCtx, mq.PaymentCreatedEvent{
		PaymentIntentId:     intent.ID,
		AmountCents:         req.Amount,
		Currency:            currency,
		ApplicationFeeCents: in.ApplicationFeeCents,
		SellerAccountId:     req.Seller_account,
		ProductId:           req.Product_id,
	}); err != nil {
		l.Logger.Errorf("publish payment created event failed: %v", err)
	}

	resp.Status_code = errno.StatusOK
	resp.Status_msg = "ok"
	resp.Client_secret = intent.ClientSecret
	resp.Payment_intent_id = intent.ID
	return resp, nil
}
