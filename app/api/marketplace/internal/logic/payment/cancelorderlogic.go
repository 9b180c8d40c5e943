// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package payment

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/mq"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/svc"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/types"
	"github.com/fnadeau-1/wrestle-swap/app/common/consts/errno"
	"github.com/fnadeau-1/wrestle-swap/app/common/snowflake"
	stripeclient "github.com/fnadeau-1/wrestle-swap/app/client/stripe"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

type CancelOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCancelOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CancelOrderLogic {
	return &CancelOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// CancelOrder refunds a paid order net of the cancellation fee, then runs
// the follow-up steps best effort: void the shipping label, relist the
// product. Only a refund failure aborts the operation; every step's outcome
// is reported individually.
func (l *CancelOrderLogic) CancelOrder(req *types.CancelOrderRequest) (*types.CancelOrderResponse, error) {
	resp := &types.CancelOrderResponse{}

	if req == nil || req.Payment_intent_id == "" {
		resp.Status_code = errno.InvalidParam
		resp.Status_msg = "payment_intent_id is required"
		return resp, nil
	}
	if l.svcCtx.Stripe == nil {
		resp.Status_code = errno.ConfigError
		resp.Status_msg = "payment processor is not configured"
		return resp, nil
	}

	intent, err := l.svcCtx.Stripe.GetPaymentIntent(l.ctx, req.Payment_intent_id)
	if err != nil {
		l.Logger.Errorf("resolve payment intent %s failed: %v", req.Payment_intent_id, err)
		resp.Status_code = errno.StripeError
		resp.Status_msg = stripeclient.ErrorMessage(err)
		return resp, nil
	}
	if intent.LatestChargeID == "" {
		resp.Status_code = errno.ChargeNotFound
		resp.Status_msg = "payment has no charge to refund"
		return resp, nil
	}

	fee := CancellationFee(intent.AmountCents)
	refundAmount := RefundAmount(intent.AmountCents)

	metadata := map[string]string{
		"cancellation_fee": strconv.FormatInt(fee, 10),
	}
	if req.Cancelled_by != "" {
		metadata["cancelled_by"] = req.Cancelled_by
	}
	if req.Reason != "" {
		metadata["reason"] = req.Reason
	}
	if req.Product_id > 0 {
		metadata["product_id"] = strconv.FormatInt(req.Product_id, 10)
	}

	refund, err := l.svcCtx.Stripe.CreateRefund(l.ctx, stripeclient.RefundRequest{
		PaymentIntentID: req.Payment_intent_id,
		AmountCents:     refundAmount,
		Metadata:        metadata,
		IdempotencyKey:  "refund-" + strconv.FormatInt(snowflake.Next(), 10),
	})
	if err != nil {
		l.Logger.Errorf("refund for intent %s failed: %v", req.Payment_intent_id, err)
		resp.Status_code = errno.StripeError
		resp.Status_msg = stripeclient.ErrorMessage(err)
		return resp, nil
	}

	steps := []types.StepOutcome{
		{Name: "refund", Ok: true},
	}
	steps = append(steps, l.voidLabel(req.Shippo_transaction_id))
	steps = append(steps, l.relistProduct(req.Product_id))

	labelVoided := false
	for _, step := range steps {
		if step.Name == "void_label" {
			labelVoided = step.Ok && step.Detail == ""
		}
	}

	if err := mq.PublishOrderCancelledEvent(l.svcCtx, mq.OrderCancelledEvent{
		PaymentIntentId:      req.Payment_intent_id,
		RefundId:             refund.ID,
		RefundAmountCents:    refundAmount,
		CancellationFeeCents: fee,
		ProductId:            req.Product_id,
		CancelledBy:          req.Cancelled_by,
		Reason:               req.Reason,
	}); err != nil {
		l.Logger.Errorf("publish order cancelled event failed: %v", err)
	}

	resp.Status_code = errno.StatusOK
	resp.Status_msg = "ok"
	resp.Success = true
	resp.Refund_id = refund.ID
	resp.Refund_amount = refundAmount
	resp.Cancellation_fee = fee
	resp.Label_voided = labelVoided
	resp.Steps = steps
	return resp, nil
}

func (l *CancelOrderLogic) voidLabel(transactionId string) types.StepOutcome {
	out := types.StepOutcome{Name: "void_label"}
	if transactionId == "" {
		out.Ok = true
		out.Detail = "no label to void"
		return out
	}
	if l.svcCtx.Shippo == nil {
		l.Logger.Error("label void skipped: shipping collaborator not configured")
		out.Detail = "shipping collaborator not configured"
		return out
	}
	if err := l.svcCtx.Shippo.VoidLabel(l.ctx, transactionId); err != nil {
		// Not transactional with the refund: log and report, never fail the
		// cancellation over it.
		l.Logger.Errorf("void label %s failed: %v", transactionId, err)
		out.Detail = err.Error()
		l.enqueueVoidRetry(transactionId)
		return out
	}
	out.Ok = true
	return out
}

// enqueueVoidRetry schedules another void attempt; carrier refunds stay
// possible for a while after purchase.
func (l *CancelOrderLogic) enqueueVoidRetry(transactionId string) {
	if l.svcCtx.AsynqClient == nil {
		return
	}
	payload, err := json.Marshal(mq.RetryLabelVoidPayload{TransactionId: transactionId})
	if err != nil {
		return
	}
	task := asynq.NewTask(mq.TaskRetryLabelVoid, payload)
	if _, err := l.svcCtx.AsynqClient.Enqueue(task, asynq.ProcessIn(10*time.Minute), asynq.Queue("default"), asynq.MaxRetry(5)); err != nil {
		l.Logger.Errorf("enqueue label void retry for %s failed: %v", transactionId, err)
	}
}

func (l *CancelOrderLogic) relistProduct(productId int64) types.StepOutcome {
	out := types.StepOutcome{Name: "relist_product"}
	if productId <= 0 {
		out.Ok = true
		out.Detail = "no product to relist"
		return out
	}
	if err := l.svcCtx.Products.MarkUnsold(l.ctx, productId); err != nil {
		l.Logger.Errorf("relist product %d failed: %v", productId, err)
		out.Detail = err.Error()
		return out
	}
	out.Ok = true
	return out
}
