package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/logic/admin"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/svc"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

func NewAsynqMux(sc *svc.ServiceContext) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskReapSoldListings, newReapSoldListingsHandler(sc))
	mux.HandleFunc(TaskSweepConversations, newSweepConversationsHandler(sc))
	mux.HandleFunc(TaskRetryLabelVoid, newRetryLabelVoidHandler(sc))
	return mux
}

func newReapSoldListingsHandler(sc *svc.ServiceContext) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, _ *asynq.Task) error {
		deleted, err := admin.NewDeleteSoldProductsLogic(ctx, sc).Reap(time.Now())
		if err != nil {
			return err
		}
		logx.WithContext(ctx).Infof("scheduled reap removed %d sold listings", deleted)
		return nil
	}
}

func newSweepConversationsHandler(sc *svc.ServiceContext) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, _ *asynq.Task) error {
		swept, err := sc.Messages.SweepExpired(ctx, time.Now())
		if err != nil {
			return err
		}
		logx.WithContext(ctx).Infof("conversation sweep removed %d expired conversations", swept)
		return nil
	}
}

func newRetryLabelVoidHandler(sc *svc.ServiceContext) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload RetryLabelVoidPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return err
		}
		if payload.TransactionId == "" || sc.Shippo == nil {
			return nil
		}
		if err := sc.Shippo.VoidLabel(ctx, payload.TransactionId); err != nil {
			logx.WithContext(ctx).Errorf("retry void label %s failed: %v", payload.TransactionId, err)
			return err
		}
		logx.WithContext(ctx).Infof("voided label %s on retry", payload.TransactionId)
		return nil
	}
}
