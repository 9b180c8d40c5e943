// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package admin

import (
	"context"
	"time"

	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/svc"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/types"
	"github.com/fnadeau-1/wrestle-swap/app/common/consts/biz"
	"github.com/fnadeau-1/wrestle-swap/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
)

type DeleteSoldProductsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteSoldProductsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteSoldProductsLogic {
	return &DeleteSoldProductsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteSoldProductsLogic) DeleteSoldProducts() (*types.DeleteSoldProductsResponse, error) {
	resp := &types.DeleteSoldProductsResponse{}

	deleted, err := l.Reap(time.Now())
	if err != nil {
		l.Logger.Errorf("reap sold listings failed after %d deletions: %v", deleted, err)
		resp.Status_code = errno.InternalError
		resp.Status_msg = "reap failed"
		resp.Deleted_count = deleted
		return resp, err
	}

	resp.Status_code = errno.StatusOK
	resp.Status_msg = "ok"
	resp.Success = true
	resp.Deleted_count = deleted
	return resp, nil
}

// Reap deletes listings sold longer than the retention window ago, in
// batches no larger than the store's per-commit mutation ceiling. Each batch
// commits before the next is read; a crash mid-run just leaves fewer rows
// for the next run to find.
func (l *DeleteSoldProductsLogic) Reap(now time.Time) (int64, error) {
	cutoff := now.Add(-biz.SoldListingRetention).UnixMilli()

	var deleted int64
	for {
		ids, err := l.svcCtx.Products.FindStaleSoldIds(l.ctx, cutoff, biz.ReaperBatchSize)
		if err != nil {
			return deleted, err
		}
		if len(ids) == 0 {
			return deleted, nil
		}

		if err := l.svcCtx.Products.DeleteBatch(l.ctx, ids); err != nil {
			return deleted, err
		}
		deleted += int64(len(ids))
		l.Logger.Infof("reaped batch of %d sold listings", len(ids))

		if len(ids) < biz.ReaperBatchSize {
			return deleted, nil
		}
	}
}
