// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package shipping

import (
	"context"

	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/svc"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/types"
	"github.com/fnadeau-1/wrestle-swap/app/client/shippo"
	"github.com/fnadeau-1/wrestle-swap/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreateLabelLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateLabelLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateLabelLogic {
	return &CreateLabelLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// CreateLabel purchases the label for a previously quoted rate. Purchases
// are always synchronous regardless of the async flag the storefront sends.
func (l *CreateLabelLogic) CreateLabel(req *types.CreateLabelRequest) (*types.CreateLabelResponse, error) {
	resp := &types.CreateLabelResponse{}

	if req == nil || req.Rate_object_id == "" {
		resp.Status_code = errno.InvalidParam
		resp.Status_msg = "rate_object_id is required"
		return resp, nil
	}
	if l.svcCtx.Shippo == nil {
		resp.Status_code = errno.ConfigError
		resp.Status_msg = "shipping collaborator is not configured"
		return resp, nil
	}

	tx, err := l.svcCtx.Shippo.PurchaseLabel(l.ctx, req.Rate_object_id, req.Label_file_type)
	if err != nil {
		l.Logger.Errorf("label purchase for rate %s failed: %v", req.Rate_object_id, err)
		resp.Status_code = errno.ShippoError
		if apiErr, ok := err.(*shippo.APIError); ok {
			resp.Upstream_status = apiErr.StatusCode
			resp.Status_msg = apiErr.Detail
		} else {
			resp.Status_msg = err.Error()
		}
		return resp, nil
	}

	resp.Status_code = errno.StatusOK
	resp.Status_msg = "ok"
	resp.Transaction = &types.LabelTransaction{
		Object_id:       tx.ObjectID,
		Status:          tx.Status,
		Tracking_number: tx.TrackingNumber,
		Tracking_url:    tx.TrackingURL,
		Label_url:       tx.LabelURL,
		Eta:             tx.ETA,
	}
	return resp, nil
}
