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

type GetRatesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetRatesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetRatesLogic {
	return &GetRatesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GetRates quotes shipping for a listing: seller's address to the buyer's
// ZIP, fixed parcel unless the caller supplies one. Rates come back exactly
// as the carrier aggregator returned them.
func (l *GetRatesLogic) GetRates(req *types.GetRatesRequest) (*types.GetRatesResponse, error) {
	resp := &types.GetRatesResponse{}

	if req == nil || len(req.Zip_code) != 5 {
		resp.Status_code = errno.InvalidParam
		resp.Status_msg = "invalid destination ZIP code"
		return resp, nil
	}
	if req.Sender_address.City == "" || req.Sender_address.State == "" || req.Sender_address.Zip == "" {
		resp.Status_code = errno.InvalidParam
		resp.Status_msg = "incomplete sender address (need city, state, zip)"
		return resp, nil
	}
	if l.svcCtx.Shippo == nil {
		resp.Status_code = errno.ConfigError
		resp.Status_msg = "shipping collaborator is not configured"
		return resp, nil
	}

	from := shippo.Address{
		Name:    req.Sender_address.Name,
		Street1: req.Sender_address.Street1,
		City:    req.Sender_address.City,
		State:   req.Sender_address.State,
		Zip:     req.Sender_address.Zip,
		Country: "US",
	}
	if from.Name == "" {
		from.Name = "Seller"
	}

	parcel := shippo.DefaultParcel()
	if req.Parcel != nil {
		parcel = overlayParcel(parcel, req.Parcel)
	}

	rates, err := l.svcCtx.Shippo.CreateShipment(l.ctx, shippo.ShipmentRequest{
		AddressFrom: from,
		AddressTo: shippo.Address{
			Name:    "Customer",
			Street1: "123 Customer St",
			City:    "Unknown",
			State:   "NY",
			Zip:     req.Zip_code,
			Country: "US",
		},
		Parcels: []shippo.Parcel{parcel},
	})
	if err != nil {
		l.Logger.Errorf("shipping rate quote failed: %v", err)
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
	resp.Rates = rates
	return resp, nil
}

func overlayParcel(base shippo.Parcel, in *types.ParcelInput) shippo.Parcel {
	if in.Length != "" {
		base.Length = in.Length
	}
	if in.Width != "" {
		base.Width = in.Width
	}
	if in.Height != "" {
		base.Height = in.Height
	}
	if in.Distance_unit != "" {
		base.DistanceUnit = in.Distance_unit
	}
	if in.Weight != "" {
		base.Weight = in.Weight
	}
	if in.Mass_unit != "" {
		base.MassUnit = in.Mass_unit
	}
	return base
}
