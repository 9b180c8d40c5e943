// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package payment

import (
	"net/http"

	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/logic/payment"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/svc"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func CreatePaymentIntentHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CreatePaymentIntentRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := payment.NewCreatePaymentIntentLogic(r.Context(), svcCtx)
		resp, err := l.CreatePaymentIntent(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
