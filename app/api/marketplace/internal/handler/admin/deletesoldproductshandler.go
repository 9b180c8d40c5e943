// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package admin

import (
	"net/http"

	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/logic/admin"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func DeleteSoldProductsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := admin.NewDeleteSoldProductsLogic(r.Context(), svcCtx)
		resp, err := l.DeleteSoldProducts()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
