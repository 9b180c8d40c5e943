// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package messaging

import (
	"net/http"

	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/logic/messaging"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListConversationsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := messaging.NewListConversationsLogic(r.Context(), svcCtx)
		resp, err := l.ListConversations()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
