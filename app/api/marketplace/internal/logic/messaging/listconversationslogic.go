// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package messaging

import (
	"context"
	"time"

	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/svc"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/types"
	"github.com/fnadeau-1/wrestle-swap/app/common/consts/errno"
	"github.com/fnadeau-1/wrestle-swap/app/common/util"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListConversationsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListConversationsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListConversationsLogic {
	return &ListConversationsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListConversationsLogic) ListConversations() (*types.ListConversationsResponse, error) {
	uid, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	resp := &types.ListConversationsResponse{}
	convos, err := l.svcCtx.Messages.ListConversations(l.ctx, uid, time.Now())
	if err != nil {
		l.Logger.Errorf("list conversations for %s failed: %v", uid, err)
		resp.Status_code = errno.InternalError
		resp.Status_msg = "list conversations failed"
		return resp, err
	}

	out := make([]types.ConversationInfo, 0, len(convos))
	for _, conv := range convos {
		out = append(out, *toConversationInfo(conv))
	}

	resp.Status_code = errno.StatusOK
	resp.Status_msg = "ok"
	resp.Conversations = out
	return resp, nil
}
