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
	"github.com/fnadeau-1/wrestle-swap/app/dal/messaging"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListMessagesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListMessagesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListMessagesLogic {
	return &ListMessagesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListMessagesLogic) ListMessages(req *types.ListMessagesRequest) (*types.ListMessagesResponse, error) {
	uid, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	resp := &types.ListMessagesResponse{}
	if req == nil || req.Conversation_id == "" {
		resp.Status_code = errno.InvalidParam
		resp.Status_msg = "conversation_id is required"
		return resp, nil
	}

	conv, err := l.svcCtx.Messages.GetConversation(l.ctx, req.Conversation_id)
	if err == messaging.ErrConversationNotFound {
		resp.Status_code = errno.ConversationNotFound
		resp.Status_msg = "conversation not found"
		return resp, nil
	}
	if err != nil {
		l.Logger.Errorf("load conversation %s failed: %v", req.Conversation_id, err)
		resp.Status_code = errno.InternalError
		resp.Status_msg = "load conversation failed"
		return resp, err
	}

	if _, ok := conv.Participant(uid); !ok {
		resp.Status_code = errno.ConversationForbidden
		resp.Status_msg = "not a participant of this conversation"
		return resp, nil
	}

	msgs, err := l.svcCtx.Messages.ListMessages(l.ctx, conv.Id, time.Now())
	if err != nil {
		l.Logger.Errorf("list messages for %s failed: %v", conv.Id, err)
		resp.Status_code = errno.InternalError
		resp.Status_msg = "list messages failed"
		return resp, err
	}

	out := make([]types.MessageInfo, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, types.MessageInfo{
			Id:              msg.Id,
			Conversation_id: msg.ConversationId,
			Sender_id:       msg.SenderId,
			Role:            msg.Role,
			Text:            msg.Text,
			Timestamp:       msg.Timestamp,
		})
	}

	resp.Status_code = errno.StatusOK
	resp.Status_msg = "ok"
	resp.Messages = out
	return resp, nil
}
