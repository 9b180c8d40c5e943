// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package messaging

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/svc"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/types"
	"github.com/fnadeau-1/wrestle-swap/app/common/consts/errno"
	"github.com/fnadeau-1/wrestle-swap/app/common/snowflake"
	"github.com/fnadeau-1/wrestle-swap/app/common/util"
	"github.com/fnadeau-1/wrestle-swap/app/dal/messaging"

	"github.com/zeromicro/go-zero/core/logx"
)

type SendMessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSendMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendMessageLogic {
	return &SendMessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SendMessageLogic) SendMessage(req *types.SendMessageRequest) (*types.SendMessageResponse, error) {
	uid, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	resp := &types.SendMessageResponse{}
	if req == nil || req.Conversation_id == "" || strings.TrimSpace(req.Text) == "" {
		resp.Status_code = errno.InvalidParam
		resp.Status_msg = "conversation_id and text are required"
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

	role, ok := conv.Participant(uid)
	if !ok {
		resp.Status_code = errno.ConversationForbidden
		resp.Status_msg = "not a participant of this conversation"
		return resp, nil
	}

	msg := &messaging.Message{
		Id:             "msg-" + strconv.FormatInt(snowflake.Next(), 10),
		ConversationId: conv.Id,
		SenderId:       uid,
		Role:           role,
		Text:           req.Text,
		Timestamp:      time.Now().UnixMilli(),
	}
	if err := l.svcCtx.Messages.AppendMessage(l.ctx, conv, msg); err != nil {
		l.Logger.Errorf("append message to %s failed: %v", conv.Id, err)
		resp.Status_code = errno.InternalError
		resp.Status_msg = "send message failed"
		return resp, err
	}

	resp.Status_code = errno.StatusOK
	resp.Status_msg = "ok"
	resp.Message = &types.MessageInfo{
		Id:              msg.Id,
		Conversation_id: msg.ConversationId,
		Sender_id:       msg.SenderId,
		Role:            msg.Role,
		Text:            msg.Text,
		Timestamp:       msg.Timestamp,
	}
	return resp, nil
}
