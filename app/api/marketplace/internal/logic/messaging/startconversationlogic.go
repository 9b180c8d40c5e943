// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package messaging

import (
	"context"
	"strconv"
	"time"

	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/svc"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/types"
	"github.com/fnadeau-1/wrestle-swap/app/common/consts/errno"
	"github.com/fnadeau-1/wrestle-swap/app/common/snowflake"
	"github.com/fnadeau-1/wrestle-swap/app/common/util"
	"github.com/fnadeau-1/wrestle-swap/app/dal/messaging"

	"github.com/zeromicro/go-zero/core/logx"
)

type StartConversationLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewStartConversationLogic(ctx context.Context, svcCtx *svc.ServiceContext) *StartConversationLogic {
	return &StartConversationLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// StartConversation opens a buyer-to-seller thread; the caller is the buyer.
func (l *StartConversationLogic) StartConversation(req *types.StartConversationRequest) (*types.StartConversationResponse, error) {
	uid, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	resp := &types.StartConversationResponse{}
	if req == nil || req.Seller_id == "" {
		resp.Status_code = errno.InvalidParam
		resp.Status_msg = "seller_id is required"
		return resp, nil
	}
	if req.Seller_id == uid {
		resp.Status_code = errno.InvalidParam
		resp.Status_msg = "cannot start a conversation with yourself"
		return resp, nil
	}

	now := time.Now().UnixMilli()
	conv := &messaging.Conversation{
		Id:            "conv-" + strconv.FormatInt(snowflake.Next(), 10),
		BuyerId:       uid,
		SellerId:      req.Seller_id,
		ProductId:     req.Product_id,
		LastMessageAt: now,
		CreatedAt:     now,
	}
	if err := l.svcCtx.Messages.CreateConversation(l.ctx, conv); err != nil {
		l.Logger.Errorf("create conversation failed: %v", err)
		resp.Status_code = errno.InternalError
		resp.Status_msg = "create conversation failed"
		return resp, err
	}

	resp.Status_code = errno.StatusOK
	resp.Status_msg = "ok"
	resp.Conversation = toConversationInfo(conv)
	return resp, nil
}

func toConversationInfo(conv *messaging.Conversation) *types.ConversationInfo {
	return &types.ConversationInfo{
		Id:              conv.Id,
		Buyer_id:        conv.BuyerId,
		Seller_id:       conv.SellerId,
		Product_id:      conv.ProductId,
		Last_message:    conv.LastMessage,
		Last_message_at: conv.LastMessageAt,
		Created_at:      conv.CreatedAt,
	}
}
