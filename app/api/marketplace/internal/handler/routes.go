// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/handler/admin"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/handler/messaging"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/handler/payment"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/handler/seller"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/handler/shipping"
	"github.com/fnadeau-1/wrestle-swap/app/api/marketplace/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/api/payment/create-intent",
				Handler: payment.CreatePaymentIntentHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/payment/cancel-order",
				Handler: payment.CancelOrderHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/shipping/rates",
				Handler: shipping.GetRatesHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/shipping/labels",
				Handler: shipping.CreateLabelHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/seller/connect",
				Handler: seller.CreateConnectedAccountHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/seller/status",
				Handler: seller.CheckSellerStatusHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.AuthMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/api/messaging/conversations",
					Handler: messaging.StartConversationHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/messaging/conversations",
					Handler: messaging.ListConversationsHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/messaging/messages",
					Handler: messaging.SendMessageHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/messaging/messages",
					Handler: messaging.ListMessagesHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/admin/reap-sold-products",
					Handler: admin.DeleteSoldProductsHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/admin/reap-sold-products",
					Handler: admin.DeleteSoldProductsHandler(serverCtx),
				},
			}...,
		),
	)
}
