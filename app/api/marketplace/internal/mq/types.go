package mq

// Asynq task types for scheduled maintenance and deferred retries.
const (
	TaskReapSoldListings   = "marketplace:reap_sold_listings"
	TaskSweepConversations = "marketplace:sweep_conversations"
	TaskRetryLabelVoid     = "marketplace:retry_label_void"
)

// RetryLabelVoidPayload carries the label transaction whose void attempt
// failed during cancellation.
type RetryLabelVoidPayload struct {
	TransactionId string `json:"transaction_id"`
}

// PaymentCreatedEvent is published after a payment intent is opened.
type PaymentCreatedEvent struct {
	PaymentIntentId     string `json:"payment_intent_id"`
	AmountCents         int64  `json:"amount_cents"`
	Currency            string `json:"currency"`
	ApplicationFeeCents int64  `json:"application_fee_cents"`
	SellerAccountId     string `json:"seller_account_id,omitempty"`
	ProductId           int64  `json:"product_id,omitempty"`
}

// OrderCancelledEvent is published once the refund has been issued.
type OrderCancelledEvent struct {
	PaymentIntentId      string `json:"payment_intent_id"`
	RefundId             string `json:"refund_id"`
	RefundAmountCents    int64  `json:"refund_amount_cents"`
	CancellationFeeCents int64  `json:"cancellation_fee_cents"`
	ProductId            int64  `json:"product_id,omitempty"`
	CancelledBy          string `json:"cancelled_by,omitempty"`
	Reason               string `json:"reason,omitempty"`
}
