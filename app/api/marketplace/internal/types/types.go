// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

import "encoding/json"

type CreatePaymentIntentRequest struct {
	Amount          int64  `json:"amount"`
	Product_amount  int64  `json:"product_amount,optional"`
	Shipping_amount int64  `json:"shipping_amount,optional"`
	Tax_amount      int64  `json:"tax_amount,optional"`
	Currency        string `json:"currency,optional"`
	Seller_account  string `json:"seller_account_id,optional"`
	Product_id      int64  `json:"product_id,optional"`
	Idempotency_key string `json:"idempotency_key,optional"`
}

type CreatePaymentIntentResponse struct {
	Status_code       int    `json:"status_code"`
	Status_msg        string `json:"status_msg"`
	Client_secret     string `json:"client_secret,omitempty"`
	Payment_intent_id string `json:"payment_intent_id,omitempty"`
}

type CancelOrderRequest struct {
	Payment_intent_id     string `json:"payment_intent_id"`
	Product_id            int64  `json:"product_id,optional"`
	Reason                string `json:"reason,optional"`
	Cancelled_by          string `json:"cancelled_by,optional"`
	Shippo_transaction_id string `json:"shippo_transaction_id,optional"`
}

type StepOutcome struct {
	Name   string `json:"name"`
	Ok     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

type CancelOrderResponse struct {
	Status_code      int           `json:"status_code"`
	Status_msg       string        `json:"status_msg"`
	Success          bool          `json:"success"`
	Refund_id        string        `json:"refund_id,omitempty"`
	Refund_amount    int64         `json:"refund_amount"`
	Cancellation_fee int64         `json:"cancellation_fee"`
	Label_voided     bool          `json:"label_voided"`
	Steps            []StepOutcome `json:"steps,omitempty"`
}

type SenderAddress struct {
	Name    string `json:"name,optional"`
	Street1 string `json:"street1,optional"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

type ParcelInput struct {
	Length        string `json:"length,optional"`
	Width         string `json:"width,optional"`
	Height        string `json:"height,optional"`
	Distance_unit string `json:"distance_unit,optional"`
	Weight        string `json:"weight,optional"`
	Mass_unit     string `json:"mass_unit,optional"`
}

type GetRatesRequest struct {
	Zip_code       string        `json:"zip_code"`
	Sender_address SenderAddress `json:"sender_address"`
	Parcel         *ParcelInput  `json:"parcel,optional"`
}

type GetRatesResponse struct {
	Status_code     int               `json:"status_code"`
	Status_msg      string            `json:"status_msg"`
	Upstream_status int               `json:"upstream_status,omitempty"`
	Rates           []json.RawMessage `json:"rates"`
}

type CreateLabelRequest struct {
	Rate_object_id  string `json:"rate_object_id"`
	Label_file_type string `json:"label_file_type,optional"`
	Async           bool   `json:"async,optional"`
}

type LabelTransaction struct {
	Object_id       string `json:"object_id"`
	Status          string `json:"status"`
	Tracking_number string `json:"tracking_number"`
	Tracking_url    string `json:"tracking_url,omitempty"`
	Label_url       string `json:"label_url"`
	Eta             string `json:"eta,omitempty"`
}

type CreateLabelResponse struct {
	Status_code     int               `json:"status_code"`
	Status_msg      string            `json:"status_msg"`
	Upstream_status int               `json:"upstream_status,omitempty"`
	Transaction     *LabelTransaction `json:"transaction,omitempty"`
}

type CreateConnectedAccountRequest struct {
	User_id     string `json:"user_id"`
	Email       string `json:"email"`
	Return_url  string `json:"return_url,optional"`
	Refresh_url string `json:"refresh_url,optional"`
}

type CreateConnectedAccountResponse struct {
	Status_code int    `json:"status_code"`
	Status_msg  string `json:"status_msg"`
	Account_id  string `json:"account_id,omitempty"`
	Url         string `json:"url,omitempty"`
}

type CheckSellerStatusRequest struct {
	User_id string `json:"user_id"`
}

type CheckSellerStatusResponse struct {
	Status_code       int    `json:"status_code"`
	Status_msg        string `json:"status_msg"`
	Connected         bool   `json:"connected"`
	Charges_enabled   bool   `json:"charges_enabled"`
	Details_submitted bool   `json:"details_submitted"`
	Payouts_enabled   bool   `json:"payouts_enabled"`
}

type DeleteSoldProductsResponse struct {
	Status_code   int    `json:"status_code"`
	Status_msg    string `json:"status_msg"`
	Success       bool   `json:"success"`
	Deleted_count int64  `json:"deleted_count"`
}

type StartConversationRequest struct {
	Seller_id  string `json:"seller_id"`
	Product_id string `json:"product_id,optional"`
}

type ConversationInfo struct {
	Id              string `json:"id"`
	Buyer_id        string `json:"buyer_id"`
	Seller_id       string `json:"seller_id"`
	Product_id      string `json:"product_id,omitempty"`
	Last_message    string `json:"last_message,omitempty"`
	Last_message_at int64  `json:"last_message_at"`
	Created_at      int64  `json:"created_at"`
}

type StartConversationResponse struct {
	Status_code  int               `json:"status_code"`
	Status_msg   string            `json:"status_msg"`
	Conversation *ConversationInfo `json:"conversation,omitempty"`
}

type ListConversationsResponse struct {
	Status_code   int                `json:"status_code"`
	Status_msg    string             `json:"status_msg"`
	Conversations []ConversationInfo `json:"conversations"`
}

type SendMessageRequest struct {
	Conversation_id string `json:"conversation_id"`
	Text            string `json:"text"`
}

type MessageInfo struct {
	Id              string `json:"id"`
	Conversation_id string `json:"conversation_id"`
	Sender_id       string `json:"sender_id"`
	Role            string `json:"role"`
	Text            string `json:"text"`
	Timestamp       int64  `json:"timestamp"`
}

type SendMessageResponse struct {
	Status_code int          `json:"status_code"`
	Status_msg  string       `json:"status_msg"`
	Message     *MessageInfo `json:"message,omitempty"`
}

type ListMessagesRequest struct {
	Conversation_id string `form:"conversation_id"`
}

type ListMessagesResponse struct {
	Status_code int           `json:"status_code"`
	Status_msg  string        `json:"status_msg"`
	Messages    []MessageInfo `json:"messages"`
}
