package messaging

// Conversation ties a buyer and a seller together around a listing. Times
// are unix milliseconds, matching the storefront.
type Conversation struct {
	Id            string `json:"id"`
	BuyerId       string `json:"buyer_id"`
	SellerId      string `json:"seller_id"`
	ProductId     string `json:"product_id,omitempty"`
	LastMessage   string `json:"last_message,omitempty"`
	LastMessageAt int64  `json:"last_message_at"`
	CreatedAt     int64  `json:"created_at"`
}

// Participant reports whether userId belongs to the conversation and in
// which role.
func (c *Conversation) Participant(userId string) (role string, ok bool) {
	switch userId {
	case c.BuyerId:
		return RoleBuyer, true
	case c.SellerId:
		return RoleSeller, true
	}
	return "", false
}

type Message struct {
	Id             string `json:"id"`
	ConversationId string `json:"conversation_id"`
	SenderId       string `json:"sender_id"`
	Role           string `json:"role"`
	Text           string `json:"text"`
	Timestamp      int64  `json:"timestamp"`
}

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)
