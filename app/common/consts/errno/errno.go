package errno

const (
	StatusOK = 10000
)

const (
	TokenEmpty = 40000 + iota
	TokenInvalid
	TokenExpired
)

const (
	InternalError = 50000 + iota
	InvalidParam
	SellerNotFound
	SellerForbidden
	ProductNotFound
	ConversationNotFound
	ConversationForbidden
	ConfigError
)

const (
	ChargeNotFound = 60000 + iota
	StripeError
	ShippoError
)
