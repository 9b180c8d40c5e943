package payment

import (
	"github.com/fnadeau-1/wrestle-swap/app/common/consts/biz"
)

// Fee arithmetic works on minor currency units (cents) throughout. Rounding
// is half-up on the cent.

func roundRate(amountCents, bps int64) int64 {
	return (amountCents*bps + 5000) / 10000
}

// PlatformFee is the platform's cut of the product amount.
func PlatformFee(productCents int64) int64 {
	return roundRate(productCents, biz.PlatformFeeBps)
}

// SellerReceives is what the seller keeps of the product amount.
func SellerReceives(productCents int64) int64 {
	return productCents - PlatformFee(productCents)
}

// ApplicationFee is the amount withheld from the total charge when funds are
// routed to a connected account. If the caller's total does not cover
// product+shipping+tax this can go negative; the value is passed through as
// computed.
func ApplicationFee(totalCents, sellerReceivesCents int64) int64 {
	return totalCents - sellerReceivesCents
}

// CancellationFee is withheld from the buyer's refund on cancellation.
func CancellationFee(originalCents int64) int64 {
	return roundRate(originalCents, biz.CancellationFeeBps)
}

// RefundAmount is the partial refund issued on cancellation.
func RefundAmount(originalCents int64) int64 {
	return originalCents - CancellationFee(originalCents)
}
