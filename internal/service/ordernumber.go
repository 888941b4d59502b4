package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	orderNumberPrefix  = "BOBA"
	orderNumberCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderNumberSuffix  = 4
)

// GenerateOrderNumber produces a human-readable order identifier of the form
// BOBA-20241230-A1B2. The suffix space is ~1.7M combinations per day; a
// unique-constraint hit on insert is handled by the caller with a bounded
// retry.
func GenerateOrderNumber(now time.Time) string {
	suffix := make([]byte, orderNumberSuffix)
	max := big.NewInt(int64(len(orderNumberCharset)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// degraded path: time-derived index if the entropy source fails
			suffix[i] = orderNumberCharset[time.Now().UnixNano()%int64(len(orderNumberCharset))]
			continue
		}
		suffix[i] = orderNumberCharset[n.Int64()]
	}
	return fmt.Sprintf("%s-%s-%s", orderNumberPrefix, now.Format("20060102"), suffix)
}
