package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateOrderReference builds a human-readable order number,
// e.g. ORD-20260901-143015-0482.
func GenerateOrderReference() string {
	now := time.Now().UTC()
	datePart := now.Format("20060102-150405")

	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(now.UnixNano() % 10000)
	}

	return fmt.Sprintf("ORD-%s-%04d", datePart, n.Int64())
}
