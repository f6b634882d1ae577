package contact

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
)

// idSpan covers the 10-digit range [1000000000, 9999999999].
var idSpan = big.NewInt(9_000_000_000)

// newID generates a 10-digit numeric identifier that has not been issued to
// any message or subscription in this process.
func (s *Service) newID() (string, error) {
	for {
		n, err := rand.Int(rand.Reader, idSpan)
		if err != nil {
			return "", fmt.Errorf("generate id: %w", err)
		}
		id := strconv.FormatInt(n.Int64()+1_000_000_000, 10)
		if !s.store.IDInUse(id) {
			return id, nil
		}
	}
}
