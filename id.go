package invoicekit

import (
	"crypto/rand"
	"math/big"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short random base-36 identifier for elements and
// documents. Seven characters gives ~78 billion values, plenty for the
// handful of elements a document carries.
func GenerateID() string {
	buf := make([]byte, 7)
	max := big.NewInt(int64(len(idAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken.
			panic("invoicekit: id generation: " + err.Error())
		}
		buf[i] = idAlphabet[n.Int64()]
	}
	return string(buf)
}
