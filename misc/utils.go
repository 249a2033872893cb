package misc

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
	"unsafe"
)

var (
	ErrMissingId = errors.New("missing id")
)

// 9 bytes of unixnano and 7 random bytes
func PseudoUUID() string {
	now := time.Now().UnixNano()
	randPart := make([]byte, 7)
	if _, err := rand.Read(randPart); err != nil {
		copy(randPart, (*(*[8]byte)(unsafe.Pointer(&now)))[:7])
	}
	return strconv.FormatInt(now, 10)[1:] + hex.EncodeToString(randPart)
}

// TransactionID builds the correlation token sent with every donation. It is
// cosmetic: the backend is not known to echo or deduplicate on it, and two
// submissions in the same tick are not guaranteed distinct tokens.
func TransactionID() string {
	return "TXN_" + PseudoUUID()
}

// TrimEmail trims whitespace only; institution lookups match email
// case-sensitively upstream, so no case folding happens here.
func TrimEmail(email string) string {
	return strings.TrimSpace(email)
}

func ParseId(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrMissingId
	}
	return id, nil
}
