package helpers

import (
	"math/rand"
	"strings"
	"time"
)

const letterBytes = "abcdefghijklmnopqrstuvwxyz"

func randomLetters(n int) string {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[src.Intn(len(letterBytes))]
	}
	return string(b)
}

// GenerateOrderID builds a human-readable order reference from the
// current time plus random letters, e.g. BO20260830151203XKQZ.
func GenerateOrderID() string {
	return "BO" + time.Now().Format("20060102150405") + strings.ToUpper(randomLetters(4))
}
