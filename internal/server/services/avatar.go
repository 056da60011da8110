package services

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// GravatarURL derives a deterministic avatar URL from an already-normalized
// (trimmed, lowercased) email address.
func GravatarURL(email string) string {
	digest := md5.Sum([]byte(email))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=identicon", hex.EncodeToString(digest[:]))
}
