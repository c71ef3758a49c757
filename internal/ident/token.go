package ident

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Token is an opaque, time-stamped identifier handed out for escrows,
// disputes and cross-chain transfers. The trailing segment of the wire form is
// the creation time in milliseconds since epoch, so downstream status
// derivation can recover it without consulting any stored state.
type Token struct {
	Prefix    string
	Suffix    string
	CreatedAt time.Time
}

// New mints a token with a short random suffix.
func New(prefix string, now time.Time) Token {
	return Token{
		Prefix:    prefix,
		Suffix:    strings.SplitN(uuid.NewString(), "-", 2)[0],
		CreatedAt: now,
	}
}

// String renders the wire form prefix_suffix_millis.
func (t Token) String() string {
	return fmt.Sprintf("%s_%s_%d", t.Prefix, t.Suffix, t.CreatedAt.UnixMilli())
}

// Parse recovers a token from its wire form. The legacy two-segment form
// prefix_millis is accepted as well. The timestamp must be the trailing
// underscore-separated segment.
func Parse(s string) (Token, error) {
	parts := strings.Split(s, "_")
	if len(parts) < 2 {
		return Token{}, fmt.Errorf("malformed token %q", s)
	}
	millis, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	if err != nil {
		return Token{}, fmt.Errorf("token %q: trailing segment is not a timestamp: %w", s, err)
	}
	tok := Token{Prefix: parts[0], CreatedAt: time.UnixMilli(millis).UTC()}
	if len(parts) > 2 {
		tok.Suffix = strings.Join(parts[1:len(parts)-1], "_")
	}
	return tok, nil
}

// TxHash synthesizes a demo transaction hash of the form
// 0x<prefix><hex millis>.
func TxHash(prefix string, now time.Time) string {
	return "0x" + prefix + strconv.FormatInt(now.UnixMilli(), 16)
}
