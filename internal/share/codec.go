// Package share packs an order into a compact URL-safe token, builds share
// links around it and renders those links as QR codes sized to fit.
package share

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	lzstring "github.com/daku10/go-lz-string"

	"github.com/BartekS5/osmeac/pkg/logger"
	"github.com/BartekS5/osmeac/pkg/models"
)

// QueryParam is the link query parameter carrying the token.
const QueryParam = "order"

// Encode serializes the whole record and compresses it into a token that is
// safe to place in a URL query unescaped.
func Encode(o models.Order) (string, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return "", fmt.Errorf("encode order: %w", err)
	}
	token, err := lzstring.CompressToEncodedURIComponent(string(data))
	if err != nil {
		return "", fmt.Errorf("compress order: %w", err)
	}
	return token, nil
}

// Decode reverses Encode. Any failure yields ok=false and a zero record,
// never a partially filled one.
func Decode(token string) (o models.Order, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warnf("share: decoder panic on token of %d chars: %v", len(token), r)
			o, ok = models.Order{}, false
		}
	}()

	token = strings.TrimSpace(token)
	if token == "" {
		return models.Order{}, false
	}
	text, err := lzstring.DecompressFromEncodedURIComponent(token)
	if err != nil || text == "" {
		logger.Debugf("share: token does not decompress: %v", err)
		return models.Order{}, false
	}

	trimmed := bytes.TrimSpace([]byte(text))
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return models.Order{}, false
	}
	var decoded models.Order
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		logger.Debugf("share: token payload is not an order: %v", err)
		return models.Order{}, false
	}
	return decoded, true
}

// Link builds base?order=<token>, keeping any query already on base.
func Link(base string, o models.Order) (string, error) {
	token, err := Encode(o)
	if err != nil {
		return "", err
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
		if strings.HasSuffix(base, "?") || strings.HasSuffix(base, "&") {
			sep = ""
		}
	}
	return base + sep + QueryParam + "=" + token, nil
}

// FromLink decodes a share link or a bare token.
func FromLink(s string) (models.Order, bool) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, QueryParam+"=") {
		return Decode(s)
	}
	u, err := url.Parse(s)
	if err != nil {
		return models.Order{}, false
	}
	// The token alphabet includes '+', which ParseQuery would turn into a
	// space, so pull the raw value.
	for _, kv := range strings.Split(u.RawQuery, "&") {
		if v, found := strings.CutPrefix(kv, QueryParam+"="); found {
			return Decode(v)
		}
	}
	return models.Order{}, false
}
