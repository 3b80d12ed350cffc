package wordy

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// Params are the form parameters of a single request. Values are sent and
// signed exactly as stored.
type Params map[string]string

// SetInt stores an integer parameter in base 10.
func (p Params) SetInt(key string, v int64) {
	p[key] = strconv.FormatInt(v, 10)
}

// Sign computes the request signature: the parameters sorted by key, joined as
// key=value with no separators, followed by the signing token, hashed with MD5.
//
// MD5 is fixed by the remote protocol.
func Sign(params Params, token string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	b.WriteString(token)

	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
