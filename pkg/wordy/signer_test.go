package wordy

import (
	"crypto/md5"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestSign_KnownValue(t *testing.T) {
	got := Sign(Params{"b": "2", "a": "1"}, "secret")

	assert.Equal(t, "d37cfe88ec8ff020e497f5197bf3ba1c", got)
	assert.Equal(t, md5Hex("a=1b=2secret"), got)
	assert.Equal(t, Sign(Params{"a": "1", "b": "2"}, "secret"), got)
}

func TestSign_Deterministic(t *testing.T) {
	params := Params{
		"customer_id":   "42",
		"brief":         "Please proofread",
		"language_code": "GB",
		"title1":        "post_title",
	}

	first := Sign(params, "token")
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Sign(params, "token"))
	}
}

func TestSign_OrderIndependent(t *testing.T) {
	a := Params{}
	a["z"] = "last"
	a["m"] = "middle"
	a["a"] = "first"

	b := Params{}
	b["a"] = "first"
	b["z"] = "last"
	b["m"] = "middle"

	assert.Equal(t, Sign(a, "s"), Sign(b, "s"))
}

func TestSign_Inputs(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		token  string
		plain  string
	}{
		{
			name:   "byte order puts uppercase first",
			params: Params{"b": "x", "B": "y"},
			token:  "t",
			plain:  "B=yb=xt",
		},
		{
			name:   "numeric suffixes sort as strings",
			params: Params{"title2": "b", "title10": "c", "title1": "a"},
			token:  "t",
			plain:  "title1=atitle10=ctitle2=bt",
		},
		{
			name:   "values are not escaped",
			params: Params{"message": "a&b=c d"},
			token:  "t",
			plain:  "message=a&b=c dt",
		},
		{
			name:   "no params signs the token alone",
			params: Params{},
			token:  "secret",
			plain:  "secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, md5Hex(tt.plain), Sign(tt.params, tt.token))
		})
	}
}

func TestSign_TokenChangesSignature(t *testing.T) {
	params := Params{"customer_id": "1"}
	assert.NotEqual(t, Sign(params, "secret"), Sign(params, "session-token"))
}

func TestParams_SetInt(t *testing.T) {
	p := Params{}
	p.SetInt("customer_id", 1234)
	p.SetInt("negative", -5)

	assert.Equal(t, "1234", p["customer_id"])
	assert.Equal(t, "-5", p["negative"])
}
