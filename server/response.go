package server

import (
	"strconv"
	"strings"

	"github.com/ayushkumar121/real-db/db"
	"github.com/ayushkumar121/real-db/types"
)

// renderResult builds the JSON payload for a successful program:
// {"message":"OK","data":[{...},...]}. It must run under the same store
// handle the program executed with, so every identity still resolves.
func renderResult(h *db.Handle, ids []types.Ident) string {
	var b strings.Builder
	b.WriteString(`{"message":"OK","data":[`)

	emitted := 0
	for _, id := range ids {
		rec, ok := h.Get(id.Table, id.Row)
		if !ok {
			continue
		}
		if emitted > 0 {
			b.WriteByte(',')
		}
		emitted++
		b.WriteByte('{')
		for m, key := range rec.Fields() {
			if m > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(key)
			b.WriteString(`":`)
			b.WriteString(renderValue(rec[key]))
		}
		b.WriteByte('}')
	}

	b.WriteString("]}")
	return b.String()
}

// renderError wraps a lex/compile/execute failure; the transport status
// stays 200 and the message carries the whole story
func renderError(err error) string {
	return `{"message":"` + err.Error() + `"}`
}

// renderValue renders one value the way the wire contract asks:
// identities as quoted table:row, numbers bare, strings quoted with no
// character escaping.
func renderValue(v types.Value) string {
	switch val := v.(type) {
	case types.Ident:
		return `"` + val.String() + `"`
	case types.Int:
		return strconv.FormatInt(val.Val, 10)
	case types.Float:
		return strconv.FormatFloat(val.Val, 'g', -1, 64)
	case types.Str:
		return `"` + val.Value() + `"`
	default:
		return `""`
	}
}
