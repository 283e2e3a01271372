// README: TTL cache contract and deterministic key derivation.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Cache is a keyed store with per-entry TTL. Implementations must serialize
// mutation across concurrent callers; reads observe a consistent snapshot.
type Cache interface {
	// Get returns the cached value for key, or false once the entry expired.
	Get(ctx context.Context, key string) (any, bool)
	// Set stores value under key with an absolute expiry of now + ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Clear(ctx context.Context)
}

// Key derives a deterministic cache key from a logical operation name and
// its parameter set. Parameters are sorted by name, so identical queries map
// to the same key regardless of argument ordering.
func Key(op string, params map[string]any) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(op)
	for _, name := range names {
		v, err := json.Marshal(params[name])
		if err != nil {
			v = []byte(fmt.Sprintf("%v", params[name]))
		}
		b.WriteByte(':')
		b.WriteString(name)
		b.WriteByte('=')
		b.Write(v)
	}

	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
