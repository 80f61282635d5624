package tips

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// tipID builds a stable id from a tip's discriminating fields. The same
// advisory regenerated on a later run hashes to the same id, which is what
// the cooldown index and deduplication key on.
func tipID(parts ...string) string {
	h := fnv.New64a()
	h.Write([]byte(strings.Join(parts, "|")))
	return fmt.Sprintf("%016x", h.Sum64())
}
