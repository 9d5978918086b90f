package comp

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID generates a collection-unique entity id: a kind prefix, the current
// unix-millisecond timestamp, and a short random suffix.
func NewID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}
