package workflow

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// newID builds a friendly unique ID like "REQ-4D11BE02".
func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(uuid.New().String()[:8]))
}
