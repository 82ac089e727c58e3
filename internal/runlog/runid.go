package runlog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func NowTS() string { return time.Now().UTC().Format(time.RFC3339Nano) }

// NewRunID returns a random run-<uuid> identifier.
func NewRunID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Sprintf("run-%d", time.Now().UTC().UnixNano())
	}
	return "run-" + id.String()
}
