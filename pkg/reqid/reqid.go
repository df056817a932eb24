package reqid

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

var prefix string
var reqid uint64

func init() {
	hostname, err := os.Hostname()
	if hostname == "" || err != nil {
		hostname = "localhost"
	}

	// A per-process component keeps IDs distinct across restarts of the
	// same host.
	run := strings.SplitN(uuid.NewString(), "-", 2)[0]
	prefix = fmt.Sprintf("%s/%s", hostname, run)
}

// NextRequestID generates the next request ID in the sequence.
func NextRequestID() string {
	return fmt.Sprintf("%s-%09d", prefix, atomic.AddUint64(&reqid, 1))
}
