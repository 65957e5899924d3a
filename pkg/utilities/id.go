package utilities

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/segmentio/ksuid"
)

// NewRequestID returns a KSUID string used to tag dashboard HTTP requests.
func NewRequestID() string {
	return ksuid.New().String()
}

// NewBroadcastID generates a snowflake ID string for an accepted broadcast
// request, using a node ID from SNOWFLAKE_NODE (node 1 when unset or invalid).
// If the node cannot be initialized it falls back to a KSUID string so a
// unique ID is still returned.
func NewBroadcastID() string {
	nodeID := int64(1)
	if env := os.Getenv("SNOWFLAKE_NODE"); env != "" {
		if n, err := strconv.ParseInt(env, 10, 64); err == nil {
			nodeID = n
		}
	}
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return NewRequestID()
	}
	return node.Generate().String()
}
