package stream

import "time"

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Clients only send control frames.
	maxMessageSize = 512
	// Snapshots queued per client before it is dropped as too slow.
	sendBufferSize = 16
)

// Log messages
const (
	LogMsgHubStopping       = "Stream hub shutting down"
	LogMsgClientConnected   = "Stream client connected"
	LogMsgClientDropped     = "Stream client disconnected"
	LogMsgClientTooSlow     = "Stream client too slow, dropping"
	LogMsgUpgradeFailed     = "WebSocket upgrade failed"
	LogMsgSnapshotEncodeErr = "Failed to encode snapshot for stream"
	LogMsgReadError         = "Stream client read error"
)
