package chat

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewMessageID 生成新的消息 ID / Generates a new message ID
func NewMessageID() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("msg_%d_%s", time.Now().UTC().UnixMilli(), hex.EncodeToString(buf))
}
