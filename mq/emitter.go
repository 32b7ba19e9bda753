package mq

import (
	"context"
	"encoding/json"
	"log"

	"vypar/models"
	"vypar/rdx"
)

// Emit publishes an indexing event to Redis for the search worker. Handlers
// call it in a goroutine; a publish failure is logged and swallowed.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, "indexing-events", data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s event to Redis: %v", eventName, err)
	}
}
