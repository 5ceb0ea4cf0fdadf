package mq

import (
	"log"

	"media04/structs"
)

// Emit publishes a domain event to the log. Delivery is in-process and
// best-effort; nothing in the request path waits on it.
func Emit(eventName string, content structs.Index) {
	log.Printf("[Emit] event=%s entity=%s/%s method=%s", eventName, content.EntityType, content.EntityId, content.Method)
}
