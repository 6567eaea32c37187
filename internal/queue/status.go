package queue

import "github.com/google/uuid"

// StatusKeyPrefix namespaces cached dispatch statuses.
const StatusKeyPrefix = "reminders:status:"

// StatusKey is the cache key holding the last known status of a dispatch.
func StatusKey(id uuid.UUID) string {
	return StatusKeyPrefix + id.String()
}
