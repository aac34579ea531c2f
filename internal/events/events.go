package events

import (
	"context"
	"time"
)

// Topics published by the service.
const (
	TopicResourceCreated = "resource.created"
	TopicResourceUpdated = "resource.updated"
	TopicResourceDeleted = "resource.deleted"
	TopicUserRegistered  = "user.registered"
)

// ResourceEvent describes a mutation on an ownership-scoped resource.
type ResourceEvent struct {
	Resource   string    `json:"resource"`
	ResourceID uint      `json:"resourceId"`
	ActorID    uint      `json:"actorId"`
	Department string    `json:"department,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// UserRegisteredEvent is published when a new account is created.
type UserRegisteredEvent struct {
	UserID     uint      `json:"userId"`
	Role       string    `json:"role"`
	CollegeID  string    `json:"collegeId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher sends domain events. Publish failures must never fail the
// request that produced them; callers log and move on.
type Publisher interface {
	Publish(ctx context.Context, topic string, event interface{}) error
	Close() error
}
