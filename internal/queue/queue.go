package queue

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue is an in-memory queue with retry, used inside the server
// process. cmd/worker consumes the RabbitMQ side.
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: 3,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			return // ACK
		}

		job.RetryCount++
		log.Printf("Job failed (attempt %d/%d): %+v, error: %v\n", job.RetryCount, job.MaxRetries, job.Payload, err)

		if job.RetryCount > job.MaxRetries {
			log.Printf("Job permanently failed after %d attempts: %+v\n", job.MaxRetries, job.Payload)
			return // No requeue
		}

		// Exponential backoff before retry
		time.Sleep(time.Duration(job.RetryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// ArtifactPublishedEvent notifies clients that a deliverable went live.
type ArtifactPublishedEvent struct {
	Kind        string `json:"kind"`
	ArtifactID  int    `json:"artifact_id"`
	CompanyHQID int    `json:"company_hq_id"`
	Summary     string `json:"summary"`
}

// StartNotificationSubscriber wires the in-process side of client
// notifications: every publish event is handed to notify, with the queue's
// retry semantics on failure.
func StartNotificationSubscriber(q Queue, notify func(event ArtifactPublishedEvent) error) {
	go func() {
		err := q.Subscribe("client_notifications", func(payload any) error {
			event, ok := payload.(ArtifactPublishedEvent)
			if !ok {
				log.Println("⚠️ Invalid payload type, expected ArtifactPublishedEvent")
				return nil // no retry for malformed payloads
			}

			log.Println("📩 Processing client notification for", event.Kind, "artifact", event.ArtifactID)

			if err := notify(event); err != nil {
				log.Println("⚠️ Failed to deliver notification:", err)
				return err // triggers retry in queue
			}
			return nil
		})

		if err != nil {
			log.Println("⚠️ Failed to start subscriber for client_notifications:", err)
		}
	}()
}
