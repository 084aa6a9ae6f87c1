// internal/service/artifact_service.go
package service

import (
    "context"
    "log"

    "github.com/unclebandit/bizdev-backend/internal/model"
    "github.com/unclebandit/bizdev-backend/internal/queue"
    "github.com/unclebandit/bizdev-backend/internal/repository"
)

type ArtifactService struct {
    Repo  repository.ArtifactRepositoryInterface
    Queue queue.Queue
}

func (s *ArtifactService) Create(ctx context.Context, a model.Artifact) error {
    return s.Repo.Create(ctx, a)
}

func (s *ArtifactService) Get(ctx context.Context, kind model.ArtifactKind, id int) (model.Artifact, error) {
    return s.Repo.GetByID(ctx, kind, id)
}

func (s *ArtifactService) List(ctx context.Context, kind model.ArtifactKind, companyHQID int) ([]model.Artifact, error) {
    return s.Repo.ListByKind(ctx, kind, companyHQID)
}

// Publish flips an artifact live and queues a client notification. The
// notification is best-effort: a queue failure never rolls back the publish.
func (s *ArtifactService) Publish(ctx context.Context, kind model.ArtifactKind, id int) (model.Artifact, error) {
    if err := s.Repo.SetPublished(ctx, kind, id, true); err != nil {
        return nil, err
    }

    artifact, err := s.Repo.GetByID(ctx, kind, id)
    if err != nil {
        return nil, err
    }

    if s.Queue != nil {
        event := queue.ArtifactPublishedEvent{
            Kind:       string(kind),
            ArtifactID: id,
            Summary:    artifact.Summary(),
        }
        if err := s.Queue.Publish("client_notifications", event); err != nil {
            log.Println("⚠️ failed to enqueue publish notification:", err)
        }
    }

    return artifact, nil
}

// Unpublish takes an artifact offline; published_at is cleared.
func (s *ArtifactService) Unpublish(ctx context.Context, kind model.ArtifactKind, id int) (model.Artifact, error) {
    if err := s.Repo.SetPublished(ctx, kind, id, false); err != nil {
        return nil, err
    }
    return s.Repo.GetByID(ctx, kind, id)
}
