package retrieval

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/ocs-2025.net/internal/domain"
)

// IRetrievalService defines the interface for downloading stored artifacts
type IRetrievalService interface {
	// Fetch returns the stored artifact's filename and content for an id
	Fetch(ctx context.Context, caller domain.UserInfo, id uuid.UUID) (filename string, content []byte, err error)
}
