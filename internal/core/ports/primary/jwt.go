package primary

import (
	"context"

	"gitlab.com/ocs-2025.net/internal/domain"
)

// JWTService decodes and verifies the session tokens issued by the external
// auth collaborator. The core never issues tokens itself.
type JWTService interface {
	GenerateTokenHMAC(ctx context.Context, method string, claims map[string]interface{}) (string, error)
	VerifyTokenHMAC(ctx context.Context, token string, method string) (bool, error)
	DecodeTokenPayload(ctx context.Context, token string) (domain.UserInfo, error)
}
