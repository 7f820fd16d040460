package auth

import (
	"context"

	"campus/backend/internal/model"
)

var ErrAdminRequired = model.NewError(model.ErrForbidden, "Admin access required")

// Guard derives the caller from an Authorization header and gates admin-only operations.
type Guard struct {
	tokens *TokenService
}

func NewGuard(tokens *TokenService) *Guard {
	return &Guard{tokens: tokens}
}

func (g *Guard) RequireUser(ctx context.Context, authorization string) (*Claims, error) {
	token, err := BearerToken(authorization)
	if err != nil {
		return nil, err
	}
	return g.tokens.Verify(ctx, token)
}

func (g *Guard) RequireAdmin(ctx context.Context, authorization string) (*Claims, error) {
	claims, err := g.RequireUser(ctx, authorization)
	if err != nil {
		return nil, err
	}
	if claims.Role != model.RoleAdmin {
		return nil, ErrAdminRequired
	}
	return claims, nil
}
