package bootstrap

import (
	"sweetbloom/internal/pkg/config"
	"sweetbloom/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTVerifier,
	),
)

func NewJWTVerifier(cfg config.Config) *jwt.Verifier {
	return jwt.NewVerifier(cfg.JWT.Secret)
}
