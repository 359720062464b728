package oidc

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/justdc/club-api/internal/application/auth"
	"github.com/justdc/club-api/internal/domain/entity"
	"github.com/justdc/club-api/pkg/config"
)

var _ auth.IdentityVerifier = (*Verifier)(nil)

// Verifier verifica ID tokens del proveedor de identidad externo vía OIDC
// discovery. Los ID tokens de Firebase son ID tokens OIDC estándar
// (issuer https://securetoken.google.com/<project-id>), por lo que el mismo
// adaptador sirve para Firebase o cualquier otro proveedor conforme.
type Verifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewVerifier descubre el proveedor y construye el verificador de ID tokens.
func NewVerifier(ctx context.Context, cfg config.OIDCConfig) (*Verifier, error) {
	if cfg.IssuerURL == "" {
		return nil, fmt.Errorf("oidc: OIDC_ISSUER_URL es requerido")
	}
	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("oidc: descubrir proveedor: %w", err)
	}
	return &Verifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
	}, nil
}

// Verify valida firma, issuer, audiencia y expiración del ID token y extrae
// el claim de identidad. Un token sin email se rechaza: el email es la clave
// con la que el resto del sistema resuelve al usuario.
func (v *Verifier) Verify(ctx context.Context, rawIDToken string) (*entity.IdentityClaim, error) {
	idToken, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("oidc: verificar ID token: %w", err)
	}

	var claims struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("oidc: parsear claims: %w", err)
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("oidc: el ID token no incluye email")
	}

	return &entity.IdentityClaim{
		Email:      claims.Email,
		Name:       claims.Name,
		PictureURL: claims.Picture,
	}, nil
}
