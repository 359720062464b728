package auth

import (
	"context"

	"github.com/justdc/club-api/internal/application/dto"
	"github.com/justdc/club-api/internal/application/usecase"
	"github.com/justdc/club-api/internal/domain"
	"github.com/justdc/club-api/internal/domain/entity"
	"github.com/justdc/club-api/pkg/jwt"
)

// IdentityVerifier puerto del verificador de identidad externo: valida un
// ID token opaco y devuelve los atributos verificados. La aplicación confía
// en claim.Email como autoritativo una vez que Verify tiene éxito.
type IdentityVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*entity.IdentityClaim, error)
}

// JWTConfig configuración para la emisión del token de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase intercambia un ID token del proveedor externo por un token de
// sesión propio, aprovisionando el usuario en el primer login.
type AuthUseCase struct {
	verifier IdentityVerifier
	users    *usecase.UserUseCase
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(verifier IdentityVerifier, users *usecase.UserUseCase, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{verifier: verifier, users: users, jwtCfg: jwtCfg}
}

// Login verifica el ID token externo, garantiza el registro de usuario y
// emite el JWT de sesión. Un token inválido o expirado devuelve
// domain.ErrUnauthenticated sin tocar la lógica de roles/permisos.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	claim, err := uc.verifier.Verify(ctx, in.IDToken)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, _, err := uc.users.EnsureUser(ctx, *claim)
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *usecase.ToProfileResponse(user),
	}, nil
}
