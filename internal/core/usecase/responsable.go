package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heladerias/audit-vision/internal/catalog"
	"github.com/heladerias/audit-vision/internal/core/domain"
	"github.com/heladerias/audit-vision/internal/core/ports"
)

// ResponsableUseCase manages the accountable-party reference entities.
type ResponsableUseCase struct {
	responsables ports.ResponsableRepository
}

func NewResponsableUseCase(responsables ports.ResponsableRepository) *ResponsableUseCase {
	return &ResponsableUseCase{responsables: responsables}
}

func (uc *ResponsableUseCase) Create(ctx context.Context, nombre, local, rol string) (*domain.Responsable, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "create responsable", fmt.Errorf("nombre is required"))
	}
	if !catalog.ValidRolResponsable(rol) {
		return nil, domain.WrapError(domain.ErrInvalidInput, "create responsable", fmt.Errorf("invalid rol %q", rol))
	}
	r := &domain.Responsable{
		ID:        uuid.NewString(),
		Nombre:    nombre,
		Local:     local,
		Rol:       rol,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.responsables.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create responsable: %w", err)
	}
	return r, nil
}

func (uc *ResponsableUseCase) List(ctx context.Context, local string) ([]domain.Responsable, error) {
	out, err := uc.responsables.ListByLocal(ctx, local)
	if err != nil {
		return nil, fmt.Errorf("list responsables: %w", err)
	}
	return out, nil
}

func (uc *ResponsableUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.responsables.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete responsable: %w", err)
	}
	return nil
}
