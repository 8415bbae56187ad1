// Package transport contiene los casos de uso CRUD de las dos colecciones
// alimentadas por la operación: إفراجات y viajes.
package transport

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Transporte-api/internal/application/dto"
	"github.com/jhoicas/Transporte-api/internal/domain"
	"github.com/jhoicas/Transporte-api/internal/domain/entity"
	"github.com/jhoicas/Transporte-api/internal/domain/repository"
)

// UseCase casos de uso de releases y viajes.
type UseCase struct {
	releaseRepo repository.ReleaseRepository
	recordRepo  repository.TransportRecordRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(releaseRepo repository.ReleaseRepository, recordRepo repository.TransportRecordRepository) *UseCase {
	return &UseCase{releaseRepo: releaseRepo, recordRepo: recordRepo}
}

// CreateRelease registra un إفراج nuevo.
func (uc *UseCase) CreateRelease(createdBy string, in dto.CreateReleaseRequest) (*dto.ReleaseResponse, error) {
	if strings.TrimSpace(in.SiteName) == "" {
		return nil, fmt.Errorf("%w: site_name requerido", domain.ErrInvalidInput)
	}
	if in.TotalQuantity.IsNegative() {
		return nil, fmt.Errorf("%w: total_quantity no puede ser negativa", domain.ErrInvalidInput)
	}
	releaseDate := time.Now()
	if in.ReleaseDate != nil {
		releaseDate = *in.ReleaseDate
	}
	release := &entity.Release{
		ID:            uuid.New().String(),
		SiteName:      in.SiteName,
		GoodsType:     in.GoodsType,
		TotalQuantity: in.TotalQuantity,
		ReleaseDate:   releaseDate,
		CreatedAt:     time.Now(),
		CreatedBy:     createdBy,
	}
	if err := uc.releaseRepo.Create(release); err != nil {
		return nil, err
	}
	return toReleaseResponse(release), nil
}

// ListReleases devuelve el snapshot completo de إفراجات.
func (uc *UseCase) ListReleases() ([]dto.ReleaseResponse, error) {
	list, err := uc.releaseRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReleaseResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReleaseResponse(r))
	}
	return items, nil
}

// CreateRecord registra un viaje nuevo con estado validado contra el enum.
func (uc *UseCase) CreateRecord(createdBy string, in dto.CreateTransportRecordRequest) (*dto.TransportRecordResponse, error) {
	if strings.TrimSpace(in.UnloadingSite) == "" {
		return nil, fmt.Errorf("%w: unloading_site requerido", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = entity.TripStatusInProgress
	}
	if !entity.ValidTripStatus(status) {
		return nil, fmt.Errorf("%w: estado de viaje desconocido %q", domain.ErrInvalidInput, in.Status)
	}
	record := &entity.TransportRecord{
		ID:            uuid.New().String(),
		UnloadingSite: in.UnloadingSite,
		GoodsType:     in.GoodsType,
		Weight:        in.Weight,
		Status:        status,
		Date:          in.Date,
		CreatedAt:     time.Now(),
		CreatedBy:     createdBy,
	}
	if err := uc.recordRepo.Create(record); err != nil {
		return nil, err
	}
	return toRecordResponse(record), nil
}

// ListRecords devuelve el snapshot completo de viajes.
func (uc *UseCase) ListRecords() ([]dto.TransportRecordResponse, error) {
	list, err := uc.recordRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransportRecordResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRecordResponse(r))
	}
	return items, nil
}

// UpdateTripStatus transiciona el estado de un viaje.
func (uc *UseCase) UpdateTripStatus(id string, in dto.UpdateTripStatusRequest) error {
	if !entity.ValidTripStatus(in.Status) {
		return fmt.Errorf("%w: estado de viaje desconocido %q", domain.ErrInvalidInput, in.Status)
	}
	return uc.recordRepo.UpdateStatus(id, in.Status)
}

func toReleaseResponse(r *entity.Release) *dto.ReleaseResponse {
	return &dto.ReleaseResponse{
		ID:            r.ID,
		SiteName:      r.SiteName,
		GoodsType:     r.GoodsType,
		TotalQuantity: r.TotalQuantity,
		ReleaseDate:   r.ReleaseDate,
		CreatedAt:     r.CreatedAt,
	}
}

func toRecordResponse(r *entity.TransportRecord) *dto.TransportRecordResponse {
	return &dto.TransportRecordResponse{
		ID:            r.ID,
		UnloadingSite: r.UnloadingSite,
		GoodsType:     r.GoodsType,
		Weight:        r.Weight,
		Status:        r.Status,
		Date:          r.Date,
		CreatedAt:     r.CreatedAt,
	}
}
