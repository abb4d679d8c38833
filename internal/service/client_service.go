package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Gusi-ui/sadmini-sub001/internal/dto"
	"github.com/Gusi-ui/sadmini-sub001/internal/model"
	"github.com/Gusi-ui/sadmini-sub001/internal/repository"
)

// ── client module errors ──

var ErrClientNotFound = errors.New("client not found")

// ClientService is the care recipient business interface.
type ClientService interface {
	Create(ctx context.Context, req *dto.CreateClientRequest, callerID string) (*dto.ClientResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ClientResponse, error)
	List(ctx context.Context, req *dto.ClientListRequest) ([]dto.ClientResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateClientRequest, callerID string) (*dto.ClientResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type clientService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClientService creates a ClientService.
func NewClientService(repo *repository.Repository, logger *zap.Logger) ClientService {
	return &clientService{repo: repo, logger: logger}
}

func (s *clientService) Create(ctx context.Context, req *dto.CreateClientRequest, callerID string) (*dto.ClientResponse, error) {
	client := &model.Client{
		Name:         req.Name,
		Address:      req.Address,
		Municipality: req.Municipality,
		IsActive:     true,
	}
	client.CreatedBy = &callerID
	client.UpdatedBy = &callerID

	if err := s.repo.Client.Create(ctx, client); err != nil {
		s.logger.Error("creating client failed", zap.Error(err))
		return nil, err
	}
	return toClientResponse(client), nil
}

func (s *clientService) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := s.repo.Client.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("looking up client failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toClientResponse(client), nil
}

func (s *clientService) List(ctx context.Context, req *dto.ClientListRequest) ([]dto.ClientResponse, int64, error) {
	req.Normalize()

	clients, total, err := s.repo.Client.List(ctx, req.Municipality, req.Page, req.PageSize)
	if err != nil {
		s.logger.Error("listing clients failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		result = append(result, *toClientResponse(&clients[i]))
	}
	return result, total, nil
}

func (s *clientService) Update(ctx context.Context, id string, req *dto.UpdateClientRequest, callerID string) (*dto.ClientResponse, error) {
	client, err := s.repo.Client.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Municipality != nil {
		client.Municipality = *req.Municipality
	}
	if req.IsActive != nil {
		client.IsActive = *req.IsActive
	}
	client.UpdatedBy = &callerID

	if err := s.repo.Client.Update(ctx, client); err != nil {
		s.logger.Error("updating client failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toClientResponse(client), nil
}

func (s *clientService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Client.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClientNotFound
		}
		return err
	}

	if err := s.repo.Client.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("deleting client failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── helpers ──

func toClientResponse(client *model.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:           client.ClientID,
		Name:         client.Name,
		Address:      client.Address,
		Municipality: client.Municipality,
		IsActive:     client.IsActive,
		CreatedAt:    client.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:    client.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
