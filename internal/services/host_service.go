package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dancedispatch/server/internal/models"
)

type HostService struct {
	hostsRepo models.HostsRepo
}

func NewHostService(hostsRepo models.HostsRepo) *HostService {
	return &HostService{
		hostsRepo: hostsRepo,
	}
}

func (hs *HostService) ListHosts(ctx context.Context) ([]models.Host, error) {
	return hs.hostsRepo.LoadHosts(ctx)
}

func (hs *HostService) GetHostByID(ctx context.Context, id string) (*models.Host, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("host ID cannot be empty")
	}
	return hs.hostsRepo.GetHostByID(ctx, id)
}
