package services

import (
	"context"

	"github.com/dancedispatch/server/internal/models"
)

type TagService struct {
	tagsRepo models.TagsRepo
}

func NewTagService(tagsRepo models.TagsRepo) *TagService {
	return &TagService{
		tagsRepo: tagsRepo,
	}
}

func (ts *TagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return ts.tagsRepo.LoadTags(ctx)
}
