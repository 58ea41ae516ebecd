package service

import (
	"context"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/support/entity"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/support/repository"
	"github.com/google/uuid"
)

// FAQService storefront FAQ management
type FAQService struct {
	repo *repository.FAQRepository
}

func NewFAQService(repo *repository.FAQRepository) *FAQService {
	return &FAQService{repo: repo}
}

// CreateFAQRequest new FAQ payload
type CreateFAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// UpdateFAQRequest FAQ update payload
type UpdateFAQRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

func (s *FAQService) List(ctx context.Context, page, pageSize int) ([]entity.FAQ, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize)
}

func (s *FAQService) Get(ctx context.Context, id string) (*entity.FAQ, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *FAQService) Create(ctx context.Context, req *CreateFAQRequest) (*entity.FAQ, error) {
	faq := &entity.FAQ{
		ID:       uuid.New().String()[:32],
		Question: req.Question,
		Answer:   req.Answer,
	}
	if err := s.repo.Create(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *FAQService) Update(ctx context.Context, id string, req *UpdateFAQRequest) (*entity.FAQ, error) {
	faq, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Question != nil {
		faq.Question = *req.Question
	}
	if req.Answer != nil {
		faq.Answer = *req.Answer
	}

	if err := s.repo.Update(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *FAQService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
