package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/support/entity"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/support/repository"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// ReviewService plant reviews with photo upload to object storage
type ReviewService struct {
	repo        *repository.ReviewRepository
	minioClient *minio.Client
	bucketName  string
}

func NewReviewService(repo *repository.ReviewRepository, minioClient *minio.Client, bucketName string) *ReviewService {
	return &ReviewService{
		repo:        repo,
		minioClient: minioClient,
		bucketName:  bucketName,
	}
}

// CreateReviewRequest new review payload
type CreateReviewRequest struct {
	PlantName    string `json:"plant_name" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required"`
	Rating       int    `json:"rating" binding:"required"`
	Title        string `json:"title"`
	Body         string `json:"body"`
}

// UpdateReviewRequest review update payload
type UpdateReviewRequest struct {
	Rating *int    `json:"rating"`
	Title  *string `json:"title"`
	Body   *string `json:"body"`
}

func (s *ReviewService) List(ctx context.Context, page, pageSize int, plantName string) ([]entity.Review, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, plantName)
}

func (s *ReviewService) Get(ctx context.Context, id string) (*entity.Review, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ReviewService) Create(ctx context.Context, req *CreateReviewRequest) (*entity.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", httputil.ErrValidation)
	}

	review := &entity.Review{
		ID:           uuid.New().String()[:32],
		PlantName:    req.PlantName,
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Title:        req.Title,
		Body:         req.Body,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, id string, req *UpdateReviewRequest) (*entity.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, fmt.Errorf("%w: rating must be between 1 and 5", httputil.ErrValidation)
		}
		review.Rating = *req.Rating
	}
	if req.Title != nil {
		review.Title = *req.Title
	}
	if req.Body != nil {
		review.Body = *req.Body
	}

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// AttachPhoto uploads a review photo to MinIO and records the object URL.
func (s *ReviewService) AttachPhoto(ctx context.Context, id string, reader io.Reader, fileName string, fileSize int64, contentType string) (*entity.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.minioClient == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}

	objectName := fmt.Sprintf("reviews/%s/%s%s", time.Now().Format("2006/01/02"), uuid.New().String()[:8], filepath.Ext(fileName))
	_, err = s.minioClient.PutObject(ctx, s.bucketName, objectName, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload photo: %w", err)
	}

	review.PhotoURL = fmt.Sprintf("/%s/%s", s.bucketName, objectName)
	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
