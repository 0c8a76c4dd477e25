package content

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/folio/backend/internal/domain/content"
	"github.com/folio/backend/internal/infrastructure/telemetry"
)

// CertificationService handles certification use cases
type CertificationService struct {
	repo    content.CertificationRepository
	metrics *telemetry.ContentMetrics
	logger  *zap.Logger
}

// NewCertificationService creates a new certification service
func NewCertificationService(repo content.CertificationRepository, metrics *telemetry.ContentMetrics, logger *zap.Logger) *CertificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CertificationService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// Create creates a new certification
func (s *CertificationService) Create(ctx context.Context, req CreateCertificationRequest) (*CertificationResponse, error) {
	cert, err := content.NewCertification(req.Title, req.Issuer)
	if err != nil {
		return nil, err
	}

	cert.Description = req.Description
	cert.IssueDate = req.IssueDate
	cert.ExpiryDate = req.ExpiryDate
	cert.CredentialID = req.CredentialID
	cert.CredentialURL = req.CredentialURL
	if req.Status != "" {
		cert.Status = req.Status
	}
	cert.ExamDomains = req.ExamDomains

	if err := s.repo.Save(ctx, cert); err != nil {
		return nil, err
	}

	s.metrics.RecordWrite(ctx, "certification", "create")
	return ToCertificationResponse(cert), nil
}

// GetByID returns a certification by ID
func (s *CertificationService) GetByID(ctx context.Context, id uuid.UUID) (*CertificationResponse, error) {
	cert, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordRead(ctx, "certification")
	return ToCertificationResponse(cert), nil
}

// GetBySlug returns a certification by slug
func (s *CertificationService) GetBySlug(ctx context.Context, slug string) (*CertificationResponse, error) {
	cert, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordRead(ctx, "certification")
	return ToCertificationResponse(cert), nil
}

// List returns certifications matching the filter with the total count
func (s *CertificationService) List(ctx context.Context, filter ListFilter) ([]CertificationResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	certs, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	s.metrics.RecordRead(ctx, "certification")
	responses := make([]CertificationResponse, len(certs))
	for i := range certs {
		responses[i] = *ToCertificationResponse(&certs[i])
	}
	return responses, total, nil
}

// Update applies a partial update to a certification
func (s *CertificationService) Update(ctx context.Context, id uuid.UUID, req UpdateCertificationRequest) (*CertificationResponse, error) {
	cert, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := cert.Rename(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Issuer != nil {
		cert.Issuer = *req.Issuer
	}
	if req.Description != nil {
		cert.Description = *req.Description
	}
	if req.IssueDate != nil {
		cert.IssueDate = *req.IssueDate
	}
	if req.ExpiryDate != nil {
		cert.ExpiryDate = req.ExpiryDate
	}
	if req.CredentialID != nil {
		cert.CredentialID = *req.CredentialID
	}
	if req.CredentialURL != nil {
		cert.CredentialURL = *req.CredentialURL
	}
	if req.Status != nil {
		cert.Status = *req.Status
	}
	if req.ExamDomains != nil {
		cert.ExamDomains = req.ExamDomains
	}
	cert.Touch()

	if err := s.repo.Save(ctx, cert); err != nil {
		return nil, err
	}

	s.metrics.RecordWrite(ctx, "certification", "update")
	return ToCertificationResponse(cert), nil
}

// Delete removes a certification
func (s *CertificationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.metrics.RecordWrite(ctx, "certification", "delete")
	return nil
}
