package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/google/uuid"
)

var (
	_ ports.CatalogReader = (*CatalogService)(nil)
	_ ports.CatalogWriter = (*CatalogService)(nil)
)

// AllCategories — фильтр витрины «все товары».
const AllCategories = "all"

// CatalogService — каталог: витрина читает, админка пишет.
type CatalogService struct {
	repo      ports.ProductRepository
	validator ports.ProductValidator
	log       ports.Logger
	newID     func() string
	now       func() time.Time
}

// NewCatalogService — DI-конструктор.
func NewCatalogService(
	repo ports.ProductRepository,
	validator ports.ProductValidator,
	log ports.Logger,
) *CatalogService {
	return &CatalogService{
		repo:      repo,
		validator: validator,
		log:       log,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Products — товары категории, новые первыми; пустая категория или "all" — все.
func (s *CatalogService) Products(ctx context.Context, category string) ([]*domain.Product, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		s.log.Errorf(ctx, "repo.List failed err=%v", err)
		return nil, err
	}

	category = strings.TrimSpace(category)
	if category == "" || category == AllCategories {
		return all, nil
	}

	filtered := make([]*domain.Product, 0, len(all))
	for _, p := range all {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *CatalogService) ProductByID(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed id=%s err=%v", id, err)
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: product %s", domain.ErrNotFound, id)
	}
	return p, nil
}

// ProductByLabel — товар по человекочитаемой метке из ссылки.
func (s *CatalogService) ProductByLabel(ctx context.Context, label string) (*domain.Product, error) {
	p, err := s.repo.GetByLabel(ctx, label)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByLabel failed label=%s err=%v", label, err)
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: product label %s", domain.ErrNotFound, label)
	}
	return p, nil
}

// Categories — уникальные категории в порядке первого появления (меню навигации).
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, 8)
	out := make([]string, 0, 8)
	for _, p := range all {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out, nil
}

// CreateProduct — новый товар; id генерируется, если не задан.
func (s *CatalogService) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: product is nil", domain.ErrValidation)
	}
	created := *p
	if created.ID == "" {
		created.ID = s.newID()
	}
	created.CreatedAt = s.now().UTC()

	if err := s.validator.ValidateProduct(ctx, &created); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	if err := s.repo.Create(ctx, &created); err != nil {
		s.log.Errorf(ctx, "repo.Create failed id=%s err=%v", created.ID, err)
		return nil, err
	}

	s.log.Infof(ctx, "product created id=%s category=%s", created.ID, created.Category)
	return &created, nil
}

// UpdateProduct — полная перезапись; created_at сдвигается, чтобы товар поднялся в выдаче.
func (s *CatalogService) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if p == nil || p.ID == "" {
		return nil, fmt.Errorf("%w: product id is required", domain.ErrValidation)
	}
	updated := *p
	updated.CreatedAt = s.now().UTC()

	if err := s.validator.ValidateProduct(ctx, &updated); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	if err := s.repo.Update(ctx, &updated); err != nil {
		s.log.Warnf(ctx, "repo.Update failed id=%s err=%v", updated.ID, err)
		return nil, err
	}

	s.log.Infof(ctx, "product updated id=%s", updated.ID)
	return &updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: product id is required", domain.ErrValidation)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Warnf(ctx, "repo.Delete failed id=%s err=%v", id, err)
		return err
	}
	s.log.Infof(ctx, "product deleted id=%s", id)
	return nil
}
