package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports/mocks"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/pkg/validate"
)

func catalog() []*domain.Product {
	return []*domain.Product{
		{ID: "3", Name: "فستان أسود", Category: "فساتين", Price: decimal.NewFromInt(500)},
		{ID: "2", Name: "طرحة", Category: "حجاب", Price: decimal.NewFromInt(80)},
		{ID: "1", Name: "فستان أحمر", Category: "فساتين", Price: decimal.NewFromInt(450)},
	}
}

func TestProducts_FilterByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProductRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return(catalog(), nil).Times(3)

	svc := usecase.NewCatalogService(repo, mocks.NewMockProductValidator(ctrl), noopLogger{})

	all, err := svc.Products(context.Background(), "all")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	empty, err := svc.Products(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, empty, 3)

	dresses, err := svc.Products(context.Background(), "فساتين")
	require.NoError(t, err)
	require.Len(t, dresses, 2)
	assert.Equal(t, "3", dresses[0].ID)
	assert.Equal(t, "1", dresses[1].ID)
}

func TestCategories_FirstSeenOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProductRepository(ctrl)

	products := append(catalog(), &domain.Product{ID: "0", Category: ""})
	repo.EXPECT().List(gomock.Any()).Return(products, nil)

	svc := usecase.NewCatalogService(repo, mocks.NewMockProductValidator(ctrl), noopLogger{})

	got, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"فساتين", "حجاب"}, got)
}

func TestProductLookup_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProductRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)
	repo.EXPECT().GetByLabel(gomock.Any(), "gone").Return(nil, nil)
	repo.EXPECT().GetByLabel(gomock.Any(), "black-dress").Return(catalog()[0], nil)

	svc := usecase.NewCatalogService(repo, mocks.NewMockProductValidator(ctrl), noopLogger{})

	_, err := svc.ProductByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.ProductByLabel(context.Background(), "gone")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	p, err := svc.ProductByLabel(context.Background(), "black-dress")
	require.NoError(t, err)
	assert.Equal(t, "3", p.ID)
}

func TestProductLookup_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProductRepository(ctrl)
	boom := errors.New("conn reset")
	repo.EXPECT().GetByID(gomock.Any(), "1").Return(nil, boom)

	svc := usecase.NewCatalogService(repo, mocks.NewMockProductValidator(ctrl), noopLogger{})

	_, err := svc.ProductByID(context.Background(), "1")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateProduct_AssignsIDAndTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProductRepository(ctrl)
	validator := mocks.NewMockProductValidator(ctrl)

	in := &domain.Product{Name: "جديد", Category: "فساتين", Price: decimal.NewFromInt(300)}

	gomock.InOrder(
		validator.EXPECT().ValidateProduct(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
	)

	svc := usecase.NewCatalogService(repo, validator, noopLogger{})

	before := time.Now().UTC().Add(-time.Second)
	got, err := svc.CreateProduct(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.True(t, got.CreatedAt.After(before))
	assert.Empty(t, in.ID, "input must not be mutated")
}

func TestCreateProduct_InvalidRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProductRepository(ctrl)
	validator := mocks.NewMockProductValidator(ctrl)

	validator.EXPECT().ValidateProduct(gomock.Any(), gomock.Any()).Return(validate.ErrInvalidProduct)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewCatalogService(repo, validator, noopLogger{})

	_, err := svc.CreateProduct(context.Background(), &domain.Product{})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, validate.ErrInvalidProduct)
}

func TestUpdateProduct_BumpsCreatedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProductRepository(ctrl)
	validator := mocks.NewMockProductValidator(ctrl)

	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	in := &domain.Product{ID: "7", Name: "قديم", Category: "حجاب", CreatedAt: old}

	validator.EXPECT().ValidateProduct(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Product) error {
			assert.True(t, p.CreatedAt.After(old))
			return nil
		})

	svc := usecase.NewCatalogService(repo, validator, noopLogger{})

	got, err := svc.UpdateProduct(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "7", got.ID)

	_, err = svc.UpdateProduct(context.Background(), &domain.Product{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeleteProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProductRepository(ctrl)

	repo.EXPECT().Delete(gomock.Any(), "7").Return(nil)
	repo.EXPECT().Delete(gomock.Any(), "8").Return(domain.ErrNotFound)

	svc := usecase.NewCatalogService(repo, mocks.NewMockProductValidator(ctrl), noopLogger{})

	require.NoError(t, svc.DeleteProduct(context.Background(), "7"))
	assert.ErrorIs(t, svc.DeleteProduct(context.Background(), "8"), domain.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteProduct(context.Background(), ""), domain.ErrValidation)
}
