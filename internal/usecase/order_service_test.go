package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports/mocks"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/pkg/validate"
)

const orderID = "order-1"

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func validOrder() *domain.Order {
	return &domain.Order{
		ID:       orderID,
		Customer: domain.Customer{Name: "أحمد", Phone: "0111", Address: "المعادي"},
		Region:   "cairo",
		Items: []domain.OrderItem{
			{ProductID: "p-1", Name: "قميص", UnitPrice: decimal.NewFromInt(100), Quantity: 2},
		},
		Subtotal: decimal.NewFromInt(200),
		Shipping: decimal.NewFromInt(50),
		Total:    decimal.NewFromInt(250),
		Channel:  domain.ChannelCOD,
	}
}

func TestCreateOrder_SetsPendingAndSaves(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockOrderRepository(ctrl)
	validator := mocks.NewMockOrderValidator(ctrl)

	o := validOrder()
	gomock.InOrder(
		validator.EXPECT().Validate(gomock.Any(), o).Return(nil),
		repo.EXPECT().Save(gomock.Any(), o).Return(nil),
	)

	svc := usecase.NewOrderService(repo, noopLogger{}, validator)
	if err := svc.CreateOrder(context.Background(), o); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if o.Status != domain.StatusPending {
		t.Fatalf("want pending, got %q", o.Status)
	}
	if o.CreatedAt.IsZero() {
		t.Fatal("created_at must be set")
	}
}

func TestCreateOrder_ValidationError_NoSave(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockOrderRepository(ctrl)
	validator := mocks.NewMockOrderValidator(ctrl)

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(validate.ErrInvalidOrder)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewOrderService(repo, noopLogger{}, validator)
	err := svc.CreateOrder(context.Background(), validOrder())
	if !errors.Is(err, domain.ErrValidation) || !errors.Is(err, validate.ErrInvalidOrder) {
		t.Fatalf("want ErrValidation+ErrInvalidOrder, got %v", err)
	}
}

func TestRecord_DelegatesToCreate(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockOrderRepository(ctrl)
	validator := mocks.NewMockOrderValidator(ctrl)

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	svc := usecase.NewOrderService(repo, noopLogger{}, validator)
	if err := svc.Record(context.Background(), validOrder()); err == nil {
		t.Fatal("expected save error")
	}
}

func TestListOrders_ClampsPaging(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockOrderRepository(ctrl)
	validator := mocks.NewMockOrderValidator(ctrl)

	gomock.InOrder(
		repo.EXPECT().List(gomock.Any(), 20, 0).Return([]*domain.Order{validOrder()}, nil),
		repo.EXPECT().List(gomock.Any(), 100, 5).Return(nil, nil),
	)

	svc := usecase.NewOrderService(repo, noopLogger{}, validator)

	got, err := svc.ListOrders(context.Background(), 0, -3)
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected: err=%v len=%d", err, len(got))
	}
	if _, err := svc.ListOrders(context.Background(), 1000, 5); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockOrderRepository(ctrl)
	validator := mocks.NewMockOrderValidator(ctrl)
	svc := usecase.NewOrderService(repo, noopLogger{}, validator)

	t.Run("valid status is normalized", func(t *testing.T) {
		repo.EXPECT().UpdateStatus(gomock.Any(), orderID, domain.StatusShipped).Return(nil)
		if err := svc.UpdateOrderStatus(context.Background(), orderID, " Shipped "); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("unknown status never reaches repo", func(t *testing.T) {
		err := svc.UpdateOrderStatus(context.Background(), orderID, "lost")
		if !errors.Is(err, domain.ErrInvalidStatus) {
			t.Fatalf("want ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		repo.EXPECT().UpdateStatus(gomock.Any(), "ghost", domain.StatusCancelled).Return(domain.ErrNotFound)
		err := svc.UpdateOrderStatus(context.Background(), "ghost", "cancelled")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
	})
}

func TestSaveFromMessage_InvalidJson(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockOrderRepository(ctrl)
	validator := mocks.NewMockOrderValidator(ctrl)
	svc := usecase.NewOrderService(repo, noopLogger{}, validator)

	err := svc.SaveFromMessage(context.Background(), []byte("{"))
	if !errors.Is(err, validate.ErrInvalidJSON) {
		t.Fatalf("want ErrInvalidJSON, got %v", err)
	}
}

func TestSaveFromMessage_UnknownField(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockOrderRepository(ctrl)
	validator := mocks.NewMockOrderValidator(ctrl)
	svc := usecase.NewOrderService(repo, noopLogger{}, validator)

	err := svc.SaveFromMessage(context.Background(), []byte(`{"id":"x","coupon":"FREE"}`))
	if !errors.Is(err, validate.ErrInvalidJSON) {
		t.Fatalf("want ErrInvalidJSON, got %v", err)
	}
}

func TestSaveFromMessage_TrailingData(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockOrderRepository(ctrl)
	validator := mocks.NewMockOrderValidator(ctrl)
	svc := usecase.NewOrderService(repo, noopLogger{}, validator)

	raw, _ := json.Marshal(validOrder())
	raw = append(raw, []byte(" {}")...)

	err := svc.SaveFromMessage(context.Background(), raw)
	if !errors.Is(err, validate.ErrInvalidJSON) {
		t.Fatalf("want ErrInvalidJSON, got %v", err)
	}
}

func TestSaveFromMessage_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockOrderRepository(ctrl)
	validator := mocks.NewMockOrderValidator(ctrl)

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(validate.ErrInvalidOrder)

	svc := usecase.NewOrderService(repo, noopLogger{}, validator)

	raw, _ := json.Marshal(validOrder())
	err := svc.SaveFromMessage(context.Background(), raw)
	if !errors.Is(err, validate.ErrInvalidOrder) {
		t.Fatalf("want ErrInvalidOrder, got %v", err)
	}
}

func TestSaveFromMessage_OK_SavesPending(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockOrderRepository(ctrl)
	validator := mocks.NewMockOrderValidator(ctrl)

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *domain.Order) error {
			if o.ID != orderID || o.Status != domain.StatusPending {
				t.Fatalf("unexpected order: %+v", o)
			}
			if !o.Total.Equal(decimal.NewFromInt(250)) {
				t.Fatalf("total: got %s", o.Total)
			}
			return nil
		})

	svc := usecase.NewOrderService(repo, noopLogger{}, validator)

	raw, _ := json.Marshal(validOrder())
	if err := svc.SaveFromMessage(context.Background(), raw); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestSaveFromMessage_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockOrderRepository(ctrl)
	validator := mocks.NewMockOrderValidator(ctrl)

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	svc := usecase.NewOrderService(repo, noopLogger{}, validator)

	raw, _ := json.Marshal(validOrder())
	err := svc.SaveFromMessage(context.Background(), raw)
	if err == nil || errors.Is(err, validate.ErrInvalidOrder) {
		t.Fatalf("want transient error, got %v", err)
	}
}
