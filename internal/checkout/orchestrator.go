package checkout

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/internal/pricing"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/google/uuid"
)

const (
	DefaultMessageBase = "https://wa.me/"
	DefaultRedirect    = "index.html"
)

// Cart — то, что оформлению нужно от корзины.
type Cart interface {
	All(ctx context.Context, sid string) ([]domain.LineItem, error)
	Clear(ctx context.Context, sid string) error
}

// Orchestrator — проверка формы и отправка заказа через deep link или form-relay (COD).
type Orchestrator struct {
	cart      Cart
	calc      *pricing.Calculator
	validator *validate.CheckoutValidator
	relay     ports.FormRelay
	recorder  ports.OrderRecorder // nil — заказы не записываются
	notifier  ports.Notifier
	log       ports.Logger

	guard       *submitGuard
	messageBase string
	redirect    string
	newID       func() string
	now         func() time.Time
}

// Option — настройка Orchestrator.
type Option func(*Orchestrator)

// WithBusinessPhone — номер магазина в deep link (wa.me/<phone>).
func WithBusinessPhone(phone string) Option {
	return func(o *Orchestrator) {
		phone = strings.TrimLeft(strings.TrimSpace(phone), "+")
		if phone != "" {
			o.messageBase = DefaultMessageBase + phone
		}
	}
}

func WithRedirect(target string) Option {
	return func(o *Orchestrator) {
		if target != "" {
			o.redirect = target
		}
	}
}

func WithOrderIDGenerator(fn func() string) Option {
	return func(o *Orchestrator) { o.newID = fn }
}

func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// NewOrchestrator — DI-конструктор.
func NewOrchestrator(
	cart Cart,
	calc *pricing.Calculator,
	relay ports.FormRelay,
	recorder ports.OrderRecorder,
	notifier ports.Notifier,
	log ports.Logger,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		cart:        cart,
		calc:        calc,
		validator:   validate.NewCheckoutValidator(calc),
		relay:       relay,
		recorder:    recorder,
		notifier:    notifier,
		log:         log,
		guard:       newSubmitGuard(),
		messageBase: DefaultMessageBase,
		redirect:    DefaultRedirect,
		newID:       uuid.NewString,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State — состояние кнопки отправки для сессии.
func (o *Orchestrator) State(sid string) domain.SubmitState {
	return o.guard.state(sid)
}

// MessageLink — ссылка на мессенджер с расшифровкой заказа.
// Корзину не очищает и заказ не записывает.
func (o *Orchestrator) MessageLink(ctx context.Context, sid string, form domain.CheckoutForm) (string, error) {
	ch := domain.ChannelMessageLink
	if !o.guard.acquire(sid, ch) {
		metrics.CheckoutSubmissions.WithLabelValues(string(ch), "busy").Inc()
		return "", domain.ErrSubmissionInProgress
	}
	defer o.guard.release(sid)

	form = normalize(form)
	items, totals, err := o.prepare(ctx, sid, ch, form)
	if err != nil {
		return "", err
	}

	link := MessageLinkURL(o.messageBase, BuildMessageText(form, items, totals))
	metrics.CheckoutSubmissions.WithLabelValues(string(ch), "ok").Inc()
	o.log.Infof(ctx, "message link built items=%d total=%s region=%s", len(items), totals.Total, totals.Region)
	return link, nil
}

// CashOnDelivery — отправка заказа через form-relay.
// Успех: запись заказа, очистка корзины, уведомление, redirect.
// Ошибка relay: *domain.SubmissionError, корзина сохраняется.
func (o *Orchestrator) CashOnDelivery(ctx context.Context, sid string, form domain.CheckoutForm) (domain.Receipt, error) {
	ch := domain.ChannelCOD
	if !o.guard.acquire(sid, ch) {
		metrics.CheckoutSubmissions.WithLabelValues(string(ch), "busy").Inc()
		return domain.Receipt{}, domain.ErrSubmissionInProgress
	}
	defer o.guard.release(sid)

	form = normalize(form)
	items, totals, err := o.prepare(ctx, sid, ch, form)
	if err != nil {
		return domain.Receipt{}, err
	}

	// уход клиента не отменяет уже начатую отправку
	ctx = context.WithoutCancel(ctx)

	start := time.Now()
	err = o.relay.Submit(ctx, BuildRelayMessage(form, items, totals))
	metrics.RelayDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CheckoutSubmissions.WithLabelValues(string(ch), "failed").Inc()
		o.log.Errorf(ctx, "cod relay submit failed err=%v", err)
		o.notifier.Notify(ctx, MsgSubmissionFailed)
		return domain.Receipt{}, &domain.SubmissionError{Channel: ch, Err: err}
	}

	order := o.buildOrder(form, items, totals, ch)
	if o.recorder != nil {
		if recErr := o.recorder.Record(ctx, order); recErr != nil {
			o.log.Warnf(ctx, "order record failed order_id=%s err=%v", order.ID, recErr)
		}
	}
	if clrErr := o.cart.Clear(ctx, sid); clrErr != nil {
		o.log.Errorf(ctx, "cart clear after order failed order_id=%s err=%v", order.ID, clrErr)
	}

	metrics.CheckoutSubmissions.WithLabelValues(string(ch), "ok").Inc()
	o.notifier.Notify(ctx, MsgOrderReceived)
	o.log.Infof(ctx, "cod order submitted order_id=%s items=%d total=%s", order.ID, len(items), order.Total)

	return domain.Receipt{OrderID: order.ID, Total: order.Total, Redirect: o.redirect}, nil
}

// prepare — корзина, шлюз проверки и итоги. Ошибка ввода сразу уходит пользователю.
func (o *Orchestrator) prepare(
	ctx context.Context,
	sid string,
	ch domain.Channel,
	form domain.CheckoutForm,
) ([]domain.LineItem, domain.Totals, error) {
	items, err := o.cart.All(ctx, sid)
	if err != nil {
		return nil, domain.Totals{}, err
	}

	if err := o.validator.Validate(ch, &form, len(items)); err != nil {
		metrics.CheckoutSubmissions.WithLabelValues(string(ch), "invalid").Inc()
		var fe *validate.FieldError
		if errors.As(err, &fe) {
			o.notifier.Notify(ctx, fe.Message)
		}
		return nil, domain.Totals{}, err
	}

	totals, err := o.calc.Summarize(items, form.Region)
	if err != nil {
		return nil, domain.Totals{}, err
	}
	return items, totals, nil
}

func (o *Orchestrator) buildOrder(
	form domain.CheckoutForm,
	items []domain.LineItem,
	t domain.Totals,
	ch domain.Channel,
) *domain.Order {
	shipping := t.Total.Sub(t.Subtotal)
	return &domain.Order{
		ID:         o.newID(),
		Customer:   domain.Customer{Name: form.Name, Phone: form.Phone, Address: form.Address},
		Region:     t.Region,
		RegionName: t.RegionName,
		Items:      domain.OrderItemsFromCart(items),
		Subtotal:   t.Subtotal,
		Shipping:   shipping,
		Total:      t.Total,
		Channel:    ch,
		Status:     domain.StatusPending,
		CreatedAt:  o.now().UTC(),
	}
}
