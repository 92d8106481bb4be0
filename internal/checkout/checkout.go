package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

const (
	DefaultTimeout         = 30 * time.Second
	DefaultClearRetryDelay = 200 * time.Millisecond

	gatewayErrorMessage  = "Payment service is unavailable, please try again later"
	confirmedMessage     = "Payment successful"
	cartNotClearedNotice = "Payment successful, but your cart could not be emptied. " +
		"Remove the paid tickets before checking out again"

	clearAttempts = 3
	unlockTimeout = 3 * time.Second
)

type CartStore interface {
	Snapshot(ctx context.Context, userID int) (domain.CartSnapshot, error)
	Clear(ctx context.Context, userID int) error
}

// Result describes a finished checkout attempt that reached the gateway.
type Result struct {
	UserID   int
	Request  domain.PaymentRequest
	Response domain.PaymentResponse
	Payment  domain.Payment
}

// Listener is told about every successful checkout, after the cart has been
// cleared, the payment recorded and the checkout lock released.
type Listener interface {
	CheckoutFinished(ctx context.Context, result Result)
}

type Config struct {
	Currency        string
	Timeout         time.Duration
	ClearRetryDelay time.Duration
}

// Service coordinates checkouts. A user has at most one checkout in flight:
// the in-process state map guards this instance and the distributed lock
// guards every other one.
type Service struct {
	logger   *slog.Logger
	carts    CartStore
	gateway  domain.PaymentGateway
	payments domain.PaymentRepository
	lock     domain.CheckoutLock
	listener Listener
	cfg      Config
	now      func() time.Time

	mu     sync.Mutex
	states map[int]domain.PaymentState
	wg     sync.WaitGroup
}

func NewService(
	logger *slog.Logger,
	carts CartStore,
	gateway domain.PaymentGateway,
	payments domain.PaymentRepository,
	lock domain.CheckoutLock,
	listener Listener,
	cfg Config) *Service {

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.ClearRetryDelay <= 0 {
		cfg.ClearRetryDelay = DefaultClearRetryDelay
	}

	return &Service{
		logger:   logger,
		carts:    carts,
		gateway:  gateway,
		payments: payments,
		lock:     lock,
		listener: listener,
		cfg:      cfg,
		now:      time.Now,
		states:   make(map[int]domain.PaymentState),
	}
}

type attempt struct {
	userID   int
	token    string
	previous domain.PaymentState
	request  domain.PaymentRequest
	released bool
}

// Start validates the cart and, when it is payable, hands it to the gateway in
// the background. The returned state is loading on success. The gateway call
// is detached from ctx: cancelling the request does not abort the payment.
func (s *Service) Start(ctx context.Context, userID int) (domain.PaymentState, error) {
	a, state, err := s.begin(ctx, userID)
	if err != nil {
		return state, err
	}

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()
		s.finish(context.WithoutCancel(ctx), a)
	}()

	return state, nil
}

// Checkout is Start followed by waiting for the gateway's answer.
func (s *Service) Checkout(ctx context.Context, userID int) (domain.PaymentState, error) {
	a, state, err := s.begin(ctx, userID)
	if err != nil {
		return state, err
	}

	return s.finish(context.WithoutCancel(ctx), a), nil
}

func (s *Service) State(userID int) domain.PaymentState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[userID]
	if !ok {
		return domain.IdleState()
	}

	return state
}

// Reset returns the user's payment state to idle once its outcome has been
// shown. A checkout that is still running cannot be reset. Resetting a pending
// checkout abandons the hosted payment page; a later confirmation still
// completes it.
func (s *Service) Reset(userID int) (domain.PaymentState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[userID]
	if ok && state.Phase == domain.PaymentLoading {
		return state, domain.ErrCheckoutInProgress
	}

	delete(s.states, userID)

	return domain.IdleState(), nil
}

// Wait blocks until every background checkout has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) begin(ctx context.Context, userID int) (*attempt, domain.PaymentState, error) {
	s.mu.Lock()

	previous, ok := s.states[userID]
	if !ok {
		previous = domain.IdleState()
	}

	if previous.Phase == domain.PaymentLoading || previous.Phase == domain.PaymentPending {
		s.mu.Unlock()
		s.logger.Warn("checkout rejected: another checkout is in progress", "user_id", userID, "phase", previous.Phase)
		return nil, previous, domain.ErrCheckoutInProgress
	}

	loading := domain.PaymentState{Phase: domain.PaymentLoading, UpdatedAt: s.now()}
	s.states[userID] = loading

	s.mu.Unlock()

	token, acquired, err := s.lock.TryLock(ctx, userID)
	if err != nil {
		s.restore(userID, previous)
		return nil, previous, fmt.Errorf("failed to acquire checkout lock: %w", err)
	}

	if !acquired {
		s.restore(userID, previous)
		s.logger.Warn("checkout rejected: lock held by another instance", "user_id", userID)
		return nil, previous, domain.ErrCheckoutInProgress
	}

	a := &attempt{userID: userID, token: token, previous: previous}

	snapshot, err := s.carts.Snapshot(ctx, userID)
	if err != nil {
		s.release(ctx, a)
		s.restore(userID, previous)
		return nil, previous, err
	}

	if len(snapshot.Items) == 0 || snapshot.TotalPrice.IsZero() {
		s.release(ctx, a)
		state := s.fail(userID, domain.ErrCartEmpty.Error())
		s.logger.Warn("checkout rejected: empty cart", "user_id", userID)
		return nil, state, domain.ErrCartEmpty
	}

	err = domain.ValidateBookings(snapshot.Items)
	if err != nil {
		s.release(ctx, a)
		state := s.fail(userID, err.Error())
		s.logger.Warn("checkout rejected: duplicate booking", "user_id", userID, "error", err)
		return nil, state, err
	}

	a.request = domain.PaymentRequest{
		UserID:      userID,
		TotalAmount: snapshot.TotalPrice,
		Items:       snapshot.Items,
	}

	s.logger.Info("checkout started",
		"user_id", userID,
		"items", len(snapshot.Items),
		"total", snapshot.TotalPrice.String(),
	)

	return a, loading, nil
}

func (s *Service) finish(ctx context.Context, a *attempt) (state domain.PaymentState) {
	logger := s.logger.With("user_id", a.userID)

	defer s.release(ctx, a)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic occurred during checkout", "panic", r)
			state = s.fail(a.userID, gatewayErrorMessage)
		}
	}()

	gatewayCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	resp, err := s.gateway.Checkout(gatewayCtx, a.request)
	if err != nil {
		logger.Error("payment gateway call failed", "error", err)
		s.record(ctx, a, domain.PaymentStatusFailed, nil, gatewayErrorMessage)
		return s.fail(a.userID, gatewayErrorMessage)
	}

	if !resp.Success {
		logger.Warn("payment declined", "message", resp.Message)
		s.record(ctx, a, domain.PaymentStatusFailed, nil, resp.Message)
		return s.fail(a.userID, resp.Message)
	}

	if resp.AwaitsConfirmation() {
		s.record(ctx, a, domain.PaymentStatusPending, &resp.TransactionID, resp.Message)

		state = domain.PaymentState{
			Phase:     domain.PaymentPending,
			Response:  resp,
			UpdatedAt: s.now(),
		}
		s.restore(a.userID, state)

		logger.Info("checkout awaiting payment confirmation", "transaction_id", resp.TransactionID)

		return state
	}

	cleared := s.clearCart(ctx, logger, a.userID)

	payment := s.record(ctx, a, domain.PaymentStatusCompleted, &resp.TransactionID, resp.Message)

	// the outcome is final: the next checkout may start before the listener runs
	s.release(ctx, a)

	state = s.successState(resp, cleared)
	s.restore(a.userID, state)

	logger.Info("checkout completed", "transaction_id", resp.TransactionID)

	s.notify(ctx, Result{
		UserID:   a.userID,
		Request:  a.request,
		Response: *resp,
		Payment:  payment,
	})

	return state
}

// Confirm settles a checkout that was waiting on a hosted payment page. A paid
// checkout clears the cart and notifies the listener; an unpaid one moves the
// user's state to error and keeps the cart.
func (s *Service) Confirm(ctx context.Context, transactionID string, paid bool, message string) (domain.PaymentState, error) {
	status := domain.PaymentStatusFailed
	if paid {
		status = domain.PaymentStatusCompleted
		if message == "" {
			message = confirmedMessage
		}
	}

	payment, err := s.payments.UpdateStatus(ctx, transactionID, status, message)
	if err != nil {
		return domain.PaymentState{}, fmt.Errorf("failed to settle payment %s: %w", transactionID, err)
	}

	logger := s.logger.With("user_id", payment.UserID, "transaction_id", transactionID)

	if !paid {
		logger.Warn("hosted payment was not completed", "message", message)

		state := domain.PaymentState{
			Phase:     domain.PaymentError,
			Message:   message,
			UpdatedAt: s.now(),
		}
		s.settle(payment.UserID, state)

		return state, nil
	}

	request := domain.PaymentRequest{
		UserID:      payment.UserID,
		TotalAmount: payment.Amount,
	}

	snapshot, err := s.carts.Snapshot(ctx, payment.UserID)
	if err != nil {
		logger.Error("failed to load paid cart", "error", err)
	} else {
		request.Items = snapshot.Items
	}

	cleared := s.clearCart(ctx, logger, payment.UserID)

	resp := &domain.PaymentResponse{
		Success:       true,
		Message:       message,
		TransactionID: transactionID,
	}

	state := s.successState(resp, cleared)
	s.settle(payment.UserID, state)

	logger.Info("checkout confirmed")

	s.notify(ctx, Result{
		UserID:   payment.UserID,
		Request:  request,
		Response: *resp,
		Payment:  *payment,
	})

	return state, nil
}

// clearCart empties a paid cart, retrying transient store failures. It reports
// whether the cart ended up empty.
func (s *Service) clearCart(ctx context.Context, logger *slog.Logger, userID int) bool {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, s.carts.Clear(ctx, userID)
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(s.cfg.ClearRetryDelay)),
		backoff.WithMaxTries(clearAttempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.Warn("failed to clear cart after payment, retrying", "error", err, "retry_in", next)
		}),
	)
	if err != nil {
		logger.Error("failed to clear cart after successful payment", "attempts", clearAttempts, "error", err)
		return false
	}

	return true
}

func (s *Service) successState(resp *domain.PaymentResponse, cleared bool) domain.PaymentState {
	state := domain.PaymentState{
		Phase:     domain.PaymentSuccess,
		Response:  resp,
		UpdatedAt: s.now(),
	}

	if !cleared {
		state.Message = cartNotClearedNotice
	}

	return state
}

func (s *Service) notify(ctx context.Context, result Result) {
	if s.listener == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic occurred in checkout listener", "user_id", result.UserID, "panic", r)
		}
	}()

	s.listener.CheckoutFinished(ctx, result)
}

func (s *Service) record(
	ctx context.Context,
	a *attempt,
	status domain.PaymentStatus,
	transactionID *string,
	message string) domain.Payment {

	if transactionID != nil && *transactionID == "" {
		transactionID = nil
	}

	payment := domain.Payment{
		UserID:        a.userID,
		TransactionID: transactionID,
		Amount:        a.request.TotalAmount,
		Currency:      s.cfg.Currency,
		Status:        status,
		Message:       message,
		ItemCount:     len(a.request.Items),
	}

	err := s.payments.Create(ctx, &payment)
	if err != nil {
		s.logger.Error("failed to record payment", "user_id", a.userID, "status", status, "error", err)
	}

	return payment
}

// release gives up the attempt's checkout lock. Only the first call unlocks.
func (s *Service) release(ctx context.Context, a *attempt) {
	if a.released {
		return
	}
	a.released = true

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), unlockTimeout)
	defer cancel()

	err := s.lock.Unlock(ctx, a.userID, a.token)
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("failed to release checkout lock", "user_id", a.userID, "error", err)
	}
}

func (s *Service) fail(userID int, message string) domain.PaymentState {
	state := domain.PaymentState{
		Phase:     domain.PaymentError,
		Message:   message,
		UpdatedAt: s.now(),
	}

	s.restore(userID, state)

	return state
}

// settle records the outcome of a confirmation unless a newer checkout is
// already running for the user.
func (s *Service) settle(userID int, state domain.PaymentState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.states[userID]; ok && current.Phase == domain.PaymentLoading {
		return
	}

	s.states[userID] = state
}

func (s *Service) restore(userID int, state domain.PaymentState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state.Phase == domain.PaymentIdle {
		delete(s.states, userID)
		return
	}

	s.states[userID] = state
}
