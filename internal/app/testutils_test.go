package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/metinatakli/cinema-ticketing/api"
	"github.com/metinatakli/cinema-ticketing/internal/checkout"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/metinatakli/cinema-ticketing/internal/mailer"
	"github.com/metinatakli/cinema-ticketing/internal/mocks"
	"github.com/metinatakli/cinema-ticketing/internal/payment"
	"github.com/metinatakli/cinema-ticketing/internal/queue"
	"github.com/metinatakli/cinema-ticketing/internal/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const (
	ErrNotFound           = "The requested resource not found"
	ErrInternalServer     = "The server encountered a problem and could not process your request"
	ErrUnauthorized       = "You must be authenticated to access this resource"
	ErrInvalidCredentials = "invalid authentication credentials"
	ErrInvalidFields      = "One or more fields have invalid values"
)

var (
	testNow = time.Date(2025, 4, 15, 9, 0, 0, 0, time.UTC)

	testUser = &domain.User{
		ID:        1,
		Name:      "Freddie Mercury",
		Email:     "freddie@example.com",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	testFilm = &domain.Film{
		ID:          1375666,
		Title:       "Inception",
		Description: "A thief who steals corporate secrets through dream-sharing technology.",
		PosterUrl:   "https://example.com/inception.jpg",
		TrailerUrl:  "https://example.com/inception.mp4",
		Year:        2010,
		Runtime:     "2h 28m",
		Price:       decimal.NewFromInt(75000),
		Genres:      []string{"Action", "Sci-Fi"},
		Casts: []domain.Cast{
			{Name: "Leonardo DiCaprio", PictureUrl: "https://example.com/leo.jpg"},
		},
	}
)

// recordingPublisher keeps every event it is asked to publish.
type recordingPublisher struct {
	mu     sync.Mutex
	events []queue.CheckoutCompletedEvent
	err    error
}

func (p *recordingPublisher) PublishCheckoutCompleted(ctx context.Context, event queue.CheckoutCompletedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}

	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) Events() []queue.CheckoutCompletedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	events := make([]queue.CheckoutCompletedEvent, len(p.events))
	copy(events, p.events)
	return events
}

func newTestApplication(opts ...func(*Application)) *Application {
	payments := new(mocks.MockPaymentRepo)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()

	userRepo := &mocks.MockUserRepo{
		GetByIdFunc: func(ctx context.Context, id int) (*domain.User, error) {
			return testUser, nil
		},
	}

	app := NewApp(
		Config{Env: "test", Payment: PaymentConfig{Currency: "VND", Timeout: time.Second}},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		nil,
		nil,
		validator.NewValidator(),
		mailer.NewMockMailer(),
		scs.New(),
		userRepo,
		&mocks.MockFilmRepo{},
		payments,
		mocks.NewMemoryCartRepo(),
		new(mocks.MockBookmarkRepo),
		payment.NewMockGateway(0),
		mocks.NewMockCheckoutLock(),
		&recordingPublisher{},
	)
	app.now = func() time.Time { return testNow }

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// withGateway rebuilds the checkout service around gateway. The rebuilt service
// has no listener.
func withGateway(gateway domain.PaymentGateway) func(*Application) {
	return func(a *Application) {
		a.checkout = checkout.NewService(a.logger, a.carts, gateway, a.paymentRepo, mocks.NewMockCheckoutLock(), nil,
			checkout.Config{Currency: "VND", Timeout: time.Second})
	}
}

func withFilm(film *domain.Film) func(*Application) {
	return func(a *Application) {
		a.filmRepo = &mocks.MockFilmRepo{
			GetByIdFunc: func(ctx context.Context, id domain.FilmID) (*domain.Film, error) {
				if id != film.ID {
					return nil, domain.ErrRecordNotFound
				}
				return film, nil
			},
		}
	}
}

func setupTestSession(t *testing.T, app *Application, r *http.Request, userId int) *http.Request {
	ctx, err := app.sessionManager.Load(r.Context(), "session")
	if err != nil {
		t.Errorf("Failed to load session: %v", err)
	}

	if userId != 0 {
		app.sessionManager.Put(ctx, SessionKeyUserId.String(), userId)
	}

	return r.WithContext(ctx)
}

// authenticatedCookie stores a signed in session directly in the session store
// and returns the cookie a browser would send for it.
func authenticatedCookie(t *testing.T, app *Application, userId int) *http.Cookie {
	ctx, err := app.sessionManager.Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	app.sessionManager.Put(ctx, SessionKeyUserId.String(), userId)

	token, _, err := app.sessionManager.Commit(ctx)
	if err != nil {
		t.Fatalf("Failed to commit session: %v", err)
	}

	return &http.Cookie{Name: app.sessionManager.Cookie.Name, Value: token}
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader = http.NoBody

	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func decodeResponse[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var resp T
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	return resp
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	t.Helper()

	if w.Code != tt.wantStatus {
		t.Errorf("Status = %d, want %d; body: %s", w.Code, tt.wantStatus, w.Body.String())
	}

	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		if validationResp.Message == tt.wantErrMessage {
			return
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
