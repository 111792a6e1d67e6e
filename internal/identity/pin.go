package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tokenrelay/internal/repository"
	tokenIssuer "tokenrelay/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

var ErrInvalidAccessToken error = errors.New("invalid access token")
var ErrInvalidPinCode error = errors.New("invalid pin code")
var ErrPinCodeExpired error = errors.New("pin code expired")
var ErrLimitExceeded error = errors.New("pin code verification limit exceeded")

const (
	DefaultAttemptBurst    = 5
	DefaultAttemptInterval = time.Minute
)

type LimitConfig struct {
	// Burst is the number of attempts a user may make at once.
	Burst int
	// Interval is the time needed to regain one attempt.
	Interval time.Duration
}

// PinVerifier checks a user's pin against the bcrypt hash on record.
// Attempts are rate limited per user. Limiters of users that have regained
// every attempt are dropped, so only recently active users are tracked.
type PinVerifier struct {
	logs      *zap.SugaredLogger
	tokens    TokenValidator
	users     UserStore
	limit     rate.Limit
	burst     int
	refill    time.Duration
	now       func() time.Time
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	lastSweep time.Time
}

func NewPinVerifier(logger *zap.SugaredLogger, tokens TokenValidator, users UserStore, cfg LimitConfig) *PinVerifier {
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultAttemptBurst
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultAttemptInterval
	}

	return &PinVerifier{
		logs:     logger,
		tokens:   tokens,
		users:    users,
		limit:    rate.Every(cfg.Interval),
		burst:    cfg.Burst,
		refill:   cfg.Interval * time.Duration(cfg.Burst),
		now:      time.Now,
		limiters: make(map[string]*rate.Limiter),
	}
}

// VerifyPin validates the access token of userID and compares pin with the stored hash.
func (p *PinVerifier) VerifyPin(ctx context.Context, userID, accessToken, pin string) error {
	if !p.allow(userID) {
		p.logs.Infow("pin verification limited", "user_id", userID)
		return ErrLimitExceeded
	}

	subject, err := p.tokens.Subject(accessToken, tokenIssuer.UseAccess)
	if err != nil || subject != userID {
		return ErrInvalidAccessToken
	}

	user, err := p.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidAccessToken
		}
		return fmt.Errorf("get user: %w", err)
	}

	if user.PinHash == "" {
		return ErrInvalidPinCode
	}

	if user.PinExpiresAt != nil && p.now().After(*user.PinExpiresAt) {
		return ErrPinCodeExpired
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PinHash), []byte(pin)); err != nil {
		return ErrInvalidPinCode
	}

	return nil
}

func (p *PinVerifier) allow(userID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if now.Sub(p.lastSweep) >= p.refill {
		p.sweep(now)
	}

	l, ok := p.limiters[userID]
	if !ok {
		l = rate.NewLimiter(p.limit, p.burst)
		p.limiters[userID] = l
	}
	return l.AllowN(now, 1)
}

// sweep drops limiters that are full again. A fresh limiter behaves the same.
func (p *PinVerifier) sweep(now time.Time) {
	for userID, l := range p.limiters {
		if l.TokensAt(now) >= float64(p.burst) {
			delete(p.limiters, userID)
		}
	}
	p.lastSweep = now
}

// HashPin returns the bcrypt hash stored for pin.
func HashPin(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash pin: %w", err)
	}
	return string(hash), nil
}
