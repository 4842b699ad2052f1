package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"courierdesk/internal/entities"
	"courierdesk/pkg/logger"
	retrierconfig "courierdesk/pkg/retrier"
	"courierdesk/pkg/retrier/backoff_adapter"
)

const (
	DefaultAttemptTimeout = 15 * time.Second
	DefaultRetryInterval  = 300 * time.Millisecond
	DefaultMaxRetries     = 2
)

type Options struct {
	AttemptTimeout time.Duration
	RetryInterval  time.Duration
	MaxRetries     uint64
}

type Service struct {
	parser         TokenParser
	profiles       ProfileLoader
	retrier        retrier
	attemptTimeout time.Duration
	log            serviceLogger
}

func New(parser TokenParser, profiles ProfileLoader, log logger.Logger, opts Options) *Service {
	if opts.AttemptTimeout <= 0 {
		opts.AttemptTimeout = DefaultAttemptTimeout
	}
	if opts.RetryInterval <= 0 {
		opts.RetryInterval = DefaultRetryInterval
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = DefaultMaxRetries
	}

	// профиль, которого нет, повторно не запрашиваем
	shouldRetry := func(err error) bool {
		return !errors.Is(err, ErrProfileNotFound)
	}

	return &Service{
		parser:         parser,
		profiles:       profiles,
		retrier:        backoff_adapter.New(retrierconfig.Constant(opts.RetryInterval, opts.MaxRetries, shouldRetry)),
		attemptTimeout: opts.AttemptTimeout,
		log:            log.With(logger.NewField("service", "session")),
	}
}

// BearerToken достает токен из заголовка Authorization.
func BearerToken(header string) (string, bool) {
	scheme, raw, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

// Bootstrap unauthenticated -> authenticating -> profile_loading -> ready | degraded.
// Невалидный токен возвращает ошибку и состояние unauthenticated.
// Если профиль не загрузился, сессия деградирует: id и email из токена, без роли.
func (s *Service) Bootstrap(ctx context.Context, rawToken string) (*entities.Principal, error) {
	m := newMachine()

	if rawToken == "" {
		SessionBootstrapTotal.WithLabelValues(m.state.String()).Inc()
		return nil, ErrMissingToken
	}
	if err := m.to(entities.SessionAuthenticating); err != nil {
		return nil, err
	}

	claims, err := s.parser.Parse(rawToken)
	if err != nil {
		if tErr := m.to(entities.SessionUnauthenticated); tErr != nil {
			return nil, tErr
		}
		SessionBootstrapTotal.WithLabelValues(m.state.String()).Inc()
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	principal := &entities.Principal{
		UserID: claims.UserID,
		Email:  claims.Email,
	}

	if err := m.to(entities.SessionProfileLoading); err != nil {
		return nil, err
	}
	profile, err := s.loadProfile(ctx, claims.UserID)
	if err != nil {
		s.log.Warn("profile is unavailable, session degraded",
			logger.NewField("user_id", claims.UserID),
			logger.NewField("error", err),
		)
		if err := m.to(entities.SessionDegraded); err != nil {
			return nil, err
		}
	} else {
		principal.Profile = profile
		if profile.Email != "" {
			principal.Email = profile.Email
		}
		if err := m.to(entities.SessionReady); err != nil {
			return nil, err
		}
	}

	principal.State = m.state
	SessionBootstrapTotal.WithLabelValues(m.state.String()).Inc()
	return principal, nil
}

// loadProfile у каждой попытки свой таймаут.
func (s *Service) loadProfile(ctx context.Context, userID int64) (*entities.Courier, error) {
	var profile *entities.Courier
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		ProfileLoadAttemptsTotal.Inc()

		attemptCtx, cancel := context.WithTimeout(ctx, s.attemptTimeout)
		defer cancel()

		var err error
		profile, err = s.profiles.GetProfile(attemptCtx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}
