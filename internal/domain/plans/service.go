package plans

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"boi-na-nuvem/internal/platform/httpclient"
	"boi-na-nuvem/internal/platform/logger"
	"boi-na-nuvem/internal/ports/tokenstore"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const plansPath = "/plans"

type Service struct {
	client   *httpclient.Client
	tokens   tokenstore.Store
	log      *zap.Logger
	outcomes *prometheus.CounterVec
}

type Options struct {
	Logger     *zap.Logger
	Registerer prometheus.Registerer // opcional
}

func NewService(client *httpclient.Client, tokens tokenstore.Store, opts Options) *Service {
	return &Service{
		client:   client,
		tokens:   tokens,
		log:      logger.OrNop(opts.Logger).Named("plans"),
		outcomes: registerOutcomes(opts.Registerer),
	}
}

// GetAll trae los planes del backend, en el orden que vienen.
// Un intento, sin retry ni cache.
func (s *Service) GetAll(ctx context.Context) ([]Plan, error) {
	// FIXME: el token se lee pero no se manda (solo va Accept). Falta
	// confirmar con el backend el formato del header Authorization.
	s.lookupToken(ctx)

	raw, err := s.client.GetRaw(ctx, plansPath, nil)
	if err != nil {
		if code, ok := httpclient.StatusCode(err); ok {
			s.outcomes.WithLabelValues("http_error").Inc()
			s.log.Warn("plans upstream non-2xx", zap.Int("status", code))
			var he *httpclient.HTTPError
			_ = errors.As(err, &he)
			return nil, &FetchError{StatusCode: code, Body: he.Body}
		}
		var tooLarge *httpclient.BodyTooLargeError
		if errors.As(err, &tooLarge) {
			s.outcomes.WithLabelValues("invalid").Inc()
			s.log.Warn("plans response rejected", zap.Error(err))
			return nil, &ValidationError{Cause: err}
		}
		s.outcomes.WithLabelValues("transport_error").Inc()
		s.log.Error("plans upstream request failed", zap.Error(err))
		return nil, fmt.Errorf("get plans: %w", err)
	}

	items, err := decodeEnvelope(raw)
	if err != nil {
		s.outcomes.WithLabelValues("invalid").Inc()
		s.log.Warn("plans response rejected", zap.Error(err))
		return nil, err
	}

	s.outcomes.WithLabelValues("ok").Inc()
	return items, nil
}

func (s *Service) lookupToken(ctx context.Context) {
	if s.tokens == nil {
		return
	}
	_, ok, err := s.tokens.Get(ctx, tokenstore.KeyToken)
	if err != nil {
		s.log.Debug("token lookup failed", zap.Error(err))
		return
	}
	s.log.Debug("token lookup", zap.Bool("token_present", ok))
}

// decodeEnvelope: cualquier body 2xx que no sea un objeto con success=true y
// data array es ValidationError. count no se valida.
func decodeEnvelope(body []byte) ([]Plan, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ValidationError{Cause: err}
	}
	if !env.Success {
		return nil, &ValidationError{Cause: errors.New("success=false")}
	}

	raw := bytes.TrimSpace(env.Data)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, &ValidationError{Cause: errors.New("data is not an array")}
	}

	items := make([]Plan, 0)
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &ValidationError{Cause: err}
	}
	return items, nil
}

func registerOutcomes(reg prometheus.Registerer) *prometheus.CounterVec {
	cv := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plans_upstream_requests_total",
			Help: "Plans requests to the upstream API by outcome.",
		},
		[]string{"outcome"},
	)
	if reg == nil {
		return cv
	}
	if err := reg.Register(cv); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
	}
	return cv
}
