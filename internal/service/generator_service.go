package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mempass/internal/config"
	"github.com/MKhiriev/go-mempass/internal/generator"
	"github.com/MKhiriev/go-mempass/internal/logger"
	"github.com/MKhiriev/go-mempass/models"
)

// generatorService is the concrete implementation of GeneratorService.
type generatorService struct {
	defaultLength int
	minLength     int
	maxLength     int
	logger        *logger.Logger
}

// NewGeneratorService returns a GeneratorService bounded by cfg. The minimum
// length never drops below the length that guarantees every character class.
func NewGeneratorService(cfg config.Generator, log *logger.Logger) GeneratorService {
	if log == nil {
		log = logger.Nop()
	}

	g := &generatorService{
		defaultLength: cfg.DefaultLength,
		minLength:     max(cfg.MinLength, generator.MinClassCoverageLength),
		maxLength:     cfg.MaxLength,
		logger:        log,
	}
	if g.maxLength <= 0 {
		g.maxLength = config.DefaultGeneratorMaxLength
	}
	if g.defaultLength <= 0 {
		g.defaultLength = config.DefaultGeneratorLength
	}
	return g
}

// Generate implements GeneratorService. Phrase and service name are trimmed;
// a zero length means the configured default.
func (g *generatorService) Generate(ctx context.Context, req models.GenerateRequest) (string, error) {
	req.Phrase = strings.TrimSpace(req.Phrase)
	req.Service.Name = strings.TrimSpace(req.Service.Name)
	if req.Length == 0 {
		req.Length = g.defaultLength
	}

	switch {
	case req.Phrase == "":
		return "", fmt.Errorf("%w: master phrase is required", ErrInvalidGenerateRequest)
	case req.Service.Name == "":
		return "", fmt.Errorf("%w: service is required", ErrInvalidGenerateRequest)
	case req.Service.Version < 0:
		return "", fmt.Errorf("%w: version must not be negative", ErrInvalidGenerateRequest)
	case req.Length < g.minLength || req.Length > g.maxLength:
		return "", fmt.Errorf("%w: length must be between %d and %d", ErrInvalidGenerateRequest, g.minLength, g.maxLength)
	}

	done := make(chan string, 1)
	go func() {
		done <- generator.GenerateFor(req)
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case pw := <-done:
		logger.FromContext(ctx).Debug().Str("func", "generatorService.Generate").Int("length", req.Length).Msg("password generated")
		return pw, nil
	}
}

// EstimateStrength implements GeneratorService.
func (g *generatorService) EstimateStrength(password string) models.Strength {
	return generator.EstimateStrength(password)
}
