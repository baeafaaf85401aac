// Package sightings implements the record gateway: it applies format
// validation and not-found semantics on top of a core.Store.
package sightings

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/leapstack-labs/wildlog/internal/validate"
	"github.com/leapstack-labs/wildlog/pkg/core"
)

// Options tunes gateway behavior.
type Options struct {
	// ValidateUpdates applies the create-time date/time checks to updates too.
	ValidateUpdates bool
}

// Service exposes the five sighting operations.
type Service struct {
	store  core.Store
	opts   Options
	logger *slog.Logger
}

// NewService creates a Service over store.
// If logger is nil, a discard logger is used.
func NewService(store core.Store, opts Options, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: store, opts: opts, logger: logger}
}

// Create validates the date and time, inserts the sighting and returns the
// input together with the assigned id.
func (s *Service) Create(ctx context.Context, in core.SightingInput) (*core.Sighting, error) {
	if err := validate.DateTime(in.Date, in.Time); err != nil {
		return nil, err
	}

	id, err := s.store.Insert(ctx, in)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("sighting created", slog.Int64("id", id), slog.String("species", in.Species))
	return in.WithID(id), nil
}

// List returns every stored sighting. An empty store yields an empty slice.
func (s *Service) List(ctx context.Context) ([]*core.Sighting, error) {
	return s.store.All(ctx)
}

// SearchBySpecies returns sightings whose species matches ignoring case.
// An empty species is a *core.ValidationError and zero matches is a
// *core.NotFoundError.
func (s *Service) SearchBySpecies(ctx context.Context, species string) ([]*core.Sighting, error) {
	if species == "" {
		return nil, &core.ValidationError{Field: "species", Message: "Species name is required."}
	}

	found, err := s.store.FindBySpecies(ctx, species)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, &core.NotFoundError{Resource: "species", Key: species}
	}
	return found, nil
}

// Update overwrites every field of an existing sighting and returns the
// caller's input with the id.
func (s *Service) Update(ctx context.Context, id int64, in core.SightingInput) (*core.Sighting, error) {
	if s.opts.ValidateUpdates {
		if err := validate.DateTime(in.Date, in.Time); err != nil {
			return nil, err
		}
	}

	if err := s.mustExist(ctx, id); err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, id, in); err != nil {
		return nil, err
	}

	s.logger.Debug("sighting updated", slog.Int64("id", id))
	return in.WithID(id), nil
}

// Delete removes an existing sighting.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.mustExist(ctx, id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Debug("sighting deleted", slog.Int64("id", id))
	return nil
}

// Ping checks the store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) mustExist(ctx context.Context, id int64) error {
	ok, err := s.store.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &core.NotFoundError{Resource: "sighting", Key: strconv.FormatInt(id, 10)}
	}
	return nil
}
