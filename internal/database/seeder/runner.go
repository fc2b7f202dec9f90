package seeder

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type Runner struct {
	Seeders []Seeder
	Log     *zap.SugaredLogger
}

func (r Runner) Run(ctx context.Context, t Target) error {
	if t == nil {
		return fmt.Errorf("nil target")
	}
	log := r.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, t); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Infow("seeded", "seeder", s.Name())
	}
	return nil
}
