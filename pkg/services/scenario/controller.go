package scenario

import (
	"context"

	"github.com/andrearuggiero83/StorePilot/pkg/models/domain"
	"github.com/andrearuggiero83/StorePilot/pkg/services/assumptions"
	"github.com/andrearuggiero83/StorePilot/pkg/services/feasibility"
	"github.com/andrearuggiero83/StorePilot/pkg/services/model"
)

// Controller is the single boundary the presentation layers call: it
// validates raw input, evaluates the model and grades the result. A
// validation failure returns a *assumptions.ValidationError and no
// partial Evaluation.
type Controller interface {
	Evaluate(ctx context.Context, raw assumptions.Raw) (*domain.Evaluation, error)
}

type controller struct {
	engine   model.Engine
	assessor feasibility.Assessor
}

func NewController(engine model.Engine, assessor feasibility.Assessor) Controller {
	return &controller{
		engine:   engine,
		assessor: assessor,
	}
}

func (c *controller) Evaluate(_ context.Context, raw assumptions.Raw) (*domain.Evaluation, error) {
	set, err := assumptions.Validate(raw)
	if err != nil {
		return nil, err
	}

	proj := c.engine.Evaluate(set)
	return &domain.Evaluation{
		Assumptions: set,
		Projection:  proj,
		Assessment:  c.assessor.Assess(set, proj),
	}, nil
}
