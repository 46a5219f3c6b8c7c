package authz

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

//go:embed policy.rego
var policy string

const allowQuery = "data.trainease.authz.allow"

// RegoGuard evaluates the embedded policy with OPA.
type RegoGuard struct {
	query rego.PreparedEvalQuery
}

func NewRegoGuard(ctx context.Context) (*RegoGuard, error) {
	pq, err := rego.New(
		rego.Query(allowQuery),
		rego.Module("policy.rego", policy),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("prepare policy: %w", err)
	}
	return &RegoGuard{query: pq}, nil
}

func (g *RegoGuard) Allow(ctx context.Context, subject Subject, ownerID int) (bool, error) {
	input := map[string]any{
		"subject": map[string]any{
			"id":      subject.ID,
			"isAdmin": subject.IsAdmin,
		},
		"resource": map[string]any{
			"ownerId": ownerID,
		},
	}
	rs, err := g.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return false, fmt.Errorf("evaluate policy: %w", err)
	}
	return rs.Allowed(), nil
}
