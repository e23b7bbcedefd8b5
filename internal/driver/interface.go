package driver

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// GraphDriver is the fact-store collaborator: pattern-match reads and
// idempotent writes against the schema/normal-form graph. Implementations
// must offer at least read-committed isolation per query.
type GraphDriver interface {
	ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error)
	Bootstrap(ctx context.Context) error
	Close(ctx context.Context) error
}
