package driver

import (
	"context"
	"fmt"
	"log"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// FrameClasses are the static taxonomy nodes the engine links against.
// Bootstrap makes sure they exist; the engine itself never creates or
// deletes them.
var FrameClasses = []string{
	"1FN", "2FN", "3FN",
	"ESQUEMA", "ATRIBUTO", "EVALUAR_FORMA_NORMAL",
}

type Neo4jDriver struct {
	Driver neo4j.DriverWithContext
}

func NewNeo4jDriver(uri, username, password string) (*Neo4jDriver, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Connected to fact store")
	return &Neo4jDriver{Driver: driver}, nil
}

func (d *Neo4jDriver) Close(ctx context.Context) error {
	return d.Driver.Close(ctx)
}

func (d *Neo4jDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, d.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

// Bootstrap ensures the static FrameClass taxonomy exists and creates
// lookup indices. Taxonomy failures are fatal; index creation is best
// effort since the index may already exist or use a different dialect.
func (d *Neo4jDriver) Bootstrap(ctx context.Context) error {
	for _, name := range FrameClasses {
		_, err := d.ExecuteQuery(ctx, EnsureFrameClassQuery, map[string]interface{}{"name": name})
		if err != nil {
			return fmt.Errorf("failed to ensure FrameClass %s: %w", name, err)
		}
	}

	indices := []string{
		"CREATE INDEX ON :Esquema(name);",
		"CREATE INDEX ON :Atributo(name);",
		"CREATE INDEX ON :FrameClass(name);",
		"CREATE INDEX ON :EVALUAR_FORMA_NORMAL(id);",
	}
	for _, q := range indices {
		if _, err := d.ExecuteQuery(ctx, q, nil); err != nil {
			log.Printf("Warning: failed to create index '%s': %v", q, err)
		}
	}

	return nil
}
