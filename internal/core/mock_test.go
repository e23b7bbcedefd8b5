package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/edudb/normagraph/internal/driver"
)

type MockDriver struct {
	QueryExecuted string
	QueryParams   map[string]interface{}
	MockResult    neo4j.EagerResult
	Err           error
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.QueryExecuted = query
	m.QueryParams = params
	if m.Err != nil {
		return neo4j.EagerResult{}, m.Err
	}
	return m.MockResult, nil
}

func (m *MockDriver) Bootstrap(ctx context.Context) error { return nil }

func (m *MockDriver) Close(ctx context.Context) error { return nil }

// fakeStore is an in-memory fact store that understands the named query
// constants, so the reconciliation protocol can be exercised end to end
// without a live database.
type fakeStore struct {
	mu      sync.Mutex
	schemas map[string]bool
	attrs   map[string]map[string]bool
	runs    map[string]map[string]interface{}
	edges   map[string]map[string][]fakeEdge
}

type fakeEdge struct {
	kind  string
	props map[string]interface{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		schemas: map[string]bool{},
		attrs:   map[string]map[string]bool{},
		runs:    map[string]map[string]interface{}{},
		edges:   map[string]map[string][]fakeEdge{},
	}
}

func (f *fakeStore) Bootstrap(ctx context.Context) error { return nil }

func (f *fakeStore) Close(ctx context.Context) error { return nil }

// addSchema seeds a schema node with no compliance edges, the shape a
// schema has when referenced but never evaluated.
func (f *fakeStore) addSchema(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.schemas[name] = true
}

// setEdge plants a compliance edge with arbitrary evidence.
func (f *fakeStore) setEdge(schema, form, kind string, props map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.schemas[schema] = true
	if f.edges[schema] == nil {
		f.edges[schema] = map[string][]fakeEdge{}
	}
	f.edges[schema][form] = []fakeEdge{{kind: kind, props: props}}
}

func (f *fakeStore) edgeCount(schema, form string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.edges[schema][form])
}

func eager(records ...*neo4j.Record) neo4j.EagerResult {
	return neo4j.EagerResult{Records: records}
}

func (f *fakeStore) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch query {
	case driver.ReconcileSchemaQuery:
		schema := params["schema"].(string)
		f.schemas[schema] = true
		attrs := map[string]bool{}
		for _, a := range params["attributes"].([]map[string]interface{}) {
			attrs[a["name"].(string)] = a["is_primary_key"].(bool)
		}
		f.attrs[schema] = attrs
		f.runs[params["run_id"].(string)] = map[string]interface{}{
			"schema":       schema,
			"target_form":  "3FN",
			"multivalued":  params["multivalued"],
			"pk_composite": params["pk_composite"],
			"partials":     params["partials"],
			"transitives":  params["transitives"],
		}
		delete(f.edges, schema)
		return eager(), nil

	case driver.DeleteComplianceEdgesQuery:
		schema := params["schema"].(string)
		if forms, ok := f.edges[schema]; ok {
			delete(forms, params["form"].(string))
		}
		return eager(), nil

	case driver.CreateSatisfiedEdgeQuery, driver.CreateViolatedEdgeQuery:
		schema := params["schema"].(string)
		if !f.schemas[schema] {
			return eager(), nil
		}
		kind := StatusViolated
		if query == driver.CreateSatisfiedEdgeQuery {
			kind = StatusSatisfied
		}
		if f.edges[schema] == nil {
			f.edges[schema] = map[string][]fakeEdge{}
		}
		form := params["form"].(string)
		evidence, _ := params["evidence"].(map[string]interface{})
		f.edges[schema][form] = append(f.edges[schema][form], fakeEdge{kind: kind, props: evidence})
		return eager(), nil

	case driver.FormStateQuery:
		schema := params["schema"].(string)
		if !f.schemas[schema] {
			return eager(), nil
		}
		form := params["form"].(string)
		status := StatusUnevaluated
		var satisfied, violated map[string]interface{}
		for _, edge := range f.edges[schema][form] {
			if edge.kind == StatusSatisfied {
				satisfied = edge.props
			} else {
				violated = edge.props
			}
		}
		if satisfied != nil {
			status = StatusSatisfied
		} else if violated != nil {
			status = StatusViolated
		}
		return eager(&neo4j.Record{
			Keys:   []string{"schema", "form", "status", "satisfied_evidence", "violated_evidence"},
			Values: []interface{}{schema, form, status, satisfied, violated},
		}), nil

	case driver.SchemaStateQuery:
		schema := params["schema"].(string)
		if !f.schemas[schema] {
			return eager(), nil
		}
		var records []*neo4j.Record
		for _, form := range []string{"1FN", "2FN", "3FN"} {
			status := StatusUnevaluated
			var evidence map[string]interface{}
			if edges := f.edges[schema][form]; len(edges) > 0 {
				last := edges[len(edges)-1]
				status = last.kind
				evidence = last.props
			}
			records = append(records, &neo4j.Record{
				Keys:   []string{"schema", "form", "status", "evidence"},
				Values: []interface{}{schema, form, status, evidence},
			})
		}
		return eager(records...), nil
	}

	return neo4j.EagerResult{}, fmt.Errorf("unexpected query: %s", query)
}
