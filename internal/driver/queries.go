package driver

const (
	EnsureFrameClassQuery = `
		MERGE (:FrameClass {name: $name})
	`

	// ReconcileSchemaQuery upserts the schema node, replaces its attribute
	// set with the supplied list (stale attributes and their relationships
	// are deleted first), refreshes the evaluation run under its
	// deterministic id, and clears prior compliance edges so the verdict
	// writes start from a clean slate.
	ReconcileSchemaQuery = `
		MERGE (s:Esquema {name: $schema})
		WITH s, $attributes AS attrs

		OPTIONAL MATCH (s)-[:TIENE]->(stale:Atributo {esquema: s.name})
		WHERE NOT stale.name IN [a IN attrs | a.name]
		OPTIONAL MATCH (stale)-[sr]-()
		DELETE sr, stale

		WITH s, attrs
		MATCH (cs:FrameClass {name: 'ESQUEMA'})
		MERGE (s)-[:INSTANCE_OF]->(cs)

		WITH s, attrs
		UNWIND attrs AS a
		MERGE (att:Atributo {name: a.name, esquema: s.name})
		SET att.is_primary_key = coalesce(a.is_primary_key, false)
		MERGE (s)-[:TIENE]->(att)

		WITH DISTINCT s
		MATCH (att2:Atributo {esquema: s.name})
		MATCH (ca:FrameClass {name: 'ATRIBUTO'})
		MERGE (att2)-[:INSTANCE_OF]->(ca)

		WITH DISTINCT s
		MERGE (run:EVALUAR_FORMA_NORMAL {id: $run_id})
		SET run.target_form = '3FN',
			run.schema = s.name,
			run.multivalued = $multivalued,
			run.pk_composite = $pk_composite,
			run.partials = $partials,
			run.transitives = $transitives
		MERGE (run)-[:EVALUA]->(s)
		WITH s, run
		MATCH (cr:FrameClass {name: 'EVALUAR_FORMA_NORMAL'})
		MERGE (run)-[:INSTANCE_OF]->(cr)

		WITH DISTINCT s
		OPTIONAL MATCH (s)-[old:CUMPLE|NO_CUMPLE]->(f:FrameClass)
		WHERE f.name IN ['1FN', '2FN', '3FN']
		DELETE old

		RETURN s.name AS schema
	`

	DeleteComplianceEdgesQuery = `
		MATCH (s:Esquema {name: $schema})-[r:CUMPLE|NO_CUMPLE]->(f:FrameClass {name: $form})
		DELETE r
	`

	CreateSatisfiedEdgeQuery = `
		MATCH (s:Esquema {name: $schema}), (f:FrameClass {name: $form})
		MERGE (s)-[r:CUMPLE]->(f)
		SET r += $evidence
		RETURN s.name AS schema
	`

	CreateViolatedEdgeQuery = `
		MATCH (s:Esquema {name: $schema}), (f:FrameClass {name: $form})
		MERGE (s)-[r:NO_CUMPLE]->(f)
		SET r += $evidence
		RETURN s.name AS schema
	`

	// FormStateQuery reports the verdict for one (schema, form) pair.
	// Zero rows mean the schema node does not exist; a row with neither
	// edge means the pair is SIN_EVALUAR.
	FormStateQuery = `
		MATCH (s:Esquema {name: $schema})
		OPTIONAL MATCH (s)-[c:CUMPLE]->(f1:FrameClass {name: $form})
		OPTIONAL MATCH (s)-[nc:NO_CUMPLE]->(f2:FrameClass {name: $form})
		RETURN s.name AS schema,
			coalesce(f1.name, f2.name, $form) AS form,
			CASE
				WHEN c IS NOT NULL THEN 'CUMPLE'
				WHEN nc IS NOT NULL THEN 'NO_CUMPLE'
				ELSE 'SIN_EVALUAR'
			END AS status,
			properties(c) AS satisfied_evidence,
			properties(nc) AS violated_evidence
	`

	// SchemaStateQuery reports one row per normal form, ascending, with
	// SIN_EVALUAR standing in where no compliance edge exists.
	SchemaStateQuery = `
		MATCH (s:Esquema {name: $schema})
		MATCH (f:FrameClass)
		WHERE f.name IN ['1FN', '2FN', '3FN']
		OPTIONAL MATCH (s)-[r:CUMPLE|NO_CUMPLE]->(f)
		RETURN s.name AS schema,
			f.name AS form,
			CASE
				WHEN r IS NULL THEN 'SIN_EVALUAR'
				WHEN type(r) = 'CUMPLE' THEN 'CUMPLE'
				ELSE 'NO_CUMPLE'
			END AS status,
			properties(r) AS evidence
		ORDER BY f.name
	`
)
