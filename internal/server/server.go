package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/edudb/normagraph/internal/config"
	"github.com/edudb/normagraph/internal/core"
	"github.com/edudb/normagraph/internal/driver"
	"github.com/edudb/normagraph/internal/llm"
	"github.com/edudb/normagraph/internal/router"
)

type Server struct {
	Engine *core.Engine
	Router *router.Router
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("No config file loaded (%v), relying on environment", err)
		cfg = &config.Config{}
	}

	if v := os.Getenv("NEO4J_URI"); v != "" {
		cfg.Neo4j.URI = v
	}
	if v := os.Getenv("NEO4J_USERNAME"); v != "" {
		cfg.Neo4j.User = v
	}
	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		cfg.Neo4j.Password = v
	}
	if cfg.Neo4j.URI == "" {
		cfg.Neo4j.URI = "bolt://localhost:7687"
	}

	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "ollama"
		cfg.LLM.Model = "gpt-oss:latest"
		cfg.LLM.BaseURL = "http://localhost:11434"
	}

	d, err := driver.NewNeo4jDriver(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password)
	if err != nil {
		log.Fatalf("Failed to connect to fact store: %v", err)
	}
	if err := d.Bootstrap(context.Background()); err != nil {
		log.Fatalf("Failed to bootstrap fact store: %v", err)
	}

	llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	return &Server{
		Engine: core.NewEngine(d),
		Router: router.New(llmClient, cfg.Router.Prompt),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/", s.Index)
	r.POST("/api/query", s.Query)
	r.POST("/api/guided/evaluate", s.GuidedEvaluate)

	return r
}

func (s *Server) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

type QueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// Query classifies free text and dispatches it. Classifier and domain
// conditions come back in the body; the transport stays 200.
func (s *Server) Query(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing 'query'"})
		return
	}

	routed := s.Router.Route(c.Request.Context(), req.Query)
	result := s.Engine.Dispatch(c.Request.Context(), routed.Intent, routed.Params.Schema, routed.Params.Form)
	c.JSON(http.StatusOK, result)
}

// GuidedEvaluate runs the guided questionnaire flow: create the schema,
// evaluate 1FN/2FN/3FN and return the persisted state.
func (s *Server) GuidedEvaluate(c *gin.Context) {
	var req core.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	result, err := s.Engine.Evaluate(c.Request.Context(), req)
	if err != nil {
		var ve *core.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": ve.Error()})
			return
		}
		log.Printf("Guided evaluation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to evaluate schema"})
		return
	}

	c.JSON(http.StatusOK, result)
}
