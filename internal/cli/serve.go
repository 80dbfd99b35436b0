package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pomforge/pomforge/pkg/build"
	"github.com/pomforge/pomforge/pkg/cache"
	pferrors "github.com/pomforge/pomforge/pkg/errors"
	"github.com/pomforge/pomforge/pkg/maven"
	"github.com/pomforge/pomforge/pkg/pom"
	"github.com/pomforge/pomforge/pkg/store"
	"github.com/pomforge/pomforge/pkg/workspace"
)

// defaultCacheTTL is how long generated poms stay cached in serve mode.
const defaultCacheTTL = time.Hour

// serveFlags holds the command-line flags for the serve command.
type serveFlags struct {
	addr         string
	workspaceDir string
	configPath   string
	redisAddr    string // Redis cache backend (file cache if empty)
	mongoURI     string // Mongo store backend (memory store if empty)
	mongoDB      string
	cacheTTL     time.Duration
	noCache      bool
}

// serveCommand creates the serve command running the generation HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	flags := serveFlags{
		addr:         ":8080",
		workspaceDir: ".",
		mongoDB:      appName,
		cacheTTL:     defaultCacheTTL,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve pom generation over HTTP",
		Long: `Serve pom generation over HTTP.

The workspace is loaded once at startup. Endpoints:

  GET  /healthz                  liveness probe
  GET  /api/v1/targets           targets with coordinates and exemption state
  POST /api/v1/pom               generate a pom for {"targets": [...]}
  GET  /api/v1/generations       recent generation records
  GET  /api/v1/generations/{id}  one generation record

Generated poms are cached (file cache by default, Redis with --redis) and
every generation is recorded (in memory by default, MongoDB with --mongo).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", flags.addr, "listen address")
	cmd.Flags().StringVarP(&flags.workspaceDir, "workspace", "w", flags.workspaceDir, "workspace directory containing target files")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file (default: <workspace>/pomforge.toml)")
	cmd.Flags().StringVar(&flags.redisAddr, "redis", "", "Redis address for the pom cache (file cache if empty)")
	cmd.Flags().StringVar(&flags.mongoURI, "mongo", "", "MongoDB URI for generation records (memory store if empty)")
	cmd.Flags().StringVar(&flags.mongoDB, "mongo-db", flags.mongoDB, "MongoDB database name")
	cmd.Flags().DurationVar(&flags.cacheTTL, "cache-ttl", flags.cacheTTL, "how long generated poms stay cached")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable the pom cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, flags serveFlags) error {
	g, cfg, err := loadWorkspace(flags.workspaceDir, flags.configPath)
	if err != nil {
		return err
	}

	pomCache, err := newServeCache(ctx, flags)
	if err != nil {
		return err
	}
	defer pomCache.Close()

	recordStore, err := newServeStore(ctx, flags)
	if err != nil {
		return err
	}
	defer recordStore.Close(ctx)

	srv, err := newServer(g, cfg, pomCache, recordStore, flags.cacheTTL, c.Logger)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              flags.addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	c.Logger.Info("Serving pom generation", "addr", flags.addr, "targets", g.TargetCount())
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newServeCache(ctx context.Context, flags serveFlags) (cache.Cache, error) {
	if flags.noCache {
		return cache.NewNullCache(), nil
	}
	if flags.redisAddr != "" {
		return cache.NewRedisCache(ctx, flags.redisAddr)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

func newServeStore(ctx context.Context, flags serveFlags) (store.Store, error) {
	if flags.mongoURI != "" {
		return store.NewMongoStore(ctx, flags.mongoURI, flags.mongoDB)
	}
	return store.NewMemoryStore(), nil
}

// =============================================================================
// HTTP Server
// =============================================================================

// server holds the loaded workspace and backends for the HTTP API.
type server struct {
	graph    *build.Graph
	config   *workspace.Config
	cache    cache.Cache
	store    store.Store
	cacheTTL time.Duration
	logger   *log.Logger

	// fingerprint covers everything a generated pom depends on, so cache
	// entries from an older or different workspace never match.
	fingerprint string
}

// newServer assembles the HTTP server state and fingerprints the workspace
// for cache key scoping.
func newServer(g *build.Graph, cfg *workspace.Config, pomCache cache.Cache, recordStore store.Store, cacheTTL time.Duration, logger *log.Logger) (*server, error) {
	fp, err := workspaceFingerprint(g, cfg)
	if err != nil {
		return nil, err
	}
	return &server{
		graph:       g,
		config:      cfg,
		cache:       pomCache,
		store:       recordStore,
		cacheTTL:    cacheTTL,
		logger:      logger,
		fingerprint: fp,
	}, nil
}

// workspaceFingerprint hashes the generation inputs: every target's tags and
// edges, the template text, the preferred group prefixes, and the
// substitutions. Any change to one of them yields a new fingerprint.
func workspaceFingerprint(g *build.Graph, cfg *workspace.Config) (string, error) {
	tmpl, err := os.ReadFile(cfg.Project.Template)
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}

	type node struct {
		Tags    []string `json:"tags"`
		Deps    []string `json:"deps"`
		Exports []string `json:"exports"`
	}
	nodes := make(map[string]node, g.TargetCount())
	for _, label := range g.Labels() {
		target, _ := g.Target(label)
		nodes[label] = node{Tags: target.Tags, Deps: g.Deps(label), Exports: g.Exports(label)}
	}

	data, err := json.Marshal(struct {
		Nodes         map[string]node   `json:"nodes"`
		Template      string            `json:"template"`
		Prefixes      []string          `json:"prefixes"`
		Substitutions map[string]string `json:"substitutions"`
	}{nodes, string(tmpl), cfg.POM.PreferredGroupPrefixes, cfg.POM.Substitutions})
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/targets", s.handleTargets)
		r.Post("/pom", s.handleGenerate)
		r.Get("/generations", s.handleListGenerations)
		r.Get("/generations/{id}", s.handleGetGeneration)
	})
	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// targetInfo is the JSON shape of one target in the listing.
type targetInfo struct {
	Label       string   `json:"label"`
	Coordinates []string `json:"coordinates,omitempty"`
	Exempt      bool     `json:"exempt,omitempty"`
}

func (s *server) handleTargets(w http.ResponseWriter, r *http.Request) {
	labels := s.graph.Labels()
	out := make([]targetInfo, 0, len(labels))
	for _, label := range labels {
		target, _ := s.graph.Target(label)
		own, exempt := maven.Extract(target.Tags)
		out = append(out, targetInfo{Label: label, Coordinates: own, Exempt: exempt})
	}
	writeJSON(w, http.StatusOK, out)
}

// generateRequest is the JSON body of POST /api/v1/pom.
type generateRequest struct {
	Targets []string `json:"targets"`
}

// generateResponse is the JSON reply of POST /api/v1/pom.
type generateResponse struct {
	ID          string   `json:"id"`
	Targets     []string `json:"targets"`
	Coordinates []string `json:"coordinates"`
	POM         string   `json:"pom"`
	Cached      bool     `json:"cached"`
}

func (s *server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, pferrors.Wrap(pferrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	targets, err := resolveTargets(req.Targets, s.config)
	if err != nil {
		writeError(w, pferrors.Wrap(pferrors.ErrCodeInvalidInput, err, "no targets"))
		return
	}

	ctx := r.Context()
	key := cache.Key("pom", s.fingerprint, targets)

	if data, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var resp generateResponse
		if json.Unmarshal(data, &resp) == nil {
			resp.Cached = true
			writeJSON(w, http.StatusOK, resp)
			return
		}
	}

	gen, err := generatePOM(s.graph, s.config, targets)
	if err != nil {
		writeError(w, mapGenerationError(err))
		return
	}

	resp := generateResponse{
		ID:          uuid.NewString(),
		Targets:     targets,
		Coordinates: gen.Coordinates,
		POM:         gen.POM,
	}

	rec := store.Record{
		ID:          resp.ID,
		Targets:     targets,
		Coordinates: gen.Coordinates,
		POM:         gen.POM,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.Put(ctx, rec); err != nil {
		s.logger.Warn("Failed to record generation", "id", resp.ID, "err", err)
	}

	if data, err := json.Marshal(resp); err == nil {
		if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
			s.logger.Warn("Failed to cache pom", "err", err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleListGenerations(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context(), 50)
	if err != nil {
		writeError(w, pferrors.Wrap(pferrors.ErrCodeInternal, err, "list generations"))
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *server) handleGetGeneration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, pferrors.New(pferrors.ErrCodeNotFound, "generation %s not found", id))
		return
	}
	if err != nil {
		writeError(w, pferrors.Wrap(pferrors.ErrCodeInternal, err, "get generation"))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// mapGenerationError classifies pipeline failures for the HTTP surface.
func mapGenerationError(err error) error {
	switch {
	case errors.Is(err, build.ErrUnknownNode):
		return pferrors.Wrap(pferrors.ErrCodeInvalidTarget, err, "unknown target")
	case errors.Is(err, pom.ErrMalformedCoordinate):
		return pferrors.Wrap(pferrors.ErrCodeMalformedCoordinate, err, "malformed coordinate")
	default:
		return pferrors.Wrap(pferrors.ErrCodeInternal, err, "generation failed")
	}
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Code    pferrors.Code `json:"code"`
	Message string        `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, pferrors.HTTPStatus(err), errorResponse{
		Code:    pferrors.GetCode(err),
		Message: err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
