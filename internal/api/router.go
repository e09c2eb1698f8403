package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/Lucky44/SC-fleet-manager/internal/analysis"
	"github.com/Lucky44/SC-fleet-manager/internal/catalog"
	"github.com/Lucky44/SC-fleet-manager/internal/config"
	"github.com/Lucky44/SC-fleet-manager/internal/crypto"
	"github.com/Lucky44/SC-fleet-manager/internal/database"
	"github.com/Lucky44/SC-fleet-manager/internal/fleet"
	"github.com/Lucky44/SC-fleet-manager/internal/llm"
	"github.com/Lucky44/SC-fleet-manager/internal/models"
	syncsvc "github.com/Lucky44/SC-fleet-manager/internal/sync"
)

type Server struct {
	db             *database.DB
	cfg            *config.Config
	catalog        *catalog.Service
	fleet          *fleet.Service
	scheduler      *syncsvc.Scheduler
	llmRateLimiter *rate.Limiter
}

func NewServer(db *database.DB, cfg *config.Config, cat *catalog.Service, fleetSvc *fleet.Service, scheduler *syncsvc.Scheduler) *Server {
	return &Server{
		db:             db,
		cfg:            cfg,
		catalog:        cat,
		fleet:          fleetSvc,
		scheduler:      scheduler,
		llmRateLimiter: rate.NewLimiter(rate.Every(10*time.Second), 1),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.cfg.BaseURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.healthCheck)
		r.Get("/status", s.getStatus)

		// Catalog (all ships and items in the game)
		r.Route("/ships", func(r chi.Router) {
			r.Get("/", s.listShips)
			r.Get("/{className}/ports", s.getShipPorts)
		})
		r.Get("/items", s.listItems)
		r.Post("/ports/compatible", s.getCompatibleItems)

		// User's fleet
		r.Route("/fleet", func(r chi.Router) {
			r.Get("/", s.listFleet)
			r.Post("/", s.addFleetShip)
			r.Delete("/", s.clearFleet)

			r.Get("/share", s.shareFleet)
			r.Post("/import", s.importFleet)
			r.Get("/export", s.exportFleet)

			r.Route("/{id}", func(r chi.Router) {
				r.Delete("/", s.removeFleetShip)
				r.Put("/name", s.renameFleetShip)
				r.Get("/loadout", s.getLoadout)
				r.Put("/loadout/{port}", s.setLoadoutEntry)
				r.Delete("/loadout", s.resetLoadout)
			})
		})

		// Settings
		r.Route("/settings", func(r chi.Router) {
			r.Get("/llm", s.getLLMConfigs)
			r.Put("/llm", s.setLLMConfig)
		})

		// LLM operations
		r.Route("/llm", func(r chi.Router) {
			r.With(s.rateLimitLLM).Post("/test-connection", s.testLLMConnection)
			r.With(s.rateLimitLLM).Post("/generate-analysis", s.generateAIAnalysis)

			r.Get("/latest-analysis", s.getLatestAIAnalysis)
			r.Get("/analysis-history", s.getAIAnalysisHistory)
			r.Delete("/analysis/{id}", s.deleteAIAnalysis)
		})

		// Fleet analysis
		r.Get("/analysis", s.getAnalysis)

		// Sync management
		r.Route("/sync", func(r chi.Router) {
			r.Get("/status", s.getSyncStatus)
			r.Post("/catalog", s.triggerCatalogSync)
			r.Post("/images", s.triggerImageSync)
		})
	})

	// Serve frontend SPA
	s.serveFrontend(r)

	return r
}

// --- Middleware ---

func (s *Server) rateLimitLLM(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.llmRateLimiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "Rate limit exceeded - please wait before making another LLM request")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// --- Health & Status ---

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shipCount := 0
	itemCount := 0
	if ships, err := s.catalog.Ships(ctx); err == nil {
		shipCount = len(ships)
	}
	if items, err := s.catalog.Items(ctx); err == nil {
		itemCount = len(items)
	}

	fleetCount := 0
	if userFleet, err := s.fleet.List(ctx); err == nil {
		fleetCount = len(userFleet)
	}
	syncHistory, _ := s.db.GetRecentSyncRecords(ctx, 5)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ships":       shipCount,
		"items":       itemCount,
		"fleet":       fleetCount,
		"sync_status": syncHistory,
		"config": map[string]interface{}{
			"sync_schedule": s.cfg.SyncSchedule,
			"db_driver":     s.cfg.DBDriver,
		},
	})
}

// --- Catalog ---

func (s *Server) listShips(w http.ResponseWriter, r *http.Request) {
	ships, err := s.catalog.Ships(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "Failed to fetch ships: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ships)
}

func (s *Server) getShipPorts(w http.ResponseWriter, r *http.Request) {
	className := chi.URLParam(r, "className")

	if _, ok, err := s.catalog.Ship(r.Context(), className); err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	} else if !ok {
		writeError(w, http.StatusNotFound, "Ship not found")
		return
	}

	ports, err := s.catalog.Ports(r.Context(), className)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ports)
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.Items(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "Failed to fetch items: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) getCompatibleItems(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Port models.Port `json:"port"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	items, err := s.catalog.Items(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	compatible := catalog.CompatibleItems(items, req.Port)
	if compatible == nil {
		compatible = []models.Item{}
	}
	writeJSON(w, http.StatusOK, compatible)
}

// --- Fleet ---

func (s *Server) listFleet(w http.ResponseWriter, r *http.Request) {
	userFleet, err := s.fleet.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if userFleet == nil {
		userFleet = []models.FleetShip{}
	}
	writeJSON(w, http.StatusOK, userFleet)
}

func (s *Server) addFleetShip(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ShipClass string `json:"ship_class"`
		Name      string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ShipClass == "" {
		writeError(w, http.StatusBadRequest, "ship_class is required")
		return
	}

	fs, err := s.fleet.Add(r.Context(), req.ShipClass)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if req.Name != "" {
		if err := s.fleet.Rename(r.Context(), fs.ID, req.Name); err == nil {
			fs.Name = req.Name
		}
	}

	writeJSON(w, http.StatusCreated, fs)
}

func (s *Server) clearFleet(w http.ResponseWriter, r *http.Request) {
	if err := s.fleet.Clear(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Fleet cleared"})
}

func (s *Server) removeFleetShip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.fleet.Remove(r.Context(), id); err != nil {
		s.writeFleetError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Ship removed"})
}

func (s *Server) renameFleetShip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := s.fleet.Rename(r.Context(), id, req.Name); err != nil {
		s.writeFleetError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Ship renamed"})
}

func (s *Server) getLoadout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	view, err := s.fleet.Loadout(r.Context(), id)
	if err != nil {
		s.writeFleetError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) setLoadoutEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	portName := chi.URLParam(r, "port")

	var req struct {
		ItemClass string `json:"item_class"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := s.fleet.UpdateLoadout(r.Context(), id, portName, req.ItemClass); err != nil {
		s.writeFleetError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Loadout updated"})
}

func (s *Server) resetLoadout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.fleet.ResetLoadout(r.Context(), id); err != nil {
		s.writeFleetError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Loadout reset"})
}

func (s *Server) writeFleetError(w http.ResponseWriter, err error) {
	if errors.Is(err, database.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Fleet ship not found")
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

// --- Share / Import / Export ---

func (s *Server) shareFleet(w http.ResponseWriter, r *http.Request) {
	code, err := s.fleet.Share(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"data": code})
}

// importFleet accepts either {"data": "<share code>"} or a raw JSON array of
// fleet ships. Both replace the fleet wholesale.
func (s *Server) importFleet(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 10<<20)) // 10MB limit
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	var wrapped struct {
		Data string `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Data != "" {
		if err := s.fleet.ImportShare(r.Context(), wrapped.Data); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid share data: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Fleet imported"})
		return
	}

	var ships []models.FleetShip
	if err := json.Unmarshal(body, &ships); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := s.fleet.Import(r.Context(), ships); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Fleet imported",
		"imported": len(ships),
	})
}

func (s *Server) exportFleet(w http.ResponseWriter, r *http.Request) {
	userFleet, err := s.fleet.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if userFleet == nil {
		userFleet = []models.FleetShip{}
	}

	w.Header().Set("Content-Disposition", `attachment; filename="fleet.json"`)
	writeJSON(w, http.StatusOK, userFleet)
}

// --- Analysis ---

func (s *Server) getAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userFleet, err := s.fleet.List(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ships, err := s.catalog.Ships(ctx)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	result := analysis.AnalyzeFleet(userFleet, ships)
	writeJSON(w, http.StatusOK, result)
}

// --- Sync ---

func (s *Server) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	records, err := s.db.GetRecentSyncRecords(r.Context(), 20)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) triggerCatalogSync(w http.ResponseWriter, r *http.Request) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if err := s.scheduler.SyncCatalog(ctx); err != nil {
			log.Error().Err(err).Msg("manual catalog sync failed")
		}
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{
		"message": "Catalog sync started",
	})
}

func (s *Server) triggerImageSync(w http.ResponseWriter, r *http.Request) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if err := s.scheduler.SyncImages(ctx); err != nil {
			log.Error().Err(err).Msg("manual image sync failed")
		}
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{
		"message": "Image sync started",
	})
}

// --- LLM Configuration ---

func (s *Server) getLLMConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := s.db.GetAllLLMConfigs(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch LLM config")
		return
	}

	type configView struct {
		Provider   string `json:"provider"`
		APIKeySet  bool   `json:"api_key_set"`
		APIKeyMask string `json:"api_key_mask,omitempty"`
		Model      string `json:"model,omitempty"`
	}

	views := make([]configView, 0, len(configs))
	for _, c := range configs {
		v := configView{Provider: c.Provider, Model: c.Model}
		if c.EncryptedAPIKey != "" {
			v.APIKeySet = true
			if decrypted, err := crypto.Decrypt(c.EncryptedAPIKey); err == nil {
				v.APIKeyMask = crypto.MaskAPIKey(decrypted)
			}
		}
		views = append(views, v)
	}

	writeJSON(w, http.StatusOK, views)
}

func (s *Server) setLLMConfig(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Provider string `json:"provider"`
		APIKey   string `json:"api_key"`
		Model    string `json:"model"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	validProviders := map[string]bool{
		llm.ProviderOpenAI:    true,
		llm.ProviderAnthropic: true,
		llm.ProviderGoogle:    true,
	}
	if !validProviders[req.Provider] {
		writeError(w, http.StatusBadRequest, "Invalid provider")
		return
	}

	ctx := r.Context()

	// Empty key and model clears the provider's configuration
	if req.APIKey == "" && req.Model == "" {
		if err := s.db.DeleteLLMConfig(ctx, req.Provider); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to clear LLM config")
			return
		}
		log.Info().Str("provider", req.Provider).Msg("LLM configuration cleared")
		writeJSON(w, http.StatusOK, map[string]string{"message": "LLM configuration cleared"})
		return
	}

	encryptedKey, err := crypto.Encrypt(req.APIKey)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encrypt API key")
		return
	}

	if err := s.db.UpsertLLMConfig(ctx, req.Provider, encryptedKey, req.Model); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save LLM config")
		return
	}

	log.Info().Str("provider", req.Provider).Msg("LLM configuration updated")
	writeJSON(w, http.StatusOK, map[string]string{"message": "LLM configuration saved"})
}

func (s *Server) testLLMConnection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Provider string `json:"provider"`
		APIKey   string `json:"api_key"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Provider == "" || req.APIKey == "" {
		writeError(w, http.StatusBadRequest, "Provider and API key are required")
		return
	}

	client, err := llm.NewClient(req.Provider, req.APIKey)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()

	if err := client.TestConnection(ctx); err != nil {
		writeError(w, http.StatusUnauthorized, "API key is invalid: "+err.Error())
		return
	}

	availableModels, err := client.ListModels(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch models: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"models":  availableModels,
	})
}

func (s *Server) generateAIAnalysis(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Provider string `json:"provider"`
	}
	// Body is optional; without it the first configured provider is used.
	json.NewDecoder(r.Body).Decode(&req)

	ctx := r.Context()
	log.Info().Msg("AI fleet analysis request received")

	llmConfig, err := s.resolveLLMConfig(ctx, req.Provider)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch LLM config")
		return
	}
	if llmConfig == nil || llmConfig.EncryptedAPIKey == "" {
		log.Warn().Msg("AI analysis failed: LLM not configured")
		writeError(w, http.StatusBadRequest, "LLM not configured")
		return
	}

	log.Info().
		Str("provider", llmConfig.Provider).
		Str("model", llmConfig.Model).
		Msg("Using LLM configuration")

	apiKey, err := crypto.Decrypt(llmConfig.EncryptedAPIKey)
	if err != nil {
		log.Error().Err(err).Msg("Failed to decrypt API key")
		writeError(w, http.StatusInternalServerError, "Failed to decrypt API key")
		return
	}

	client, err := llm.NewClient(llmConfig.Provider, apiKey)
	if err != nil {
		log.Error().Err(err).Str("provider", llmConfig.Provider).Msg("Failed to create LLM client")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	userFleet, err := s.fleet.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch fleet for AI analysis")
		writeError(w, http.StatusInternalServerError, "Failed to fetch fleet")
		return
	}

	// Feed the model both the raw fleet (with loadout overrides) and the
	// statistical summary so it doesn't have to re-derive the totals.
	fleetData := map[string]interface{}{
		"fleet": userFleet,
	}
	if ships, err := s.catalog.Ships(ctx); err == nil {
		fleetData["summary"] = analysis.AnalyzeFleet(userFleet, ships)
	}

	log.Info().
		Int("ship_count", len(userFleet)).
		Str("provider", llmConfig.Provider).
		Str("model", llmConfig.Model).
		Msg("Generating AI fleet analysis...")

	result, err := client.GenerateFleetAnalysis(ctx, llmConfig.Model, fleetData)
	if err != nil {
		log.Error().
			Err(err).
			Str("provider", llmConfig.Provider).
			Str("model", llmConfig.Model).
			Msg("AI analysis failed")
		writeError(w, http.StatusInternalServerError, "AI analysis failed: "+err.Error())
		return
	}

	log.Info().
		Int("result_length", len(result)).
		Str("provider", llmConfig.Provider).
		Msg("AI fleet analysis completed successfully")

	analysisID, err := s.db.SaveAIAnalysis(ctx, llmConfig.Provider, llmConfig.Model, len(userFleet), result)
	if err != nil {
		log.Error().Err(err).Msg("Failed to save AI analysis to database")
	} else {
		log.Info().Int64("analysis_id", analysisID).Msg("AI analysis saved to database")
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"analysis": result,
		"id":       analysisID,
	})
}

// resolveLLMConfig picks the requested provider's config, or the first
// configured one when no provider is named.
func (s *Server) resolveLLMConfig(ctx context.Context, provider string) (*models.UserLLMConfig, error) {
	if provider != "" {
		return s.db.GetLLMConfig(ctx, provider)
	}
	configs, err := s.db.GetAllLLMConfigs(ctx)
	if err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return nil, nil
	}
	return &configs[0], nil
}

func (s *Server) getLatestAIAnalysis(w http.ResponseWriter, r *http.Request) {
	a, err := s.db.GetLatestAIAnalysis(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch latest AI analysis")
		writeError(w, http.StatusInternalServerError, "Failed to fetch analysis")
		return
	}

	if a == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"analysis": nil})
		return
	}

	writeJSON(w, http.StatusOK, a)
}

func (s *Server) getAIAnalysisHistory(w http.ResponseWriter, r *http.Request) {
	analyses, err := s.db.GetAIAnalysisHistory(r.Context(), 50)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch AI analysis history")
		writeError(w, http.StatusInternalServerError, "Failed to fetch history")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"history": analyses})
}

func (s *Server) deleteAIAnalysis(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}

	if err := s.db.DeleteAIAnalysis(r.Context(), id); err != nil {
		log.Error().Err(err).Int64("analysis_id", id).Msg("Failed to delete AI analysis")
		writeError(w, http.StatusInternalServerError, "Failed to delete analysis")
		return
	}

	log.Info().Int64("analysis_id", id).Msg("AI analysis deleted")
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// --- Frontend SPA ---

func (s *Server) serveFrontend(r chi.Router) {
	staticDir := s.cfg.StaticDir

	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		log.Warn().Str("dir", staticDir).Msg("frontend static directory not found")
		return
	}

	fs := http.FileServer(http.Dir(staticDir))

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(staticDir, r.URL.Path)

		if _, err := os.Stat(path); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		fs.ServeHTTP(w, r)
	})
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warn().Err(err).Msg("failed to write JSON response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
