package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/estate-cli/internal/directory"
	"github.com/sells-group/estate-cli/internal/discovery"
	"github.com/sells-group/estate-cli/internal/legal"
	"github.com/sells-group/estate-cli/internal/lifecycle"
	"github.com/sells-group/estate-cli/internal/mailer"
	"github.com/sells-group/estate-cli/internal/outreach"
	"github.com/sells-group/estate-cli/internal/registry"
	"github.com/sells-group/estate-cli/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for recovery operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		reg, err := initRegistry()
		if err != nil {
			return err
		}
		st, err := initStore()
		if err != nil {
			return err
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(reg, st, initTransport()),
		}

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			zap.L().Info("starting server", zap.Int("port", port))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return eris.Wrap(err, "server listen")
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

// newRouter wires every recovery operation onto an HTTP surface. The
// routes mirror the CLI subcommands one to one.
func newRouter(reg *registry.Registry, st store.Store, transport mailer.Transport) http.Handler {
	svc := outreach.NewService(reg, st, transport)
	tracker := lifecycle.New(reg, st)
	letters := legal.NewLetters(reg)
	discoverer := discovery.New(reg)
	matcher := directory.New(reg)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/outreach", func(w http.ResponseWriter, r *http.Request) {
			var req outreach.Request
			if !decodeBody(w, r, &req) {
				return
			}
			writeJSON(w, http.StatusOK, svc.Generate(r.Context(), req))
		})

		r.Get("/platforms", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, reg.Options())
		})

		r.Get("/instructions/{platform}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, reg.GuideReport(chi.URLParam(r, "platform")))
		})

		r.Get("/cases/{caseID}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, tracker.Status(chi.URLParam(r, "caseID")))
		})

		r.Post("/discover", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				DeceasedName string   `json:"deceased_name"`
				Emails       []string `json:"emails"`
				KnownInfo    string   `json:"known_info"`
			}
			if !decodeBody(w, r, &req) {
				return
			}
			writeJSON(w, http.StatusOK, discoverer.Discover(req.DeceasedName, req.Emails, req.KnownInfo))
		})

		r.Post("/analyze", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Text string `json:"text"`
			}
			if !decodeBody(w, r, &req) {
				return
			}
			writeJSON(w, http.StatusOK, discovery.AnalyzeCorrespondence(req.Text))
		})

		r.Post("/letters/notification", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Platform     string `json:"platform"`
				DeceasedName string `json:"deceased_name"`
				ExecutorName string `json:"executor_name"`
				Relationship string `json:"relationship"`
			}
			if !decodeBody(w, r, &req) {
				return
			}
			result, err := letters.Notification(req.Platform, req.DeceasedName, req.ExecutorName, req.Relationship)
			if err != nil {
				zap.L().Error("letter generation failed", zap.Error(err))
				http.Error(w, `{"error":"letter generation failed"}`, http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, result)
		})

		r.Post("/letters/petition", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				State         string `json:"state"`
				DeceasedName  string `json:"deceased_name"`
				ExecutorName  string `json:"executor_name"`
				AssetsSummary string `json:"assets_summary"`
			}
			if !decodeBody(w, r, &req) {
				return
			}
			result, err := letters.Petition(req.State, req.DeceasedName, req.ExecutorName, req.AssetsSummary)
			if err != nil {
				zap.L().Error("petition generation failed", zap.Error(err))
				http.Error(w, `{"error":"petition generation failed"}`, http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, result)
		})

		r.Get("/laws/{state}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, letters.CheckStateLaw(chi.URLParam(r, "state")))
		})

		r.Get("/lawyers", func(w http.ResponseWriter, r *http.Request) {
			radius := directory.DefaultRadiusMiles
			if v := r.URL.Query().Get("radius"); v != "" {
				n, err := strconv.Atoi(v)
				if err != nil {
					http.Error(w, `{"error":"radius must be an integer"}`, http.StatusBadRequest)
					return
				}
				radius = n
			}
			specialty := r.URL.Query().Get("specialty")
			if specialty == "" {
				specialty = "probate"
			}
			writeJSON(w, http.StatusOK, matcher.Find(r.URL.Query().Get("zipcode"), radius, specialty))
		})
	})

	return r
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode response", zap.Error(err))
	}
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
