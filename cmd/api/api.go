package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"renovo/docs" // registers the swagger spec
	"renovo/internal/auth"
	"renovo/internal/domain/storage"
	"renovo/internal/mailer"
	"renovo/internal/quotes"
	"renovo/internal/ratelimiter"
	"renovo/internal/sessions"
	"renovo/internal/snapshot"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	store         *storage.Container
	catalog       *snapshot.Loader
	sessions      *sessions.Store
	quotes        *quotes.Issuer
	logger        *zap.SugaredLogger
	cld           *cloudinary.Cloudinary
	mailer        mailer.Client
	authenticator auth.Authenticator
	rateLimiter   ratelimiter.Limiter
}

type config struct {
	addr        string
	db          dbConfig
	env         string
	apiURL      string
	mail        mailConfig
	frontendURL string
	auth        authConfig
	quoteSalt   string
	sessionTTL  time.Duration
	catalogTTL  time.Duration
	rateLimiter ratelimiter.Config
}

type authConfig struct {
	basic           basicConfig
	token           tokenConfig
	adminSecretHash string
}

type tokenConfig struct {
	secret string
	exp    time.Duration
	iss    string
}

type basicConfig struct {
	user string
	pass string
}

type mailConfig struct {
	fromEmail string
	smtp      smtpConfig
}

type smtpConfig struct {
	host string
	port int
	user string
	pass string
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleTime  string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.allowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Location"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", app.listCategoriesHandler)
			r.Get("/tree", app.getCategoryTreeHandler)
			r.Get("/{categoryID}", app.getCategoryHandler)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", app.listProductsHandler)
			r.Get("/category/{categoryID}", app.listProductsByCategoryHandler)
			r.Get("/{productID}", app.getProductHandler)
		})

		r.Get("/services", app.listServicesHandler)
		r.Get("/coefficients", app.listCoefficientsHandler)

		r.Route("/presets", func(r chi.Router) {
			r.Get("/", app.listPresetsHandler)
			r.Get("/detailed", app.listPresetsDetailedHandler)
			r.Get("/{presetID}", app.getPresetHandler)
		})

		// Configurator sessions are anonymous; the UUID is the capability.
		r.Post("/sessions", app.createSessionHandler)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Use(app.sessionContextMiddleware)

			r.Get("/", app.getSessionHandler)
			r.Delete("/", app.deleteSessionHandler)
			r.Get("/total", app.getSessionTotalHandler)

			r.Put("/selection/room", app.selectRoomHandler)
			r.Put("/selection/element", app.selectElementHandler)
			r.Put("/selection/sub-element", app.selectSubElementHandler)

			r.Post("/products", app.addCartProductHandler)
			r.Patch("/products/{productID}", app.updateCartProductHandler)
			r.Delete("/products/{productID}", app.removeCartProductHandler)

			r.Post("/services", app.addCartServiceHandler)
			r.Patch("/services/{serviceID}", app.updateCartServiceHandler)
			r.Delete("/services/{serviceID}", app.removeCartServiceHandler)

			r.Post("/presets/{presetID}", app.applyPresetHandler)
			r.Put("/market", app.setMarketHandler)
			r.Delete("/cart", app.clearCartHandler)

			r.Post("/quote", app.sendQuoteHandler)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/auth", app.adminAuthHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AdminTokenMiddleware)

				r.Post("/catalog/refresh", app.refreshCatalogHandler)

				r.Route("/categories", func(r chi.Router) {
					r.Post("/", app.createCategoryHandler)
					r.Put("/{categoryID}", app.updateCategoryHandler)
					r.Delete("/{categoryID}", app.deleteCategoryHandler)
				})

				r.Route("/products", func(r chi.Router) {
					r.Post("/", app.createProductHandler)
					r.Put("/{productID}", app.updateProductHandler)
					r.Delete("/{productID}", app.deleteProductHandler)
					r.Put("/{productID}/image", app.uploadProductImageHandler)
					r.Delete("/{productID}/image", app.deleteProductImageHandler)
					r.Put("/{productID}/attributes", app.replaceProductAttributesHandler)
					r.Put("/{productID}/services", app.replaceProductServicesHandler)
				})

				r.Route("/services", func(r chi.Router) {
					r.Post("/", app.createServiceHandler)
					r.Put("/{serviceID}", app.updateServiceHandler)
					r.Delete("/{serviceID}", app.deleteServiceHandler)
				})

				r.Route("/presets", func(r chi.Router) {
					r.Post("/", app.createPresetHandler)
					r.Put("/{presetID}/image", app.uploadPresetImageHandler)
					r.Delete("/{presetID}", app.deletePresetHandler)
				})

				r.Route("/coefficients", func(r chi.Router) {
					r.Get("/{coefficientID}", app.getCoefficientHandler)
					r.Post("/", app.createCoefficientHandler)
					r.Put("/{coefficientID}", app.updateCoefficientHandler)
					r.Delete("/{coefficientID}", app.deleteCoefficientHandler)
				})
			})
		})
	})
	return r
}

func (app *application) allowedOrigins() []string {
	if app.config.env == "production" && app.config.frontendURL != "" {
		return []string{app.config.frontendURL}
	}
	return []string{"https://*", "http://*"}
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	app.startBackgroundJobs(bgCtx)

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())
		stopBackground()

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
