package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/estudos/internal/adapters/config"
	"github.com/rafaelleal24/estudos/internal/adapters/http/controllers"
	"github.com/rafaelleal24/estudos/internal/adapters/http/handlers"
	"github.com/rafaelleal24/estudos/internal/adapters/http/middleware"
	"github.com/rafaelleal24/estudos/internal/adapters/http/views"
)

const sessionName = "estudos_session"

type Router struct {
	healthController  *controllers.HealthController
	productController *controllers.ProductController
	rateLimiter       middleware.RateLimiter
	tokenStore        middleware.TokenStore
	config            *config.Config
}

func NewRouter(
	healthController *controllers.HealthController,
	productController *controllers.ProductController,
	rateLimiter middleware.RateLimiter,
	tokenStore middleware.TokenStore,
	config *config.Config,
) *Router {
	return &Router{
		healthController:  healthController,
		productController: productController,
		rateLimiter:       rateLimiter,
		tokenStore:        tokenStore,
		config:            config,
	}
}

func (r *Router) sessionStore() sessions.Store {
	store := cookie.NewStore([]byte(r.config.HTTP.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   r.config.HTTP.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(views.Templates())
	router.MaxMultipartMemory = r.config.Upload.MaxSize + 1<<20

	router.Use(middleware.LogRequest("/health", r.config.Upload.PublicPath))
	router.NoRoute(handlers.NotFound)

	router.GET("/health", r.healthController.Health)
	router.Static(r.config.Upload.PublicPath, r.config.Upload.Dir)

	// Submissions are rate limited before their one-time token is consumed.
	site := router.Group("/")
	site.Use(
		sessions.Sessions(sessionName, r.sessionStore()),
		middleware.RateLimit(r.rateLimiter, r.config.RateLimit.Limit, r.config.RateLimit.Window),
		middleware.AntiForgery(r.tokenStore, r.config.AntiForgery.TokenTTL),
	)
	site.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/produtos")
	})

	pc := r.productController

	products := site.Group("/produtos")
	{
		products.GET("", pc.Index)
		products.GET("/detalhes/:id", pc.Details)
		products.GET("/novo", pc.New)
		products.POST("/novo", pc.Create)
		products.GET("/editar/:id", pc.Edit)
		products.POST("/editar/:id", pc.Update)
		products.GET("/excluir/:id", pc.ConfirmDelete)
		products.POST("/excluir/:id", pc.Delete)
	}
}

func (r *Router) ListenAndServe(ctx context.Context) error {
	engine := gin.New()
	engine.Use(gin.Recovery())
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", r.config.HTTP.BindInterface, r.config.HTTP.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
