package http

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/shopsmart/storefront-backend/docs" // Импорт сгенерированных файлов
	"github.com/shopsmart/storefront-backend/internal/cfg"
	"github.com/shopsmart/storefront-backend/internal/usecase"
	"github.com/shopsmart/storefront-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(storeUC usecase.StoreUC, productUC usecase.ProductUC, authUC usecase.AuthUC, orderUC usecase.OrderUC, uploadCfg *cfg.UploadCfg) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		authHandler := NewAuthHandler(authUC, r.logger)
		storeHandler := NewStoreHandler(storeUC, r.logger, uploadCfg.MaxFileSize)
		productHandler := NewProductHandler(productUC, r.logger, uploadCfg.MaxFileSize)
		orderHandler := NewOrderHandler(orderUC, r.logger)

		registerAuthRoutes(v1, authHandler, authUC, r.logger)
		registerStoreRoutes(v1, storeHandler, productHandler, orderHandler, authUC, r.logger)
		registerProductRoutes(v1, productHandler, authUC, r.logger)
	})
}

func registerAuthRoutes(router chi.Router, handler *AuthHandler, authUC usecase.AuthUC, log logger.Logger) {
	router.Route("/auth", func(auth chi.Router) {
		auth.Post("/signup", handler.signUp)
		auth.Post("/signin", handler.signIn)

		auth.Group(func(private chi.Router) {
			private.Use(authRequired(authUC, log))
			private.Post("/signout", handler.signOut)
			private.Get("/me", handler.me)
		})
	})
}

func registerStoreRoutes(router chi.Router, stores *StoreHandler, products *ProductHandler, orders *OrderHandler, authUC usecase.AuthUC, log logger.Logger) {
	// Публичная витрина живёт по slug, управление магазином — по ID
	router.Route("/storefronts", func(sf chi.Router) {
		sf.Group(func(public chi.Router) {
			public.Use(authOptional(authUC))
			public.Get("/{slug}", stores.getStorefront)
		})
		sf.Post("/{slug}/order-link", orders.buildOrderLink)
	})

	router.Route("/stores", func(st chi.Router) {
		st.Use(authRequired(authUC, log))
		st.Post("/", stores.createStore)
		st.Patch("/{id}", stores.updateStore)
		st.Post("/{id}/products", products.addProduct)
	})
}

func registerProductRoutes(router chi.Router, handler *ProductHandler, authUC usecase.AuthUC, log logger.Logger) {
	router.Route("/products", func(pr chi.Router) {
		pr.Use(authRequired(authUC, log))
		pr.Patch("/{id}", handler.updateProduct)
		pr.Delete("/{id}", handler.deleteProduct)
	})
}
