package main

import (
	"log"
	"net/http"

	_ "github.com/S-Rohan-Kumar/CeniDiary-V2/docs" // swagger docs

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/cache"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/config"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/db"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/handler"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/repository"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/service"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/tmdb"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title CeniDiary API
// @version 2.0
// @description Diario social de películas y series (espejo TMDB, Mongo, Redis)
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	mediaRepo := repository.NewMediaRepository()
	listRepo := repository.NewListRepository()
	reviewRepo := repository.NewReviewRepository()

	// cliente TMDB
	tmdbClient := tmdb.NewClient(cfg.TMDBBase, cfg.TMDBAPIKey)

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	mediaSvc := service.NewMediaService(mediaRepo, tmdbClient)
	librarySvc := service.NewLibraryService(userRepo, mediaRepo, reviewRepo, mediaSvc)
	listSvc := service.NewListService(listRepo, mediaRepo, mediaSvc)
	reviewSvc := service.NewReviewService(reviewRepo, mediaRepo, userRepo)
	socialSvc := service.NewSocialService(userRepo)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	mediaH := handler.NewMediaHandler(mediaSvc)
	libraryH := handler.NewLibraryHandler(librarySvc)
	listH := handler.NewListHandler(listSvc)
	reviewH := handler.NewReviewHandler(reviewSvc)
	socialH := handler.NewSocialHandler(socialSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	r.Get("/users/u/{username}", authH.PublicProfile)
	r.Get("/reviews/m/{mediaType}/{tmdbId}", reviewH.ForMedia)
	r.Get("/reviews/stats/{mediaType}/{tmdbId}", reviewH.Stats)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// catálogo
		r.Get("/movies/search", mediaH.Search)
		r.Get("/movies/trending", mediaH.Trending)
		r.Get("/movies/{mediaType}/{tmdbId}", mediaH.Resolve)

		// ---- Endpoints /me ----
		r.Route("/me", func(r chi.Router) {
			r.Get("/", authH.Me)
			r.Patch("/", authH.UpdateProfile)
			r.Post("/change-password", authH.ChangePassword)

			r.Get("/watchlist", libraryH.GetWatchlist)
			r.Post("/watchlist/{mediaType}/{tmdbId}", libraryH.ToggleWatchlist)
			r.Get("/favorites", libraryH.GetFavorites)
			r.Post("/favorites/{mediaType}/{tmdbId}", libraryH.ToggleFavorites)
			r.Get("/watch-history", libraryH.GetWatchHistory)
			r.Post("/watch-history/{mediaType}/{tmdbId}", libraryH.ToggleWatched)

			r.Get("/reviews", reviewH.Mine)
		})

		// ---- Listas ----
		r.Route("/lists", func(r chi.Router) {
			r.Get("/", listH.GetMine)
			r.Post("/", listH.Create)
			r.Get("/{listId}", listH.Get)
			r.Put("/{listId}", listH.Edit)
			r.Delete("/{listId}", listH.Delete)
			r.Post("/{listId}/media/{mediaType}/{tmdbId}", listH.AddMedia)
			r.Delete("/{listId}/media/{mediaType}/{tmdbId}", listH.RemoveMedia)
		})

		// ---- Reviews ----
		r.Post("/reviews", reviewH.Add)
		r.Get("/reviews/user/{id}", reviewH.ByUser)

		// ---- Social ----
		r.Route("/social", func(r chi.Router) {
			r.Post("/follow/{userId}", socialH.ToggleFollow)
			r.Get("/search", socialH.Search)
			r.Get("/status", socialH.Status)
			r.Get("/status/{userId}", socialH.Status)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
