package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/futureuniv/campusfeed/internal/avatar"
	"github.com/futureuniv/campusfeed/internal/feed"
	"github.com/futureuniv/campusfeed/internal/remote"
	"github.com/futureuniv/campusfeed/internal/repository"
	redisCache "github.com/futureuniv/campusfeed/internal/repository/redis"
	"github.com/futureuniv/campusfeed/internal/rest"
	"github.com/futureuniv/campusfeed/internal/rest/middleware"
	postUsecase "github.com/futureuniv/campusfeed/internal/usecase/post"
	profileUsecase "github.com/futureuniv/campusfeed/internal/usecase/profile"
	userUsecase "github.com/futureuniv/campusfeed/internal/usecase/user"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":9090"
	defaultCacheDB     = 0
	defaultViewTTLMins = 30
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file found, relying on the environment")
	}
}

func main() {
	// prepare the remote store client
	storeURL := os.Getenv("STORE_URL")
	storeKey := os.Getenv("STORE_ANON_KEY")
	if storeURL == "" || storeKey == "" {
		log.Fatal("STORE_URL and STORE_ANON_KEY must be set")
	}
	store := remote.NewClient(remote.Config{
		BaseURL: storeURL,
		AnonKey: storeKey,
	})
	defer func() {
		if err := store.Close(); err != nil {
			log.Println("got error when closing the store client", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			log.Println("got error when closing the cache connection", err)
		}
	}()

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Fatal("failed to open connection to cache", err)
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("avatartag", func(fl validator.FieldLevel) bool {
			return avatar.IsPredefined(fl.Field().String())
		})
	}

	// prepare repositories
	profileCache := redisCache.NewProfileCache(client)
	profileRepo := repository.NewProfileRepository(store, profileCache)

	// per-session feed views
	viewTTLStr := os.Getenv("VIEW_TTL_MINUTES")
	viewTTL, err := strconv.Atoi(viewTTLStr)
	if err != nil {
		log.Println("failed to parse view TTL, using default")
		viewTTL = defaultViewTTLMins
	}
	views := feed.NewManager(store, time.Duration(viewTTL)*time.Minute)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go views.Start(ctx)

	// build service layer
	resolver := avatar.NewResolver(store)
	postSvc := postUsecase.NewService(store, store, profileRepo)
	profileSvc := profileUsecase.NewService(profileRepo, store)
	userSvc := userUsecase.NewService(store)

	feedHandler := rest.NewFeedHandler(views, postSvc, resolver, store)
	postHandler := rest.NewPostHandler(postSvc, views, resolver, store)
	profileHandler := rest.NewProfileHandler(profileSvc, resolver)
	userHandler := rest.NewUserHandler(userSvc)

	jwtSecret := os.Getenv("JWT_SECRET")
	authMiddleware := middleware.AuthMiddleware(jwtSecret)
	optionalAuth := middleware.OptionalAuth(jwtSecret)

	// register routes
	route.POST("/signup", userHandler.Register)
	route.POST("/login", userHandler.Login)

	route.GET("/feed", optionalAuth, feedHandler.Fetch)
	route.POST("/feed/refresh", optionalAuth, feedHandler.Refresh)
	route.GET("/profiles/:id", profileHandler.GetByID)
	route.GET("/avatars", profileHandler.Library)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/posts", postHandler.Store)
		authorized.POST("/posts/:id/clap", feedHandler.Clap)
		authorized.DELETE("/posts/:id", feedHandler.Delete)
		authorized.GET("/profile", profileHandler.Me)
		authorized.PATCH("/profile", profileHandler.Edit)
		authorized.PUT("/profile/avatar", profileHandler.SelectAvatar)
		authorized.POST("/profile/avatar", profileHandler.UploadAvatar)
	}

	// start server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
