package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"station-service/internal/auth"
	"station-service/internal/httpx"
	"station-service/internal/station"
	"station-service/internal/token"
	"station-service/internal/user"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	mongoURL := getenv("MONGO_URL", "mongodb://localhost:27017")
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		log.Fatalf("station-service: cannot connect to mongo: %v", err)
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		log.Fatalf("station-service: cannot ping mongo: %v", err)
	}

	db := client.Database(getenv("MONGO_DB", "station_db"))

	secret := os.Getenv("SECRET")
	if secret == "" {
		secret = "Secret-Puk-1234"
		log.Printf("station-service: SECRET is unset, using the insecure default; set SECRET before deploying")
	}
	tokens := token.NewManager([]byte(secret))

	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr})
	}

	userStore := user.NewMongoStore(db)
	if err := userStore.EnsureIndexes(ctx); err != nil {
		log.Fatalf("station-service: ensure user indexes: %v", err)
	}
	stationStore := station.NewMongoStore(db)

	var generator *station.Generator
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		generator = station.NewGenerator(apiKey, getenv("OPENAI_API_URL", "https://api.openai.com/v1/chat/completions"))
	} else {
		log.Printf("station-service: OPENAI_API_KEY is unset, station generation disabled")
	}

	authSrv := auth.NewServer(userStore, tokens)
	userSrv := user.NewServer(userStore)
	stationSrv := station.NewServer(
		stationStore,
		station.NewLikes(stationStore, userStore),
		station.NewEvents(rdb),
		generator,
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"service": "station-service",
		})
	})

	r.Mount("/auth", authSrv.Router())
	r.Mount("/users", userSrv.Router(tokens.RequireAuth))
	r.Mount("/stations", stationSrv.Router(tokens.RequireAuth))

	port := getenv("PORT", "3030")
	log.Printf("station-service listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("station-service: %v", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigin := getenv("CORS_ALLOWED_ORIGIN", "*")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if strings.ToUpper(r.Method) == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
