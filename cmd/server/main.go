package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"shopp_backend/internal/app/di"
	"shopp_backend/internal/app/router"
	authadapters "shopp_backend/internal/feature/auth/adapters"
	authhandler "shopp_backend/internal/feature/auth/transport/handler"
	authusecase "shopp_backend/internal/feature/auth/usecase"
	cartadapters "shopp_backend/internal/feature/cart/adapters"
	carthandler "shopp_backend/internal/feature/cart/transport/handler"
	cartusecase "shopp_backend/internal/feature/cart/usecase"
	cataloghandler "shopp_backend/internal/feature/catalog/transport/handler"
	catalogusecase "shopp_backend/internal/feature/catalog/usecase"
	mediahandler "shopp_backend/internal/feature/media/transport/handler"
	mediausecase "shopp_backend/internal/feature/media/usecase"
	infradb "shopp_backend/internal/platform/db"
	infraredis "shopp_backend/internal/platform/redis"
	jwtmw "shopp_backend/internal/platform/jwt"
)

func main() {
	// .env（ローカル開発用。無ければ環境変数のみで動作）
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found. Using environment variables.")
	}

	ctx := context.Background()

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	cartRepo := cartadapters.NewCartGorm(db)
	productRepo := di.NewProductRepository(rdb, db)

	// 外部サービス
	tokens := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), jwtmw.TokenTTL())
	uploader := di.NewImageUploader()
	moderator := di.NewImageModerator(ctx)
	writer := di.NewDescriptionWriter(ctx)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	cartUC := cartusecase.NewCartUsecase(cartRepo)
	catalogUC := catalogusecase.NewCatalogUsecase(productRepo)
	mediaUC := mediausecase.NewMediaUsecase(uploader, moderator, writer)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	cartH := carthandler.NewCartHandler(cartUC)
	catalogH := cataloghandler.NewCatalogHandler(catalogUC)
	mediaH := mediahandler.NewMediaHandler(mediaUC)

	// ルータ生成（CORSはルータ内で適用）
	router := router.NewRouter(authH, catalogH, cartH, mediaH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
