package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/crisvieira/satisfaction-server/config"
	"github.com/crisvieira/satisfaction-server/routes"
	"github.com/crisvieira/satisfaction-server/store"
	"github.com/crisvieira/satisfaction-server/utils"
)

func main() {
	// Operator helper: prints the bcrypt hash to put in ADMIN_PASSWORD_HASH.
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		if len(os.Args) < 3 {
			log.Fatal("usage: satisfaction-server hash-password <password>")
		}
		hash, err := utils.HashPassword(os.Args[2])
		if err != nil {
			log.Fatalf("could not hash password: %v", err)
		}
		fmt.Println(hash)
		return
	}

	// .env is optional; deployments set real env vars.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var responseStore store.ResponseStore
	if config.HasDatabaseEnv() {
		config.ConnectDB()
		responseStore = store.NewGormStore(config.DB)
	} else {
		log.Println("DB env not set, running with in-memory store")
		responseStore = store.NewMemoryStore()
	}

	r := gin.Default()

	allowed := strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",")
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if origin == "http://localhost:5173" {
				return true
			}
			for _, a := range allowed {
				if a != "" && origin == strings.TrimSpace(a) {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Satisfaction server is running")
	})

	if err := r.SetTrustedProxies(nil); err != nil {
		panic(err)
	}

	routes.SetupRoutes(r, responseStore)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on port %s\n", port)
	r.Run(":" + port)
}
