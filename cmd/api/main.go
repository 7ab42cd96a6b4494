package main

import (
	"log"

	"lims_service/internal/adapter/http/routes"
	"lims_service/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           LIMS Service API
// @version         1.0
// @description     Dashboard aggregations, analysis reports and invoicing for the gas analysis lab.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if err := routes.Run(cfg); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
