package main

import (
	_ "hpp_gateway/docs"
	"hpp_gateway/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Hosted Payment Page Gateway API
// @version         1.0
// @description     Hosted payment page sessions, signed results and payment notifications backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.basic BasicAuth
// @description Credentials configured for payment notifications.

func main() {
	routes.Run()
}
