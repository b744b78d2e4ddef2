package main

import (
	_ "campus_trade/docs"
	"campus_trade/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Campus Trade API
// @version         1.0
// @description     Student marketplace backend (listings, posting-fee payments, moderation) backed by DynamoDB.

// @contact.name   API Support
// @contact.email  support@campus-trade.example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
