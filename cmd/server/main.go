package main

import (
	"os"

	"talky/backend/internal/app"
)

// @title           Talky Relay API
// @version         1.0
// @description     Relays chat conversations to Gemini or OpenAI so provider credentials never reach the browser.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	os.Exit(app.Run())
}
