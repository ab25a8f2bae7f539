package main

import (
	"campground/config"
	"campground/di"
	"campground/shared/logger"
)

// @title Campground API
// @version 1.0
// @description Campsite booking and content API.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
