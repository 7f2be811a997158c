package main

import "nanofrontier/internal/app"

// @title           NanoFrontier Demand Survey API
// @version         1.0
// @description     Lead capture and demand aggregation for pre-IPO offerings.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
