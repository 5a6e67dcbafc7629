package main

import "jobmarket_backend/internal/app"

func main() {
	app.Run()
}
