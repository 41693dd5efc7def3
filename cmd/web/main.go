package main

import "talenthub_backend/internal/app"

func main() {
	app.Run()
}
