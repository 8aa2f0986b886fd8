package main

import (
	"iconcatalog/cmd/handlers"
	"iconcatalog/internal/logger"
)

func main() {
	logger.Init()
	handlers.Execute()
}
