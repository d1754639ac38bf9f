package main

import (
	"slotswapper/core/logger"
	"slotswapper/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
