package main

import (
	"wep/internal/server"
	"wep/internal/util"
	"wep/pkg/logger"
)

func main() {
	util.LoadEnv()

	logger.Init(logger.InitParams{
		Debug: util.GetEnvBool("DEBUG", false),
	})

	server.Init()
}
