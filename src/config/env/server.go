package env

import (
	"os"

	"github.com/pterm/pterm"
)

var ServerPort string

func loadServerEnv() {
	ServerPort = os.Getenv("SERVER_PORT")
	if ServerPort == "" {
		ServerPort = "8080"
	}

	pterm.DefaultLogger.Info("Server environment done with port " + ServerPort)
}
