package env

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

var (
	MetaBotToken    string
	MetaNumberID    string
	MetaVerifyToken string
	MetaAppSecret   string
	MetaVersion     = "v22.0"
)

func loadWhatsAppEnv() {
	MetaBotToken = os.Getenv("META_BOT_TOKEN")
	MetaNumberID = os.Getenv("META_NUMBER_ID")
	MetaVerifyToken = os.Getenv("META_VERIFY_TOKEN")
	MetaAppSecret = os.Getenv("META_APP_SECRET")

	if version := os.Getenv("META_VERSION"); version != "" {
		MetaVersion = version
	}

	if MetaAppSecret == "" {
		pterm.DefaultLogger.Warn("META_APP_SECRET not set, webhook signature verification disabled")
	}

	pterm.DefaultLogger.Info(
		fmt.Sprintf(
			"WhatsApp environment done with number id %s and Graph API version %s",
			MetaNumberID,
			MetaVersion,
		),
	)
}
