package main

import (
	"go.uber.org/fx"

	"github.com/yourusername/telegram-media-vault/internal/app"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
