package main

import (
	"github.com/kinolog/core/internal/app"
	"github.com/kinolog/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
