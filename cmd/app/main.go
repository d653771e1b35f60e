package main

import (
	"github.com/humanbelnik/cinemate/internal/app"
	"github.com/humanbelnik/cinemate/internal/config"
)

func main() {
	app.Go(config.Load())
}
