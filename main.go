package main

import (
	"masjid-events/cmd"

	_ "go.uber.org/automaxprocs"
)

func main() {
	cmd.Start()
}
