package main

import "github.com/s0up4200/alquran/cmd"

// set by -ldflags at release time
var (
	version = "dev"
	date    = "unknown"
)

func main() {
	cmd.SetVersion(version, date)
	cmd.Execute()
}
