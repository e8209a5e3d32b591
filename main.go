package main

import (
	// Timezones are resolved without relying on the host's zoneinfo
	_ "time/tzdata"

	"github.com/fincontrol/backend/internal/commands"
)

func main() {
	commands.Execute()
}
