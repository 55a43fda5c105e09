// Command bizctl drives the bizdesk API from a terminal: clients, notes,
// client notes and the appointment calendar.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
