// Command start-server serves its own directory at http://localhost:8000 and
// opens it in the default browser a second after startup.
package main

import (
	"github.com/f4ah6o/meowmi-server/internal/cli"
	"github.com/f4ah6o/meowmi-server/internal/profile"
)

func main() {
	cli.Execute("start-server", profile.Start)
}
