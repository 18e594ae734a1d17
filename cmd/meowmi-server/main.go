// Command meowmi-server serves its own directory at http://localhost:8000
// behind a framed banner.
package main

import (
	"github.com/f4ah6o/meowmi-server/internal/cli"
	"github.com/f4ah6o/meowmi-server/internal/profile"
)

func main() {
	cli.Execute("meowmi-server", profile.Game)
}
