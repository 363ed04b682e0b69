// nxcube - N×N cube engine, session recorder and GoCube mirror.
package main

import (
	"github.com/SeamusWaldron/nxcube/internal/cli"
)

func main() {
	cli.Execute()
}
