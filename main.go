package main

import (
	_ "time/tzdata" // zone lookups must work on systems without tzdata

	"github.com/inkwhale/inkwhale/cmd"
)

func main() {
	cmd.Execute()
}
