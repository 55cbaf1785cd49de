package main

import (
	"os"

	"github.com/msto63/kalender/cmd/kal/cmd"
	mdwerror "github.com/msto63/kalender/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(mdwerror.GetCode(err).ExitCode())
	}
}
