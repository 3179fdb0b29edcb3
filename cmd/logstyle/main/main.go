package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/dfgame/logstyle/cmd/logstyle"
)

func main() {
	rootCmd := logstyle.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(err.Error())
		os.Exit(1)
	}
}
