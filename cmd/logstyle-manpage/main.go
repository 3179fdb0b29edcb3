package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/dfgame/logstyle/cmd/logstyle"
	"github.com/dfgame/logstyle/internal/version"
)

func main() {
	rootCmd := logstyle.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "LOGSTYLE",
		Section: "1",
		Source:  "logstyle " + version.Version,
		Manual:  "logstyle manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
