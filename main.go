package main

import (
	"os"

	"github.com/yisrael-haber/go-www-server/src"
)

func main() {

	if len(os.Args) > 1 && os.Args[1] == "help" {
		src.DisplayHelp(os.Stdout)
		return
	}

	config, err := src.ExtractArgs(os.Args[1:])

	if err != nil {
		src.PrintError(os.Stderr, "Encountered error while reading arguments: \n\t%s\n", err.Error())
		os.Exit(1)
	}

	config.Logger = src.NewLogger(os.Stderr, config.Debug)

	listener, err := src.BindPort(config.Host, config.Port)
	if err != nil {
		config.Logger.Fatal().Err(err).Msg("bind failed")
	}
	defer listener.Close()

	if err := src.NewServer(config).Serve(listener); err != nil {
		config.Logger.Error().Err(err).Msg("server stopped")
	}
}
