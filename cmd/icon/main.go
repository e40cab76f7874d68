package main

import (
	"flag"
	"os"

	"launcher_icons/pkg/config"
	"launcher_icons/pkg/iconset"
)

func main() {
	// Все параметры необязательны: по умолчанию иконки пишутся в
	// android/app/src/main/res текущего проекта
	cfg, err := iconset.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	if err := iconset.Run(cfg, os.Stdout); err != nil {
		config.Exitf("generate icons: %v", err)
	}
}
