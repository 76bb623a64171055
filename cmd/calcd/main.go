package main

import (
	"flag"
	"log"
	"os"

	"github.com/kataras/iris/v12"

	"github.com/zephyrtronium/calc/internal/config"
	"github.com/zephyrtronium/calc/internal/server"
)

func main() {
	log.SetFlags(0)
	var cfgname, listen string
	flag.StringVar(&cfgname, "config", "", "config file (default "+config.FileName+" in the working directory or a parent)")
	flag.StringVar(&listen, "listen", "", "address to serve on (default from config, else :8080)")
	flag.Parse()

	var (
		cfg  *config.Config
		path string
		err  error
	)
	if cfgname != "" {
		cfg, err = config.Load(cfgname)
		path = cfgname
	} else {
		var wd string
		wd, err = os.Getwd()
		if err == nil {
			cfg, path, err = config.FindAndLoad(wd)
		}
	}
	if err != nil {
		log.Fatal(err)
	}
	if listen != "" {
		cfg.Server.Listen = listen
	}

	app := server.New(cfg)
	if path != "" {
		app.Logger().Infof("using config %s", path)
	}
	if err := app.Run(iris.Addr(cfg.Server.Listen), iris.WithoutServerError(iris.ErrServerClosed)); err != nil {
		app.Logger().Fatal(err)
	}
}
