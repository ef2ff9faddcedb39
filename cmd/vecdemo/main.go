package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"vecmath/internal/config"
	"vecmath/internal/demo"
)

func main() {
	var scenarioPath, out, envPath string
	var seed int64
	flag.StringVar(&scenarioPath, "scenario", "", "scenario yaml (empty = built-in walkthrough)")
	flag.StringVar(&out, "out", "", "write the JSON report to this file")
	flag.StringVar(&envPath, "env", "", "optional .env file")
	flag.Int64Var(&seed, "seed", 0, "seed for random steps (0 = scenario seed)")
	flag.Parse()

	settings, err := config.LoadSettings(envPath)
	if err != nil {
		panic(err)
	}
	level, err := logrus.ParseLevel(settings.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", settings.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if seed == 0 {
		seed = settings.Seed
	}

	sc := demo.BuiltinScenario()
	if scenarioPath != "" {
		sc, err = config.LoadScenario(scenarioPath)
		if err != nil {
			panic(err)
		}
	}

	rep := demo.Run(sc, seed)
	for _, ev := range rep.Events {
		if ev.Err != "" {
			fmt.Printf("%s: error: %s\n", ev.Label, ev.Err)
			continue
		}
		fmt.Printf("%s: %s\n", ev.Label, ev.Result)
	}

	if out != "" {
		if err := os.WriteFile(out, demo.MarshalPretty(rep), 0644); err != nil {
			panic(err)
		}
		logrus.WithField("out", out).Info("report written")
	}
	if rep.Failed > 0 {
		logrus.WithField("failed", rep.Failed).Warn("some steps failed")
	}
}
