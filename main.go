package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/rotation/internal/rotation/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := rotation(); err != nil {
		logrus.Fatal(err)
	}
}

func rotation() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
