package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/dice/internal/dice/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := dice(); err != nil {
		logrus.Fatal(err)
	}
}

func dice() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
