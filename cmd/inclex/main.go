package main

import (
	"log"
	"os"
)

var (
	Version   = ""
	BuildTime = ""
	CommitID  = ""
)

func main() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		log.Printf("inclex failed. err:%v", err)
		os.Exit(1)
	}
}
