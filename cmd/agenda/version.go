package main

import "fmt"

var buildVersion = "dev"

func init() {
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func versionString() string {
	return fmt.Sprintf("agenda %s", buildVersion)
}
