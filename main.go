// main is the entry point of the nutriplan CLI.
package main

import (
	"github.com/huangsam/nutriplan/cmd"
	"github.com/huangsam/nutriplan/internal/contract"
	"github.com/huangsam/nutriplan/internal/persist"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	persist.CloseStores()
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
