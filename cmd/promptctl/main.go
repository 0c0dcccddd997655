// Command promptctl manages the AI prompts of a prompt-management backend:
// CRUD from the command line, an interactive browser, local snapshots and an
// MCP server exposing the prompts to AI clients.
package main

import (
	"context"
	"os"

	"github.com/junerver/prompt-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := newRootCommand(buildInfo).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
