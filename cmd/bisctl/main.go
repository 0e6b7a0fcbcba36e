package main

import (
	"context"

	"github.com/meur/bisforge/cmd/bisctl/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
