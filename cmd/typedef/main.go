// Command typedef checks and inspects declarative GraphQL enum definitions.
package main

import (
	"context"
	"log"

	"go.appointy.com/typedef/cmd/typedef/internal/commands"
)

func main() {
	log.SetFlags(0)
	if err := commands.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("error: %v", err)
	}
}
