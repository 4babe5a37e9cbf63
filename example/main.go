package main

import (
	"flag"
	"log"
	"net/http"

	"go.appointy.com/typedef/example/tasks"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	h, err := tasks.GetGraphqlServer()
	if err != nil {
		log.Fatalf("Failed to get GraphQL server: %v", err)
	}

	http.Handle("/graphql", h)

	log.Printf("Server running on %s", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal(err)
	}
}
