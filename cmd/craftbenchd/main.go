package main

import (
	"log"

	"github.com/factorlab/craftbench/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
