// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"os"
)

func main() {
	err := NewRootCommand().Execute()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
