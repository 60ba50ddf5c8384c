package main

import (
	"fmt"
	"os"

	"github.com/pgschema/pgdsl/cmd"
	_ "github.com/pgschema/pgdsl/schemas/shop"
)

func main() {
	if err := cmd.LoadDotenv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cmd.Execute()
}
