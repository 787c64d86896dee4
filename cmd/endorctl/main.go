package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vmindtech/endor/internal/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
