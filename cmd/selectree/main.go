package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	a := &app{}
	err := a.rootCmd().Execute()
	a.closeLog()

	if err != nil {
		// a cancelled dropdown exits quietly
		if !errors.Is(err, errCancelled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
