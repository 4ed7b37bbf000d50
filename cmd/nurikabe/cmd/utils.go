package cmd

import (
	"fmt"
	"os"
)

// check prints err and exits if err is non-nil, matching the CLI's
// fail-fast behavior on bad input.
func check(err error) {
	if err != nil {
		fmt.Printf("error, %v\n", err)
		os.Exit(-1)
	}
}

func fileExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no such file '%v'", path)
		}
		return err
	}
	return nil
}
