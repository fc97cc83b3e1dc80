package main

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/archives/internal/cmd"
	"github.com/Iron-Ham/archives/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if !errors.IsUserFacing(err) && errors.GetSeverity(err) >= errors.SeverityError {
			fmt.Fprintln(os.Stderr, "Run 'archives logs --level warn' for details.")
		}
		os.Exit(1)
	}
}
