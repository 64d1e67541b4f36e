package main

import (
	"fmt"
	"os"

	djangoapp "github.com/artus40/djangoapp-ynh/cmd/djangoapp-ynh"
	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/style"
)

func main() {
	rootCmd := djangoapp.NewRootCmd()
	err := rootCmd.Execute()

	// Failed steps were already listed by the summary
	if err != nil && !errors.IsErrorCode(err, errors.ErrStepsFailed) {
		fmt.Fprintln(os.Stderr, style.Fatal(fmt.Sprintf(djangoapp.MsgFatalFormat, err)))
	}
	os.Exit(djangoapp.ExitCode(err))
}
