package cli

import (
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"pfeifer.dev/pccd/pid"
)

func showGains(w io.Writer) error {
	store := pid.NewParamsGainStore(pid.DefaultGains())
	gains, result, err := store.Load()
	if result == pid.GainsReadFailed {
		return err
	}
	fmt.Fprintf(w, "source: %s\np: %g\ni: %g\nd: %g\nf: %g\n", result, gains.P, gains.I, gains.D, gains.F)
	return nil
}

func resetGains(skipConfirm bool) error {
	if !skipConfirm {
		prompt := promptui.Prompt{
			Label:     "Remove the stored gains",
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			if errors.Is(err, promptui.ErrAbort) {
				fmt.Println("Gains kept")
				return nil
			}
			return errors.Wrap(err, "prompt failed")
		}
	}
	store := pid.NewParamsGainStore(pid.DefaultGains())
	if err := store.Remove(); err != nil {
		return err
	}
	fmt.Println("Gains removed, defaults apply on the next start")
	return nil
}
