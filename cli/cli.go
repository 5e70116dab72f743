package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	"pfeifer.dev/pccd/carcan"
	"pfeifer.dev/pccd/pcc"
)

func Handle() {
	shouldExit := true
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Watch and configure an active pccd instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					interactive()
					return nil
				},
			},
			{
				Name:  "gains",
				Usage: "Inspect the stored longitudinal PID gains",
				Commands: []*cli.Command{
					{
						Name:  "show",
						Usage: "Print the stored gains, or the defaults when none are stored",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return showGains(os.Stdout)
						},
					},
					{
						Name:  "reset",
						Usage: "Remove the stored gains so the defaults are used on the next start",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:    "yes",
								Aliases: []string{"y"},
								Usage:   "Skip the confirmation prompt",
							},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return resetGains(cmd.Bool("yes"))
						},
					},
				},
			},
			{
				Name:  "encode",
				Usage: "Print the CAN frame for a pedal command",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  "value",
						Usage: "Pedal value in percent",
						Value: 0,
					},
					&cli.BoolFlag{
						Name:  "enable",
						Usage: "Set the enable bit",
						Value: true,
					},
					&cli.UintFlag{
						Name:  "index",
						Usage: "Rolling counter, 0 to 15",
						Value: 0,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					frame := carcan.PedalFrame(pcc.PedalCommand{
						Value:  cmd.Float64("value"),
						Enable: cmd.Bool("enable"),
						Index:  uint8(cmd.Uint("index") % 16),
					})
					fmt.Println(frame.String())
					return nil
				},
			},
		},
		Name:  "pccd",
		Usage: "Start an instance of the pedal cruise control daemon",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shouldExit = false
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}

	if shouldExit {
		os.Exit(0)
	}
}
