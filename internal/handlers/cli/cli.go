package cli

import (
	"context"

	"github.com/gabapcia/txalert/internal/pkg/validator"

	"github.com/urfave/cli/v3"
)

const testTxFlag = "test-tx"

// Runner is the behavior exposed on the command line.
type Runner interface {
	// Watch follows the chain until ctx is canceled or the chain becomes unreachable.
	Watch(ctx context.Context) error

	// TestTransaction runs a single transaction through the matcher.
	TestTransaction(ctx context.Context, txHash string) error
}

// Run parses args and executes the txalert command.
//
// Without flags the watcher runs until ctx is canceled. With --test-tx the
// given transaction is fetched and handled once, then the command returns.
func Run(ctx context.Context, args []string, r Runner) error {
	return command(r).Run(ctx, args)
}

func command(r Runner) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txalert",
		Description:           "Watches EVM addresses and sends a Telegram alert for every transaction they make or receive.",
		Usage:                 "txalert [--test-tx <hash>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  testTxFlag,
				Usage: "Handle a single transaction by hash and exit",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if !c.IsSet(testTxFlag) {
				return r.Watch(ctx)
			}

			txHash := c.String(testTxFlag)
			if err := validator.Var(txHash, "required,txhash"); err != nil {
				return err
			}

			return r.TestTransaction(ctx, txHash)
		},
	}
}
