package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"cat-breed-info/internal/domain/breeds"

	"github.com/spf13/cobra"
)

const (
	ExitOK         = 0
	ExitFetchError = 1
	ExitUsage      = 2
)

// Runner arma la dependencia del service de forma perezosa: así --help y errores de
// uso no necesitan config ni red.
type Runner struct {
	NewService func() (*breeds.Service, error)
	Stdout     io.Writer
	Stderr     io.Writer
}

// Run ejecuta el CLI y devuelve el exit code.
// Not found no es fallo: mensaje en stderr y exit 0.
func (rn Runner) Run(ctx context.Context, args []string) int {
	code := ExitOK
	var raw bool

	cmd := &cobra.Command{
		Use:           "catinfo <breed>",
		Short:         "Get information about cat breeds (TheCatAPI)",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, a []string) error {
			code = rn.lookup(cmd.Context(), a[0], raw)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw JSON for the breed.")
	if args == nil {
		// cobra cae a os.Args si recibe nil
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(rn.Stdout)
	cmd.SetErr(rn.Stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(rn.Stderr, "error: %v\n", err)
		fmt.Fprint(rn.Stderr, cmd.UsageString())
		return ExitUsage
	}
	return code
}

func (rn Runner) lookup(ctx context.Context, name string, raw bool) int {
	svc, err := rn.NewService()
	if err != nil {
		fmt.Fprintf(rn.Stderr, "configuration error: %v\n", err)
		return ExitFetchError
	}

	b, ok, err := svc.Lookup(ctx, name)
	if err != nil {
		fmt.Fprintf(rn.Stderr, "Failed to fetch breed list: %v\n", err)
		return ExitFetchError
	}
	if !ok {
		fmt.Fprintf(rn.Stderr, "Breed not found for '%s'. Try a different name or check spelling.\n", name)
		return ExitOK
	}

	if raw {
		out, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			fmt.Fprintf(rn.Stderr, "encode breed: %v\n", err)
			return ExitFetchError
		}
		fmt.Fprintln(rn.Stdout, string(out))
		return ExitOK
	}

	fmt.Fprintln(rn.Stdout, breeds.Summarize(b))
	return ExitOK
}
