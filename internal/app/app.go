// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"strobemers/core/strobe"
	"strobemers/internal/appcore"
	"strobemers/internal/cli"
	"strobemers/internal/cliutil"
	"strobemers/internal/pretty"
	"strobemers/internal/version"
	"strobemers/internal/writers"
)

// RunContext executes the strobemers command line argv and returns the
// process exit code. Errors returned through cobra are argument or option
// errors (exit 2); run-time failures are mapped by appcore.Run.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	code := 0
	root := newRootCommand(stdout, stderr, &code)
	if argv == nil {
		argv = []string{} // nil makes cobra read os.Args
	}
	root.SetArgs(argv)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	return code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func newRootCommand(stdout, stderr io.Writer, code *int) *cobra.Command {
	root := &cobra.Command{
		Use:           "strobemers",
		Short:         "strobemers: fuzzy gapped k-mer fingerprints of FASTA sequences",
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("strobemers version {{.Version}}\n")

	root.AddCommand(
		newStrobeCommand(strobe.PolicyMin, "min", "MinStrobes: follow-up strobes are window minima", stdout, stderr, code),
		newStrobeCommand(strobe.PolicyRand, "rand", "RandStrobes: follow-up strobes minimize a masked combination", stdout, stderr, code),
		newHashCommand(stdout, stderr, code),
	)
	return root
}

func newStrobeCommand(pol strobe.Policy, name, short string, stdout, stderr io.Writer, code *int) *cobra.Command {
	opts := cli.Defaults()
	var flags *cli.Flags
	cmd := &cobra.Command{
		Use:     name + " [flags] FASTA...",
		Short:   short,
		Example: fmt.Sprintf("  strobemers %s -n 3 -k 15 --w-min 16 --w-max 30 genome.fa.gz", name),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := prepare(&opts, flags, args, true); err != nil {
				return err
			}
			h, err := opts.Hasher()
			if err != nil {
				return err
			}
			*code = appcore.Run(cmd.Context(), stdout, stderr, coreOptions(&opts),
				strobeWork(&opts, pol, h),
				func(out io.Writer, bufSize int) (chan<- hit, <-chan error) {
					if opts.Pretty {
						return writers.StartStrobemerPrettyWriter(out, opts.Header, bufSize, pretty.DefaultOptions)
					}
					return writers.StartStrobemerWriter(out, opts.Output, opts.Header, bufSize)
				},
			)
			return nil
		},
	}
	flags = cli.RegisterCommon(cmd.Flags(), &opts)
	cli.RegisterStrobe(cmd.Flags(), &opts)
	return cmd
}

func newHashCommand(stdout, stderr io.Writer, code *int) *cobra.Command {
	opts := cli.Defaults()
	var flags *cli.Flags
	cmd := &cobra.Command{
		Use:   "hash [flags] FASTA...",
		Short: "Dump the substring hash of every position",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := prepare(&opts, flags, args, false); err != nil {
				return err
			}
			h, err := opts.Hasher()
			if err != nil {
				return err
			}
			*code = appcore.Run(cmd.Context(), stdout, stderr, coreOptions(&opts),
				hashWork(&opts, h),
				func(out io.Writer, bufSize int) (chan<- posHash, <-chan error) {
					return writers.StartHashWriter(out, opts.Output, opts.Header, bufSize)
				},
			)
			return nil
		},
	}
	flags = cli.RegisterCommon(cmd.Flags(), &opts)
	return cmd
}

func prepare(o *cli.Options, f *cli.Flags, args []string, strobeMode bool) error {
	files, err := cliutil.ExpandPositionals(args)
	if err != nil {
		return err
	}
	o.SeqFiles = files
	f.Finish(o)
	if err := cli.Validate(o, strobeMode); err != nil {
		return err
	}
	return nil
}

func coreOptions(o *cli.Options) appcore.Options {
	return appcore.Options{
		SeqFiles:        o.SeqFiles,
		Threads:         o.EffectiveThreads(),
		Ordered:         o.Sort,
		Quiet:           o.Quiet,
		NoMatchExitCode: o.NoMatchExitCode,
	}
}
