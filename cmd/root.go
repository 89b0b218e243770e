package cmd

import (
	"github.com/spf13/cobra"
)

type flags struct {
	cfgFile    string
	printer    string
	showTokens bool
	verbose    bool
}

func (app *LoxApp) newRootCommand() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "golox [script]",
		Short: "Scan and parse Lox expressions",
		Long: `golox reads Lox expressions and prints their syntax trees.

With a script argument the whole file is parsed and the process exits with
status 65 if it contains lexical or syntax errors. Without arguments golox
starts an interactive prompt.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.configure(cmd, f); err != nil {
				return err
			}
			if len(args) == 1 {
				return app.runFile(args[0])
			}
			return app.runPrompt()
		},
	}

	root.SetOut(app.opts.stdout)
	root.SetErr(app.opts.stderr)

	root.Flags().StringVar(&f.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	root.Flags().StringVarP(&f.printer, "printer", "p", "", "expression printer: ast, rpn or tree")
	root.Flags().BoolVarP(&f.showTokens, "tokens", "t", false, "print scanned tokens")
	root.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "verbose logging")

	return root
}
