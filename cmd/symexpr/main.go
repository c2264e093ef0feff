package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var evalExpr string

	root := &cobra.Command{
		Use:   "symexpr [file...]",
		Short: "Interactive shell for the symbolic expression engine",
		Long: `symexpr parses, simplifies and evaluates symbolic scalar expressions.

With no arguments it starts an interactive shell. With file arguments it
executes each file, one expression per line. With -c it evaluates a
single expression and prints the result.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := NewREPL()
			if evalExpr != "" {
				out, err := r.EvaluateString(evalExpr)
				if err != nil {
					return err
				}
				fmt.Println(out)
				return nil
			}
			if len(args) > 0 {
				for _, file := range args {
					if err := r.ExecuteFile(file); err != nil {
						return err
					}
				}
				return nil
			}
			return r.Run()
		},
	}
	root.Flags().StringVarP(&evalExpr, "eval", "c", "", "evaluate a single expression and exit")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
