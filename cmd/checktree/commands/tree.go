package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/checktree/internal/errors"
	"github.com/thoreinstein/checktree/internal/stringrules"
)

var (
	treeName string
	treeList bool
)

func init() {
	treeCmd.Flags().StringVarP(&treeName, "tree", "t", "", "tree to print (default from config)")
	treeCmd.Flags().BoolVar(&treeList, "list", false, "list registered tree names")

	rootCmd.AddCommand(treeCmd)
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the structure of a check tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		if treeList {
			for _, n := range stringrules.Names() {
				fmt.Fprintln(out, n)
			}
			return nil
		}

		name := cfg.Tree
		if cmd.Flags().Changed("tree") {
			name = treeName
		}
		tree, err := stringrules.Lookup(name)
		if err != nil {
			return errors.NewUserError(err, "Run 'checktree tree --list' to see available trees")
		}
		writeTree(out, tree)
		return nil
	},
}
