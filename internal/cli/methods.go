package cli

import (
	"fmt"

	"github.com/asksunna/salat/internal/method"
	"github.com/spf13/cobra"
)

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List all calculation methods",
		Long:  "Print the table of supported calculation methods. The ids match the Al Adhan API numbering.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Supported calculation methods:")
			fmt.Println()
			fmt.Printf("  %-4s %s\n", "ID", "Name")
			fmt.Printf("  %-4s %s\n", "──", "────")
			for _, id := range method.IDs() {
				fmt.Printf("  %-4d %s\n", id, method.Name(id))
			}
			fmt.Println()
			fmt.Printf("Use --method <ID> to select a method. Default: %d (%s).\n", method.Default, method.Name(method.Default))
			return nil
		},
	}
}
