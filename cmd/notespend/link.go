// Link command group: saved URLs.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/notespend/notespend/pkg/types"
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Manage saved links",
}

var linkAddName string

var linkAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Save a link",
	Long: `Add saves a URL. A URL without a scheme gets https:// prepended.

Example:
  notespend link add example.com/article --name "Good read"`,
	Args: cobra.ExactArgs(1),
	RunE: runLinkAdd,
}

var linkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active saved links",
	RunE:  runLinkList,
}

var linkDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Soft-delete a saved link",
	Args:  cobra.ExactArgs(1),
	RunE:  runLinkDelete,
}

func init() {
	linkAddCmd.Flags().StringVar(&linkAddName, "name", "", "display name for the link")

	linkCmd.AddCommand(linkAddCmd)
	linkCmd.AddCommand(linkListCmd)
	linkCmd.AddCommand(linkDeleteCmd)
}

func runLinkAdd(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	l, err := svc.CreateLink(linkAddName, args[0])
	if err != nil {
		return fmt.Errorf("create link: %w", err)
	}

	if flagJSON {
		return printJSON(l)
	}
	fmt.Printf("Saved link: %s (%s)\n", shortID(l.ID), l.URL)
	return nil
}

func runLinkList(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	links, err := svc.ActiveLinks()
	if err != nil {
		return fmt.Errorf("fetch links: %w", err)
	}

	if flagJSON {
		return printJSON(links)
	}
	printLinkTable(links)
	return nil
}

func runLinkDelete(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := svc.DeleteLink(args[0]); err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	fmt.Printf("Deleted link: %s\n", args[0])
	return nil
}

// printLinkTable prints saved links in a human-readable table format.
func printLinkTable(links []*types.SavedLink) {
	if len(links) == 0 {
		fmt.Println("No links found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tURL\tCREATED")
	for _, l := range links {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			shortID(l.ID),
			truncate(l.Name, 30),
			truncate(l.URL, 50),
			l.CreatedAt.Format("2006-01-02"),
		)
	}
	w.Flush()
	fmt.Print(sb.String())
	fmt.Printf("Total: %d link(s)\n", len(links))
}
