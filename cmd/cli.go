package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra/catalog"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "room-booking",
		Short: "Meeting room booking API",
		Long: `Meeting room booking API

Runs the HTTP server when called without a subcommand. Configuration is
read from the environment (PORT, BOOKING_*, SESSION_*, CATALOG_SEED_PATH...).
`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServer()
		},
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE: func(_ *cobra.Command, _ []string) error {
				return runServer()
			},
		},
		newCatalogCmd(),
	)
	return rootCmd
}

func newCatalogCmd() *cobra.Command {
	var (
		seedPath   string
		jsonOutput bool
	)

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Validate and print the room catalog",
		Long: `Validate and print the room catalog

Loads the seed table the server would load and prints it. Exits non-zero
when the seed is invalid, so it can gate a deployment.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := catalog.Load(seedPath)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printCatalogJSON(cmd.OutOrStdout(), c)
			}
			return printCatalogTable(cmd.OutOrStdout(), c)
		},
	}

	catalogCmd.Flags().StringVar(&seedPath, "seed", os.Getenv("CATALOG_SEED_PATH"), "seed file (embedded table when empty)")
	catalogCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "JSON output")
	return catalogCmd
}

func printCatalogTable(w io.Writer, c *room.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCAPACITY\tEQUIPMENT")
	for _, rm := range c.List() {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", rm.ID(), rm.Name(), rm.Capacity(), strings.Join(rm.Equipment(), ", "))
	}
	return tw.Flush()
}

type catalogRow struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Capacity    int      `json:"capacity"`
	Equipment   []string `json:"equipment"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
}

func printCatalogJSON(w io.Writer, c *room.Catalog) error {
	rows := make([]catalogRow, 0, c.Len())
	for _, rm := range c.List() {
		rows = append(rows, catalogRow{
			ID:          rm.ID(),
			Name:        rm.Name(),
			Capacity:    rm.Capacity(),
			Equipment:   rm.Equipment(),
			Image:       rm.Image(),
			Description: rm.Description(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
