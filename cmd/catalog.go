package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the career catalog and the questionnaire taxonomies",
	Run: func(_ *cobra.Command, _ []string) {
		logger, config := bootstrap()
		c := loadCatalog(config, logger)

		if err := printCatalog(os.Stdout, c); err != nil {
			logger.Fatal("printing the catalog", zap.Error(err))
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Load a CSV or JSON catalog and report what is wrong with it",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger, _ := bootstrap()

		c, err := catalog.LoadFile(args[0])
		if err != nil {
			logger.Fatal("catalog is invalid", zap.Error(err))
		}

		logger.Info("catalog is valid", zap.String("source", c.Source()), zap.Int("careers", c.Len()))
	},
}

func init() {
	catalogCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(catalogCmd)
}

func printCatalog(w io.Writer, c *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tCAREER\tINTERESTS\tSKILLS\tSDGS")
	for _, career := range c.Careers() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			career.ID,
			career.Title,
			strings.Join(career.Interests, ", "),
			strings.Join(career.Skills, ", "),
			strings.Join(catalog.SDGLabels(career.SDGs), ", "),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	printTaxonomy(w, "Interests", c.Interests())
	printTaxonomy(w, "Skills", c.Skills())

	fmt.Fprintln(w, "\nSDGs:")
	for _, goal := range catalog.SDGs() {
		fmt.Fprintf(w, "  %s\n", catalog.SDGLabel(goal.ID))
	}

	return nil
}

func printTaxonomy(w io.Writer, name string, t catalog.Taxonomy) {
	fmt.Fprintf(w, "\n%s:\n", name)
	for _, category := range t {
		fmt.Fprintf(w, "  %s: %s\n", category.Name, strings.Join(category.Tags, ", "))
	}
}
