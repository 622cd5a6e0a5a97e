package recipebook

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/recipebook/internal/catalog"
	"github.com/ytget/recipebook/internal/cli/render"
	"github.com/ytget/recipebook/internal/model"
)

var (
	listSearch string
	listTag    string
	listMeal   string
	listSort   string
	listPage   int
	outputFmt  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes, optionally filtered and sorted",
	Long: "List one page of recipes. Search text wins over --tag, which wins over --meal; " +
		"filtered results come back in a single page.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := render.ParseFormat(outputFmt)
		if err != nil {
			return err
		}
		if listPage < 1 {
			return fmt.Errorf("--page must be >= 1")
		}
		if err := validateOption("meal", model.MealTypes, listMeal); err != nil {
			return err
		}
		if err := validateOption("sort", model.SortOptions, listSort); err != nil {
			return err
		}

		opts, logger, err := loadOptions()
		if err != nil {
			return err
		}

		query := model.QueryState{
			Search: listSearch,
			Tag:    listTag,
			Meal:   listMeal,
			SortBy: listSort,
			Page:   listPage - 1,
		}
		req := catalog.BuildRequest(query)
		if !req.Paginated() {
			query.Page = 0
		}

		result, err := newClient(opts, logger).List(cmd.Context(), req)
		if err != nil {
			return err
		}
		return render.RecipePage(cmd.OutOrStdout(), render.NewPage(result.Recipes, query.Page, result.Total), format)
	},
}

// validateOption rejects values not offered by the matching picker
func validateOption(flag string, opts []model.Option, value string) error {
	if value == "" {
		return nil
	}
	values := make([]string, len(opts))
	for i, o := range opts {
		if o.Value == value {
			return nil
		}
		values[i] = o.Value
	}
	return fmt.Errorf("invalid --%s %q (valid values: %s)", flag, value, strings.Join(values, ", "))
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFmt, "output", "o", string(render.FormatText), "Output format (text, json, yaml)")
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Search text")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Only recipes with this tag")
	listCmd.Flags().StringVar(&listMeal, "meal", "", "Only recipes for this meal type")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort key (name, caloriesPerServing, prepTimeMinutes, rating)")
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "Page number, starting at 1")
	addOutputFlag(listCmd)
	rootCmd.AddCommand(listCmd)
}
