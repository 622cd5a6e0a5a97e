package recipebook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/recipebook/internal/cli/render"
	"github.com/ytget/recipebook/internal/recipeapi"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show every detail of one recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		format, err := render.ParseFormat(outputFmt)
		if err != nil {
			return err
		}
		opts, logger, err := loadOptions()
		if err != nil {
			return err
		}

		recipe, err := newClient(opts, logger).Get(cmd.Context(), id)
		if recipeapi.IsNotFound(err) {
			return fmt.Errorf("recipe %d not found", id)
		}
		if err != nil {
			return err
		}
		return render.Recipe(cmd.OutOrStdout(), recipe, format)
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List every recipe tag",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := render.ParseFormat(outputFmt)
		if err != nil {
			return err
		}
		opts, logger, err := loadOptions()
		if err != nil {
			return err
		}

		tags, err := newClient(opts, logger).Tags(cmd.Context())
		if err != nil {
			return err
		}
		return render.Tags(cmd.OutOrStdout(), tags, format)
	},
}

func parseIDArg(value string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid recipe id %q", value)
	}
	if id <= 0 {
		return 0, fmt.Errorf("recipe id must be > 0")
	}
	return id, nil
}

func init() {
	addOutputFlag(showCmd)
	addOutputFlag(tagsCmd)
	rootCmd.AddCommand(showCmd, tagsCmd)
}
