package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"trivia-night/internal/config"
)

// NewPacksCmd lists the packs available to play.
func NewPacksCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "packs",
		Short: "List the available question packs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			logger := newLogger(cfg)
			d, err := buildDeps(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer d.Close()

			catalog, err := d.catalogs.GetCatalog(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}

			rows := make([][]string, 0, len(catalog.Packs))
			for _, p := range catalog.Packs {
				rows = append(rows, []string{p.ID, p.Title, strconv.Itoa(len(p.Questions)), p.Description})
			}
			r := lipgloss.NewRenderer(cmd.OutOrStdout())
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "Title", "Questions", "Description").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return r.NewStyle().Bold(true).Padding(0, 1)
					}
					return r.NewStyle().Padding(0, 1)
				})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}
