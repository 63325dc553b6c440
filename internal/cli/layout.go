package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/llehouerou/smartpack/internal/columns"
	"github.com/llehouerou/smartpack/internal/config"
	"github.com/llehouerou/smartpack/internal/layout"
	"github.com/llehouerou/smartpack/internal/state"
)

func newLayoutCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Inspect or reset the saved column layout",
	}
	cmd.AddCommand(newLayoutShowCommand(opts), newLayoutResetCommand(opts))
	return cmd
}

func newLayoutShowCommand(opts *options) *cobra.Command {
	var width, height float64

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved layout as a viewport would see it",
		Long: `Show the saved column layout after the visibility rules and width
allocation of a viewport have been applied. Sizes are in layout units;
one terminal cell is 8x16 units by default.

Examples:
  # Desktop
  smartpack layout show

  # Phone held upright
  smartpack layout show --width 390 --height 844`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			storage, err := opts.openStorage(cfg)
			if err != nil {
				return err
			}
			defer storage.Close()

			store := newStore(cfg, storage, width, height)
			defer store.Close()
			return printLayout(cmd.OutOrStdout(), store)
		},
	}
	cmd.Flags().Float64Var(&width, "width", 1280, "viewport width in layout units")
	cmd.Flags().Float64Var(&height, "height", 800, "viewport height in layout units")
	return cmd
}

func newLayoutResetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved column visibility and widths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			storage, err := opts.openStorage(cfg)
			if err != nil {
				return err
			}
			defer storage.Close()

			if err := state.ClearLayout(storage); err != nil {
				return fmt.Errorf("reset column layout: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Column layout reset to defaults.")
			return nil
		},
	}
}

// newStore builds a store that never writes: the enforced layout is shown,
// not saved.
func newStore(cfg *config.Config, storage state.Storage, width, height float64) *columns.Store {
	store := columns.New(columns.Options{
		Storage:       readOnly{storage},
		Breakpoints:   cfg.GetLayoutConfig().Breakpoints,
		Metrics:       cfg.Metrics(),
		ReducedMotion: true,
		Viewport:      columns.Viewport{Width: width, Height: height},
	})
	store.EnforceHorizontalConstraints()
	return store
}

func printLayout(out io.Writer, store *columns.Store) error {
	vp := store.Viewport()
	fmt.Fprintf(out, "Viewport: %gx%g (%s)\n\n", vp.Width, vp.Height, store.DeviceType())

	responsive := store.ResponsiveWidths()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Column\tVisible\tSaved width\tResponsive width")
	for _, id := range layout.AllColumns {
		visible := "no"
		allocated := "-"
		if store.Visibility().Get(id) {
			visible = "yes"
			allocated = fmt.Sprintf("%.2f", responsive.Get(id))
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", id, visible, store.Widths().Get(id), allocated)
	}
	return w.Flush()
}

// readOnly drops writes.
type readOnly struct {
	state.Storage
}

func (readOnly) SetItem(string, string) error     { return nil }
func (readOnly) SetItems(map[string]string) error { return nil }
func (readOnly) RemoveItem(string) error          { return nil }
