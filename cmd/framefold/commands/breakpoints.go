package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framefold/responsive"
	"github.com/framefold/responsive/style"
)

var breakpointsCmd = &cobra.Command{
	Use:     "breakpoints",
	Aliases: []string{"bp"},
	Short:   "Manage the responsive breakpoint registry",
}

var breakpointsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List breakpoints in display order",
	RunE:  runBreakpointsList,
}

var breakpointsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a breakpoint",
	RunE:  runBreakpointsAdd,
}

var breakpointsRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a breakpoint (the default breakpoint is refused)",
	Args:  cobra.ExactArgs(1),
	RunE:  runBreakpointsRemove,
}

var breakpointsActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Make a breakpoint the editing target",
	Args:  cobra.ExactArgs(1),
	RunE:  runBreakpointsActivate,
}

var breakpointsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the registry with the seed desktop/tablet/mobile set",
	RunE:  runBreakpointsReset,
}

func init() {
	breakpointsAddCmd.Flags().String("name", "", "display name")
	breakpointsAddCmd.Flags().Float32("width", 0, "editing viewport width")
	breakpointsAddCmd.Flags().Float32("height", 0, "editing viewport height")
	breakpointsAddCmd.Flags().String("category", string(style.CategoryDesktop), "desktop, tablet, or mobile")
	breakpointsAddCmd.Flags().Float32("min-width", 0, "inclusive lower bound in px")
	breakpointsAddCmd.Flags().Float32("max-width", 0, "inclusive upper bound in px")
	_ = breakpointsAddCmd.MarkFlagRequired("name")
	_ = breakpointsAddCmd.MarkFlagRequired("width")
	_ = breakpointsAddCmd.MarkFlagRequired("height")

	breakpointsCmd.AddCommand(
		breakpointsListCmd,
		breakpointsAddCmd,
		breakpointsRemoveCmd,
		breakpointsActivateCmd,
		breakpointsResetCmd,
	)
	rootCmd.AddCommand(breakpointsCmd)
}

func runBreakpointsList(cmd *cobra.Command, args []string) error {
	sess, closer, err := openSession()
	if err != nil {
		return err
	}
	defer closer()

	activeID := sess.ActiveID()
	for _, bp := range sess.Breakpoints() {
		marker := " "
		if bp.ID == activeID {
			marker = "*"
		}
		suffix := ""
		if bp.Default {
			suffix = " (default)"
		}
		fmt.Printf("%s %-28s %-10s %4.0fx%-5.0f %s%s\n",
			marker, bp.ID, bp.Name, bp.Width, bp.Height, boundsLabel(bp), suffix)
	}
	return nil
}

func boundsLabel(bp style.Breakpoint) string {
	switch {
	case bp.MinWidth != nil && bp.MaxWidth != nil:
		return fmt.Sprintf("%.0f–%.0fpx", *bp.MinWidth, *bp.MaxWidth)
	case bp.MinWidth != nil:
		return fmt.Sprintf("≥%.0fpx", *bp.MinWidth)
	case bp.MaxWidth != nil:
		return fmt.Sprintf("≤%.0fpx", *bp.MaxWidth)
	default:
		return "all widths"
	}
}

func runBreakpointsAdd(cmd *cobra.Command, args []string) error {
	sess, closer, err := openSession()
	if err != nil {
		return err
	}
	defer closer()

	spec := responsive.BreakpointSpec{}
	spec.Name, _ = cmd.Flags().GetString("name")
	spec.Width, _ = cmd.Flags().GetFloat32("width")
	spec.Height, _ = cmd.Flags().GetFloat32("height")
	category, _ := cmd.Flags().GetString("category")
	spec.Category = style.Category(category)
	if cmd.Flags().Changed("min-width") {
		v, _ := cmd.Flags().GetFloat32("min-width")
		spec.MinWidth = &v
	}
	if cmd.Flags().Changed("max-width") {
		v, _ := cmd.Flags().GetFloat32("max-width")
		spec.MaxWidth = &v
	}

	id, err := sess.Add(spec)
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

func runBreakpointsRemove(cmd *cobra.Command, args []string) error {
	sess, closer, err := openSession()
	if err != nil {
		return err
	}
	defer closer()
	return sess.Delete(args[0])
}

func runBreakpointsActivate(cmd *cobra.Command, args []string) error {
	sess, closer, err := openSession()
	if err != nil {
		return err
	}
	defer closer()

	if _, ok := sess.Get(args[0]); !ok {
		return fmt.Errorf("%w: %s", responsive.ErrNotFound, args[0])
	}
	return sess.SetActive(args[0])
}

func runBreakpointsReset(cmd *cobra.Command, args []string) error {
	sess, closer, err := openSession()
	if err != nil {
		return err
	}
	defer closer()
	return sess.Reset()
}
