package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/ReactorCalc/internal/model"
	"github.com/piwi3910/ReactorCalc/internal/project"
)

func newProfilesCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage physics profiles",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in and custom physics profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles := model.AllPhysicsProfiles()
			if e.json {
				return writeJSON(e.out, profiles)
			}
			tw := newTable(e.out)
			fmt.Fprintln(tw, "NAME\tKIND\tDESCRIPTION")
			for _, p := range profiles {
				kind := "custom"
				if p.IsBuiltIn {
					kind = "built-in"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, kind, p.Description)
			}
			return tw.Flush()
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export NAME FILE",
		Short: "Write a profile to a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var found *model.PhysicsProfile
			for _, p := range model.AllPhysicsProfiles() {
				if p.Name == args[0] {
					found = &p
					break
				}
			}
			if found == nil {
				return fmt.Errorf("profile %q not found", args[0])
			}
			if err := project.ExportProfile(args[1], *found); err != nil {
				return err
			}
			_, err := fmt.Fprintf(e.out, "Exported %q to %s\n", found.Name, args[1])
			return err
		},
	}

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Add a profile from a JSON file to the custom profiles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := project.ImportProfile(args[0])
			if err != nil {
				return err
			}
			if err := model.AddCustomPhysicsProfile(p); err != nil {
				return err
			}
			if err := project.SavePhysicsProfiles(e.profiles, model.CustomPhysicsProfiles); err != nil {
				return err
			}
			_, err = fmt.Fprintf(e.out, "Imported %q\n", p.Name)
			return err
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Delete a custom profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := model.RemoveCustomPhysicsProfile(args[0]); err != nil {
				return err
			}
			if err := project.SavePhysicsProfiles(e.profiles, model.CustomPhysicsProfiles); err != nil {
				return err
			}
			_, err := fmt.Fprintf(e.out, "Removed %q\n", args[0])
			return err
		},
	}

	cmd.AddCommand(listCmd, exportCmd, importCmd, removeCmd)
	return cmd
}
