package cli

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/wf-go/internal/app"
)

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check external tools and data directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, check := range container.Doctor.Run(cmd.Context()) {
				mark := "ok"
				if !check.OK {
					mark = "FAIL"
				}
				cmd.Printf("[%4s] %-16s %s\n", mark, check.Name, check.Detail)
			}
			return nil
		},
	}
}
