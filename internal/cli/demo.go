package cli

import (
	"github.com/spf13/cobra"
)

// runDemo plays the demonstration session. Every failure inside the
// session is logged and absorbed, so the command only fails when the
// configuration itself is unusable.
func runDemo(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.ledger.RunDemo(cmd.OutOrStdout()); err != nil {
		s.log.Errorw("Could not write output", "error", err)
	}
	return nil
}
