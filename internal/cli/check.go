package cli

import (
	"fmt"
	"time"

	"github.com/achaendus12-spec/my-project-manager/internal/notify"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check for deadline alerts",
	Long: `Run one notification check over the collection. Each project alerts at
most once per calendar day; the shown set resets at midnight.

Examples:
  pm check`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	state := notify.NewState(app.Cache)
	alerts := notify.Check(state, app.Store.Projects(), time.Now())
	if len(alerts) == 0 {
		fmt.Println("No new deadline alerts.")
		return nil
	}
	for _, a := range alerts {
		fmt.Println(notify.Message(a))
	}
	return nil
}
