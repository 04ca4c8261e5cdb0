package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pders01/brkpt/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print recorded resize events, newest first",
	RunE: func(_ *cobra.Command, _ []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.RecentResizes(historyLimit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No resize events recorded yet; run the dashboard first.")
			return nil
		}

		for _, ev := range events {
			mobile := ""
			if ev.Mobile {
				mobile = "  mobile"
			}
			fmt.Printf("%s  %4d × %-4d  %-2s%s\n",
				ev.Time.Format("2006-01-02 15:04:05"), ev.Width, ev.Height, ev.Name, mobile)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of events to print")
}

func openStore() (*store.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return store.NewStore(cfg.Database.Path)
}
