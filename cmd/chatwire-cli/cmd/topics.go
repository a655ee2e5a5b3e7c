package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/chatwire/chatwire/internal/chat"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the bus topics and event kinds the relay publishes",
	Run: func(cmd *cobra.Command, args []string) {
		topics := tablewriter.NewWriter(os.Stdout)
		topics.SetHeader([]string{"Topic", "Description", "Example"})
		for _, t := range chat.BusTopics() {
			topics.Append([]string{t.Name, t.Description, t.Example})
		}
		topics.Render()

		kinds := tablewriter.NewWriter(os.Stdout)
		kinds.SetHeader([]string{"Event Kind", "Description"})
		for _, k := range chat.EventKinds() {
			kinds.Append([]string{k.Kind, k.Description})
		}
		kinds.Render()
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
