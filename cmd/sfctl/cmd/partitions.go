package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	fabric "github.com/ozanturksever/go-fabric"
)

var partitionsCmd = &cobra.Command{
	Use:   "partitions <service>",
	Short: "List the partitions of a service",
	Long: `List the partitions of a service with their health and status.

Example:
  sfctl partitions fabric:/Shop/Orders
  sfctl partitions fabric:/Shop/Orders --id 6c4a3f0e-0f3a-4a55-9d38-0b8f5f7b5a01`,
	Args: cobra.ExactArgs(1),
	RunE: runPartitions,
}

func init() {
	rootCmd.AddCommand(partitionsCmd)

	partitionsCmd.Flags().String("id", "", "only the partition with this ID")
}

func runPartitions(cmd *cobra.Command, args []string) error {
	fc, err := loadSettings()
	if err != nil {
		return err
	}
	ctx := context.Background()

	c, closeClient, err := openClient(ctx, fc, newLogger())
	if err != nil {
		return err
	}
	defer closeClient()

	qc, err := c.QueryClient()
	if err != nil {
		return err
	}
	defer qc.Close()

	var items []fabric.PartitionQueryResultItem
	if s, _ := cmd.Flags().GetString("id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return fmt.Errorf("invalid partition ID: %w", err)
		}
		item, err := qc.GetPartition(ctx, args[0], id, 0)
		if err != nil {
			return err
		}
		items = append(items, item)
	} else {
		items, err = qc.GetPartitionList(ctx, args[0], 0)
		if err != nil {
			return err
		}
	}

	if jsonOutput() {
		views := make([]itemView, len(items))
		for i, item := range items {
			views[i] = newItemView(item)
		}
		return printJSON(views)
	}

	w := newTable(os.Stdout)
	fmt.Fprintln(w, "PARTITION\tKIND\tKEY\tHEALTH\tSTATUS\tREPLICAS")
	for _, item := range items {
		info := item.PartitionInformation()
		replicas := "-"
		switch it := item.(type) {
		case fabric.StatefulServicePartition:
			replicas = fmt.Sprintf("%d/%d", it.MinReplicaSetSize, it.TargetReplicaSetSize)
		case fabric.StatelessServicePartition:
			replicas = fmt.Sprint(it.InstanceCount)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			info.PartitionID(), info.Kind(), describeInfo(info), healthString(item.Health()), item.Status(), replicas)
	}
	return w.Flush()
}
