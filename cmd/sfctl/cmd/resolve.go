package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	fabric "github.com/ozanturksever/go-fabric"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <service>",
	Short: "Resolve the partition of a service that owns a key",
	Long: `Resolve the partition of a service and print its endpoints.

Singleton services need no key. Ranged services take --key, named
partitions take --name.

Example:
  sfctl resolve fabric:/Shop/Web
  sfctl resolve fabric:/Shop/Orders --key 742
  sfctl resolve fabric:/Shop/Regions --name east -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().Int64("key", 0, "int64 partition key")
	resolveCmd.Flags().String("name", "", "partition name")
	resolveCmd.MarkFlagsMutuallyExclusive("key", "name")
}

func runResolve(cmd *cobra.Command, args []string) error {
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

	sm, err := c.ServiceManagementClient()
	if err != nil {
		return err
	}
	defer sm.Close()

	service := args[0]
	var p *fabric.ServicePartition
	switch {
	case cmd.Flags().Changed("name"):
		name, _ := cmd.Flags().GetString("name")
		p, err = sm.ResolveNamedPartition(ctx, service, name, 0)
	case cmd.Flags().Changed("key"):
		key, _ := cmd.Flags().GetInt64("key")
		p, err = sm.ResolveServicePartition(ctx, service, fabric.PartitionKeyTypeInt64, key, 0)
	default:
		p, err = sm.ResolveServicePartition(ctx, service, fabric.PartitionKeyTypeNone, 0, 0)
	}
	if err != nil {
		return err
	}

	if jsonOutput() {
		return printJSON(newPartitionView(p))
	}

	fmt.Printf("Service:   %s\n", p.ServiceName)
	fmt.Printf("Kind:      %s\n", p.Kind)
	if p.Info != nil {
		fmt.Printf("Partition: %s\n", p.Info.PartitionID())
		fmt.Printf("Key:       %s\n", describeInfo(p.Info))
	}
	fmt.Println()

	if len(p.Endpoints) == 0 {
		fmt.Println("No endpoints.")
		return nil
	}
	w := newTable(os.Stdout)
	fmt.Fprintln(w, "ROLE\tADDRESS")
	for _, ep := range p.Endpoints {
		fmt.Fprintf(w, "%s\t%s\n", roleString(ep.Role), ep.Address)
	}
	return w.Flush()
}
