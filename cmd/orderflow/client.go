package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"orderflow/internal/client"
	"orderflow/internal/workflow"
)

func newRunner(serverURL string, timeout time.Duration) *workflow.Runner {
	c := client.New(serverURL, timeout)
	return workflow.NewRunner(c, func(msg string) { fmt.Println(msg) })
}

func printSummary(r *workflow.Runner) {
	fmt.Println()
	snap := r.Tracker().Snapshot()
	for _, s := range workflow.AllStages {
		fmt.Printf("  %-8s %s\n", s, snap[s])
	}

	receipt := r.Receipt()
	if receipt.Stage == "" {
		return
	}
	data, err := json.MarshalIndent(receipt, "", "  ")
	if err != nil {
		return
	}
	fmt.Printf("\nReceipt:\n%s\n", data)
}

func addClientFlags(cmd *cobra.Command) {
	cmd.Flags().String("server", "http://localhost:8080", "base URL of the orderflow server")
	cmd.Flags().Duration("timeout", 30*time.Second, "overall client timeout per stage call")
}

func clientFlags(cmd *cobra.Command) (string, time.Duration) {
	server, _ := cmd.Flags().GetString("server")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	return server, timeout
}

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search a restaurant and show its menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			server, timeout := clientFlags(cmd)
			name, _ := cmd.Flags().GetString("name")

			r := newRunner(server, timeout)
			rest, err := r.Search(cmd.Context(), name)
			if err != nil {
				printSummary(r)
				return err
			}
			for _, m := range rest.Menu {
				fmt.Printf("  %s - $%v\n", m.Item, m.Price)
			}
			printSummary(r)
			return nil
		},
	}
	addClientFlags(cmd)
	cmd.Flags().String("name", "", "restaurant name")
	return cmd
}

func orderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Run the chained flow: order, payment, delivery",
		RunE: func(cmd *cobra.Command, args []string) error {
			server, timeout := clientFlags(cmd)
			restaurant, _ := cmd.Flags().GetString("restaurant")
			item, _ := cmd.Flags().GetString("item")
			forceFail, _ := cmd.Flags().GetBool("force-fail")

			r := newRunner(server, timeout)
			if _, err := r.Search(cmd.Context(), restaurant); err != nil {
				printSummary(r)
				return err
			}
			_, err := r.Run(cmd.Context(), restaurant, item, forceFail)
			printSummary(r)
			return err
		},
	}
	addClientFlags(cmd)
	cmd.Flags().String("restaurant", "", "restaurant name")
	cmd.Flags().String("item", "", "menu item to order")
	cmd.Flags().Bool("force-fail", false, "force the payment to decline")
	return cmd
}

func payCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Re-invoke the payment stage for a known order",
		RunE: func(cmd *cobra.Command, args []string) error {
			server, timeout := clientFlags(cmd)
			orderID, _ := cmd.Flags().GetString("order-id")
			amount, _ := cmd.Flags().GetFloat64("amount")
			forceFail, _ := cmd.Flags().GetBool("force-fail")

			r := newRunner(server, timeout)
			_, err := r.Pay(cmd.Context(), orderID, amount, forceFail)
			printSummary(r)
			return err
		},
	}
	addClientFlags(cmd)
	cmd.Flags().String("order-id", "", "order identifier from a previous run")
	cmd.Flags().Float64("amount", 0, "amount from the order record")
	cmd.Flags().Bool("force-fail", false, "force the payment to decline")
	return cmd
}

func deliverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deliver",
		Short: "Re-invoke the delivery confirmation for a known order",
		RunE: func(cmd *cobra.Command, args []string) error {
			server, timeout := clientFlags(cmd)
			orderID, _ := cmd.Flags().GetString("order-id")

			r := newRunner(server, timeout)
			_, err := r.Deliver(cmd.Context(), orderID)
			printSummary(r)
			return err
		},
	}
	addClientFlags(cmd)
	cmd.Flags().String("order-id", "", "order identifier from a previous run")
	return cmd
}
