package main

import (
	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

func init() {
	transactionsCmd := &cobra.Command{Use: "transactions", Short: "Transaction operations"}

	var status, userID, from, to string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(func(c *resty.Client) (*resty.Response, error) {
				r := c.R()
				for k, v := range map[string]string{"status": status, "user_id": userID, "from": from, "to": to} {
					if v != "" {
						r.SetQueryParam(k, v)
					}
				}
				return r.Get("/v1/transactions")
			})
		},
	}
	listCmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (pending, completed, cancelled)")
	listCmd.Flags().StringVarP(&userID, "user", "u", "", "Filter by user ID")
	listCmd.Flags().StringVar(&from, "from", "", "Lower bound on occurrence time (RFC 3339)")
	listCmd.Flags().StringVar(&to, "to", "", "Upper bound on occurrence time (RFC 3339)")
	transactionsCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get TRANSACTION_ID",
		Short: "Get transaction by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(func(c *resty.Client) (*resty.Response, error) {
				return c.R().Get("/v1/transactions/" + args[0])
			})
		},
	}
	transactionsCmd.AddCommand(getCmd)

	var newStatus string
	setStatusCmd := &cobra.Command{
		Use:   "set-status TRANSACTION_ID",
		Short: "Set a transaction's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(func(c *resty.Client) (*resty.Response, error) {
				return c.R().
					SetBody(map[string]string{"status": newStatus}).
					Patch("/v1/transactions/" + args[0] + "/status")
			})
		},
	}
	setStatusCmd.Flags().StringVarP(&newStatus, "status", "s", "", "New status (required)")
	_ = setStatusCmd.MarkFlagRequired("status")
	transactionsCmd.AddCommand(setStatusCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show transaction statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(func(c *resty.Client) (*resty.Response, error) {
				return c.R().Get("/v1/transactions/stats")
			})
		},
	}
	transactionsCmd.AddCommand(statsCmd)

	rootCmd.AddCommand(transactionsCmd)
}
