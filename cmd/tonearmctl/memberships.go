package main

import (
	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

func init() {
	membershipsCmd := &cobra.Command{Use: "memberships", Short: "Membership operations"}

	var status, userID string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List memberships",
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(func(c *resty.Client) (*resty.Response, error) {
				r := c.R()
				if status != "" {
					r.SetQueryParam("status", status)
				}
				if userID != "" {
					r.SetQueryParam("user_id", userID)
				}
				return r.Get("/v1/memberships")
			})
		},
	}
	listCmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (active, inactive, expired)")
	listCmd.Flags().StringVarP(&userID, "user", "u", "", "Filter by user ID")
	membershipsCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get MEMBERSHIP_ID",
		Short: "Get membership by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(func(c *resty.Client) (*resty.Response, error) {
				return c.R().Get("/v1/memberships/" + args[0])
			})
		},
	}
	membershipsCmd.AddCommand(getCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show membership statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(func(c *resty.Client) (*resty.Response, error) {
				return c.R().Get("/v1/memberships/stats")
			})
		},
	}
	membershipsCmd.AddCommand(statsCmd)

	rootCmd.AddCommand(membershipsCmd)
}
