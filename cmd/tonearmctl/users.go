package main

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

func init() {
	usersCmd := &cobra.Command{Use: "users", Short: "User operations"}

	var query string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(func(c *resty.Client) (*resty.Response, error) {
				r := c.R()
				if query != "" {
					r.SetQueryParam("q", query)
				}
				return r.Get("/v1/users")
			})
		},
	}
	listCmd.Flags().StringVarP(&query, "query", "q", "", "Filter term over name and email")
	usersCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get user by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(func(c *resty.Client) (*resty.Response, error) {
				return c.R().Get("/v1/users/" + args[0])
			})
		},
	}
	usersCmd.AddCommand(getCmd)

	var name, email string
	var age int
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || email == "" {
				return fmt.Errorf("--name and --email required")
			}
			payload := map[string]interface{}{"name": name, "email": email}
			if cmd.Flags().Changed("age") {
				payload["age"] = age
			}
			return call(func(c *resty.Client) (*resty.Response, error) {
				return c.R().SetBody(payload).Post("/v1/users")
			})
		},
	}
	createCmd.Flags().StringVarP(&name, "name", "n", "", "Full name (required)")
	createCmd.Flags().StringVarP(&email, "email", "e", "", "Email (required)")
	createCmd.Flags().IntVar(&age, "age", 0, "Age")
	usersCmd.AddCommand(createCmd)

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete USER_ID",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete without --yes")
			}
			return call(func(c *resty.Client) (*resty.Response, error) {
				return c.R().Delete("/v1/users/" + args[0])
			})
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion")
	usersCmd.AddCommand(deleteCmd)

	balanceCmd := &cobra.Command{
		Use:   "balance USER_ID",
		Short: "Show a user's completed-transaction balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(func(c *resty.Client) (*resty.Response, error) {
				return c.R().Get("/v1/users/" + args[0] + "/balance")
			})
		},
	}
	usersCmd.AddCommand(balanceCmd)

	rootCmd.AddCommand(usersCmd)
}
