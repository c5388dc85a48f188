package main

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

func init() {
	artistsCmd := &cobra.Command{Use: "artists", Short: "Artist operations"}

	var query, genre string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List artists",
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(func(c *resty.Client) (*resty.Response, error) {
				r := c.R()
				if query != "" {
					r.SetQueryParam("q", query)
				}
				if genre != "" {
					r.SetQueryParam("genre", genre)
				}
				return r.Get("/v1/artists")
			})
		},
	}
	listCmd.Flags().StringVarP(&query, "query", "q", "", "Filter term over name and bio")
	listCmd.Flags().StringVarP(&genre, "genre", "g", "", "Filter by genre")
	artistsCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get ARTIST_ID",
		Short: "Get artist by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(func(c *resty.Client) (*resty.Response, error) {
				return c.R().Get("/v1/artists/" + args[0])
			})
		},
	}
	artistsCmd.AddCommand(getCmd)

	var name, bio, g, photo string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an artist",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name required")
			}
			payload := map[string]interface{}{"name": name, "bio": bio, "genre": g, "photo_url": photo}
			return call(func(c *resty.Client) (*resty.Response, error) {
				return c.R().SetBody(payload).Post("/v1/artists")
			})
		},
	}
	createCmd.Flags().StringVarP(&name, "name", "n", "", "Artist name (required)")
	createCmd.Flags().StringVarP(&bio, "bio", "b", "", "Biography")
	createCmd.Flags().StringVarP(&g, "genre", "g", "", "Genre")
	createCmd.Flags().StringVarP(&photo, "photo", "p", "", "Photo URL")
	artistsCmd.AddCommand(createCmd)

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete ARTIST_ID",
		Short: "Delete an artist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete without --yes")
			}
			return call(func(c *resty.Client) (*resty.Response, error) {
				return c.R().Delete("/v1/artists/" + args[0])
			})
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion")
	artistsCmd.AddCommand(deleteCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(func(c *resty.Client) (*resty.Response, error) {
				return c.R().Get("/v1/artists/stats")
			})
		},
	}
	artistsCmd.AddCommand(statsCmd)

	rootCmd.AddCommand(artistsCmd)
}
