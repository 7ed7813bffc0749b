package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	appgraphql "github.com/shashiranjanraj/platter/app/graphql"
	"github.com/shashiranjanraj/platter/app/routes"
	"github.com/shashiranjanraj/platter/internal/server"
	"github.com/shashiranjanraj/platter/pkg/router"
)

// platter serve runs the full application.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server, queue workers and scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.Start(ctx)
	},
}

// platter route:list prints all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := appgraphql.NewResolver()
		schema, err := appgraphql.BuildSchema(resolver)
		if err != nil {
			return err
		}

		r := router.New()
		routes.RegisterAPI(r, schema, resolver)

		infos := r.Routes()
		if len(infos) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
