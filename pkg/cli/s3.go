package cli

import (
	"fmt"

	"github.com/raywall/cloud-admin-toolkit/pkg/metrics"
	"github.com/spf13/cobra"
)

func (a *App) listBucketsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-buckets",
		Short: "Lista os buckets S3 da conta",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := a.objects.Buckets(cmd.Context())
			if err != nil {
				return err
			}
			a.record(metrics.EventBucketsTotal, len(names))
			if len(names) == 0 {
				fmt.Fprintln(a.stdout, "No S3 buckets found.")
			}
			for _, name := range names {
				if name == "" {
					name = "(no name)"
				}
				fmt.Fprintln(a.stdout, name)
			}
			fmt.Fprintf(a.stdout, "\nTotal: %d bucket(s)\n", len(names))
			return nil
		},
	}
}

func (a *App) listObjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-s3 <bucket>",
		Short: "Lista as chaves dos objetos de um bucket",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printObjects(cmd, args[0])
		},
	}
}

// runFallback: awsadm <bucket> [table]
func (a *App) runFallback(cmd *cobra.Command, args []string) error {
	if err := a.printObjects(cmd, args[0]); err != nil {
		return err
	}
	if len(args) > 1 {
		return a.printDescribe(cmd, args[1])
	}
	return nil
}

func (a *App) printObjects(cmd *cobra.Command, bucket string) error {
	count, err := a.objects.WalkObjects(cmd.Context(), bucket, func(key string) error {
		if key == "" {
			key = "(no key)"
		}
		_, err := fmt.Fprintln(a.stdout, key)
		return err
	})
	a.record(metrics.EventObjectsListed, count, "bucket:"+bucket)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "\nTotal: %d object(s)\n", count)
	return nil
}
