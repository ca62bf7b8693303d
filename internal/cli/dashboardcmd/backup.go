package dashboardcmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grafctl/grafctl/internal/backup"
	"github.com/grafctl/grafctl/internal/cli/shared"
	"github.com/grafctl/grafctl/internal/grafana"
	"github.com/grafctl/grafctl/internal/ui"
)

var (
	backupBucket   string
	backupPrefix   string
	backupRegion   string
	backupEndpoint string
	backupQuery    string
	backupTag      string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export all dashboards to an S3 bucket",
	Long: `Export every dashboard matching the filters and upload each document
to S3 under <prefix>/<uid>.json.

Bucket, prefix, region, and endpoint default to the backup section of the
global config. An endpoint override enables S3-compatible targets such as
MinIO or LocalStack.

Examples:
  grafctl dashboard backup --bucket grafana-backups
  grafctl dashboard backup --bucket grafana-backups --tag prod
  grafctl dashboard backup --bucket local --endpoint http://localhost:4566`,
	RunE: runBackup,
}

func init() {
	backupCmd.Flags().StringVar(&backupBucket, "bucket", "", "Target S3 bucket")
	backupCmd.Flags().StringVar(&backupPrefix, "prefix", "", "Object key prefix")
	backupCmd.Flags().StringVar(&backupRegion, "region", "", "AWS region")
	backupCmd.Flags().StringVar(&backupEndpoint, "endpoint", "", "S3-compatible endpoint override")
	backupCmd.Flags().StringVarP(&backupQuery, "query", "q", "", "Only dashboards matching this title substring")
	backupCmd.Flags().StringVarP(&backupTag, "tag", "t", "", "Only dashboards with this tag")

	Cmd.AddCommand(backupCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
	client, _, err := shared.Client()
	if err != nil {
		return err
	}

	opts := resolveBackupOptions()
	uploader, err := backup.NewUploader(cmd.Context(), opts)
	if err != nil {
		return err
	}

	hits, err := client.SearchDashboards(cmd.Context(), grafana.SearchOptions{
		Query: backupQuery,
		Tag:   backupTag,
	})
	if err != nil {
		return err
	}

	if len(hits) == 0 {
		return fmt.Errorf("no dashboards matched the backup filters")
	}

	ui.Infof("Backing up %d dashboard(s) to s3://%s/%s", len(hits), opts.Bucket, opts.Prefix)

	failed := 0
	for _, hit := range hits {
		if err := backupOne(cmd, client, uploader, hit); err != nil {
			ui.Errorf("%s (%s): %v", hit.Title, hit.UID, err)
			failed++
			continue
		}
		ui.Step("%s (%s)", hit.Title, hit.UID)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d dashboard backups failed", failed, len(hits))
	}

	ui.Successf("Backup complete")
	return nil
}

func backupOne(cmd *cobra.Command, client *grafana.Client, uploader *backup.Uploader, hit grafana.DashboardHit) error {
	dashboard, err := client.GetDashboard(cmd.Context(), hit.UID)
	if err != nil {
		return err
	}

	document, err := json.MarshalIndent(dashboard.Dashboard, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dashboard: %w", err)
	}

	return uploader.PutDashboard(cmd.Context(), hit.UID, document)
}

// resolveBackupOptions merges flags over the global config backup section
func resolveBackupOptions() backup.Options {
	opts := backup.Options{
		Bucket:   backupBucket,
		Prefix:   backupPrefix,
		Region:   backupRegion,
		Endpoint: backupEndpoint,
	}

	if shared.Resolver != nil && shared.Resolver.GlobalConfig != nil {
		cfg := shared.Resolver.GlobalConfig.Backup
		if opts.Bucket == "" {
			opts.Bucket = cfg.Bucket
		}
		if opts.Prefix == "" {
			opts.Prefix = cfg.Prefix
		}
		if opts.Region == "" {
			opts.Region = cfg.Region
		}
		if opts.Endpoint == "" {
			opts.Endpoint = cfg.Endpoint
		}
	}

	return opts
}
