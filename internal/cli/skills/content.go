package skills

// GrafanaSkillContent contains the SKILL.md content for AI assistants
const GrafanaSkillContent = `---
name: grafana
description: Query Prometheus metrics, manage dashboards, and inspect alerts on a Grafana instance with the grafctl CLI. Use when investigating metrics, building or exporting dashboards, or checking alert state.
allowed-tools:
  - Bash(grafctl *)
---

# Grafana Operations

grafctl talks to the Grafana HTTP API with a service-account token. Profiles
live under ` + "`~/.grafctl/`" + `:
- ` + "`config.json`" + ` - default profile (grafana_url, api_token, datasources)
- ` + "`config-<env>.json`" + ` - per-environment profiles, selected with ` + "`GRAFANA_ENV`" + `
- ` + "`config.yaml`" + ` - global grafctl settings

## Setup

` + "```bash" + `
export GRAFANA_URL="http://grafana.example.com"
export GRAFANA_API_TOKEN="<service account token>"
grafctl datasources sync        # Fetch datasources, write ~/.grafctl/config.json

# Per-environment profiles
export GRAFANA_ENV=prod
grafctl datasources sync        # Writes config-prod.json
` + "```" + `

## Querying Metrics

` + "```bash" + `
grafctl datasources list
grafctl query "Prometheus 1" 'up'                          # Last hour
grafctl query "Prometheus 1" 'rate(http_requests_total[5m])' --range 24h
grafctl query "Prometheus 1" 'up' --start "2026-01-28 19:00:00" --end "2026-01-28 19:30:00"
grafctl query "Prometheus 1" 'up' --range 1h --step 60 --output simple
grafctl query "Prometheus 1" 'up' --output json            # Raw Prometheus response
` + "```" + `

Relative ranges accept ` + "`30s 5m 1h 24h 7d 2w`" + ` and ` + "`now-1h`" + ` forms.
Absolute times accept unix seconds, ` + "`YYYY-MM-DD HH:MM:SS`" + `, or RFC3339.

## Dashboards

` + "```bash" + `
grafctl dashboard list                           # All dashboards
grafctl dashboard search "API Gateway"           # Search by title
grafctl dashboard list --tag prod --starred      # Filter
grafctl dashboard get <uid>                      # Full JSON document
grafctl dashboard create --title "My Dashboard" --tag monitoring
grafctl dashboard export <uid> dashboard.json
grafctl dashboard import dashboard.json --folder-id 3
grafctl dashboard delete <uid>
grafctl dashboard permissions <uid>
grafctl dashboard backup --bucket my-backups     # Export all to S3
` + "```" + `

## Alerts

` + "```bash" + `
grafctl alert list                               # All alert rules
grafctl alert list --state alerting              # Currently firing
grafctl alert get <id>
grafctl alert pause <id>
grafctl alert unpause <id>
grafctl alert history --hours 24                 # State transitions
grafctl alert summary                            # Counts by state
` + "```" + `

## Companion Tools

` + "```bash" + `
grafctl doctor                  # Check curl, jq, npm, prom on PATH
grafctl doctor --install        # Install prom-cli via npm if missing
` + "```" + `

## Troubleshooting

- ` + "`profile not found`" + `: run ` + "`grafctl datasources sync`" + ` first.
- HTTP 401: the api_token in the profile expired; re-run sync with a fresh token.
- HTTP 403: the service account lacks the needed role (Viewer for queries,
  Editor for dashboard writes).
- ` + "`datasource not found`" + `: names are exact; run ` + "`grafctl datasources list`" + `.
- Empty query results: widen the range or verify with ` + "`--output json`" + `.
`
