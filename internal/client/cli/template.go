package cli

import (
	"fmt"
	"io"
	"text/template"

	"github.com/iudanet/patinfly/internal/models"
)

var templateFuncs = template.FuncMap{
	"yesno": func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	},
	"km": func(meters int) string {
		return fmt.Sprintf("%.1f km", float64(meters)/1000)
	},
	"date": func(s *string) string {
		if s == nil || *s == "" {
			return "never"
		}
		return *s
	},
	"planName": func(p models.Plan, lang string) string {
		return p.DisplayName(lang)
	},
	"planDescription": func(p models.Plan, lang string) string {
		for _, d := range p.Description {
			if d.Language == lang {
				return d.Text
			}
		}
		if len(p.Description) > 0 {
			return p.Description[0].Text
		}
		return ""
	},
}

var templates = template.Must(template.New("cli").Funcs(templateFuncs).Parse(`
{{- define "bike" }}
=== Bike Details ===

Name:        {{ .Name }}
ID:          {{ .ID }}
Category:    {{ .BikeType.Name }}
Battery:     {{ .BatteryLevel }}%
Distance:    {{ km .Meters }}
Active:      {{ yesno .IsActive }}
Rented:      {{ yesno .IsRented }}
Maintenance: {{ yesno .InMaintenance }} (last: {{ date .LastMaintenanceDate }})
Created:     {{ .CreationDate }}
{{ end }}

{{- define "bikes" }}
=== Bikes ===
{{ if eq (len .) 0 }}
No bikes found.
{{ else }}
Found {{ len . }} bike(s):
{{ range . }}
- {{ .Name }} [{{ .BikeType.Name }}]
   ID:      {{ .ID }}
   Battery: {{ .BatteryLevel }}%
   Status:  {{ if .IsRented }}rented{{ else if .InMaintenance }}maintenance{{ else if .IsActive }}available{{ else }}reserved{{ end }}
{{- end }}

Use 'patinfly show <id>' to view full details.
{{ end }}
{{- end }}

{{- define "status" }}
=== Server Status ===

{{ if .IsError -}}
Status:  unavailable
{{- else -}}
Name:    {{ .Name }}
Version: {{ .Version }}
Build:   {{ .Build }}
Updated: {{ .Update }}
{{- end }}
{{ end }}

{{- define "profile" }}
=== Profile ===

Name:            {{ .User.Name }}
Email:           {{ .User.Email }}
Member since:    {{ .User.CreationDate }}
Last connection: {{ .User.LastConnection }}

Rental history:
{{- if eq (len .History) 0 }}
  (empty)
{{- else }}
{{- range .History }}
  - {{ .Name }} ({{ .ID }}), {{ km .Meters }}
{{- end }}
{{- end }}
{{ end }}

{{- define "plan" }}
=== Pricing Plans v{{ .Plan.Version }} ===

Updated: {{ .Plan.LastUpdated }}
TTL:     {{ .Plan.TTL }}s
{{ range $p := .Plan.Data.Plans }}
- {{ planName $p $.Lang }} ({{ $p.PlanID }})
   {{ planDescription $p $.Lang }}
   Price:   {{ printf "%.2f" $p.Price }} {{ $p.Currency }}{{ if $p.IsTaxable }} + tax{{ end }}
{{- range $p.PerMinPricing }}
   Per min: from {{ .Start }}: {{ printf "%.2f" .Rate }} {{ $p.Currency }} / {{ .Interval }} min
{{- end }}
{{- range $p.PerKmPricing }}
   Per km:  from {{ .Start }}: {{ printf "%.2f" .Rate }} {{ $p.Currency }} / {{ .Interval }} km
{{- end }}
{{ end }}
{{- end }}

{{- define "version" -}}
patinfly {{ .Version }} (built {{ .Date }}, commit {{ .Commit }})
{{ end }}

{{- define "usage" }}
Patinfly Client

Usage:
  patinfly [OPTIONS] COMMAND [ARGS]

Options:
  --config PATH                Path to YAML config file
  --env-file PATH              Path to .env file (default: ./.env if present)
  --server URL                 Server URL (default: http://localhost:8080)
  --cache-driver DRIVER        Local cache: bolt, sqlite or redis (default: bolt)
  --db PATH                    Path to local cache database
  --fixtures DIR               Directory with fixture JSON (default: embedded)
  --log-level LEVEL            debug, info, warn or error (default: info)
  --email EMAIL                Email for login
  --password PASSWORD          Password (not recommended, use env var or file)
  --password-file PATH         Path to file containing password
  --lang LANG                  Language for pricing plan names (default: en)

Password Priority (highest to lowest):
  1. PATINFLY_PASSWORD environment variable
  2. --password-file (file path)
  3. --password (command line)
  4. Interactive prompt (fallback)

Commands:
  status                  Show server status
  list [category]         List bikes, optionally by category
  show <id>               Show bike details
  categories              List bike categories
  reserve <id>            Reserve a bike
  rent <id>               Rent a bike
  release <id>            Return a rented bike
  login                   Check credentials
  profile [hide-id...]    Show current user and rental history
  plan [version]          Show pricing plans
  version                 Show version information
  help                    Show this help

Examples:
  patinfly list electric
  patinfly --email laia.puig@patinfly.com login
  patinfly rent c9a0a1d2-3b4c-4d5e-8f60-718293a4b5c6
{{ end }}
`))

// render выполняет именованный шаблон в w
func render(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}
