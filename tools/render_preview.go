// Renders a fixture document through every registered template into
// resume-data/previews for visual inspection of the skins.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"resume-composer/internal/template"
	"resume-composer/internal/usecase"
)

const fixture = `<h1>Avery Martin</h1>
<p>Senior Backend Engineer</p>
<p>514-555-0133 avery.martin@example.com linkedin.com/in/averymartin</p>
<h2>Summary</h2>
<p>Backend engineer with ten years of experience building document pipelines and APIs.</p>
<h2>Experience</h2>
<p>Staff Engineer, Acme — led the rewrite of the ingestion service.</p>
<ul><li>Cut p99 latency by 40%</li><li>Mentored four engineers</li></ul>
<h2>Skills</h2>
<ul><li>Go</li><li>PostgreSQL</li><li>Kubernetes</li><li>HTML tooling</li></ul>
<h2>Education</h2>
<p>B.Sc. Computer Science, McGill University</p>`

func main() {
	outDir := filepath.Join("resume-data", "previews")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create out dir: %v\n", err)
		os.Exit(2)
	}

	registry := template.Catalog()
	processor := usecase.NewProcessor(nil, nil, registry, "en")

	for _, def := range registry.List() {
		res := processor.Compose(fixture, "en", def.ID)
		page := "<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><style>" +
			res.Rendered.Styles + "</style></head><body>" + res.Rendered.HTML + "</body></html>"
		out := filepath.Join(outDir, def.ID+".html")
		if err := os.WriteFile(out, []byte(page), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", out, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", out)
	}
}
