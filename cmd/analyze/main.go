// Command analyze runs a one-shot analysis of a draft email and prints the
// result as JSON. The body is read from -body, -body-file, or stdin.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ignite/outreach-engine/internal/analyzer"
	"github.com/ignite/outreach-engine/internal/config"
	"github.com/ignite/outreach-engine/internal/optimizer"
	"github.com/ignite/outreach-engine/internal/pkg/logger"
	"github.com/ignite/outreach-engine/internal/sanitize"
)

func main() {
	var (
		subject    = flag.String("subject", "", "draft subject line")
		body       = flag.String("body", "", "draft body text (reads stdin when empty and -body-file is unset)")
		bodyFile   = flag.String("body-file", "", "path to a file holding the draft body")
		name       = flag.String("recipient-name", "", "optional recipient name")
		company    = flag.String("recipient-company", "", "optional recipient company")
		optimize   = flag.Bool("optimize", false, "also run the safe optimizer (uses Bedrock when configured)")
		configPath = flag.String("config", "config/config.yaml", "path to config file")
		pretty     = flag.Bool("pretty", true, "indent JSON output")
	)
	flag.Parse()

	logger.SetLevel(logger.ERROR)

	cfg, err := config.LoadFromEnv(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	draftBody, err := readBody(*body, *bodyFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read body: %v\n", err)
		os.Exit(1)
	}

	var recipient *analyzer.RecipientData
	if *name != "" || *company != "" {
		recipient = &analyzer.RecipientData{Name: *name, Company: *company}
	}

	subjectRes := sanitize.ContentWithLimit(*subject, cfg.Engine.MaxContentLength)
	bodyRes := sanitize.ContentWithLimit(draftBody, cfg.Engine.MaxContentLength)

	var output interface{}
	if *optimize {
		var model optimizer.ModelInvoker
		if cfg.Bedrock.Enabled {
			client, err := optimizer.NewBedrockClient(context.Background(), cfg.Bedrock)
			if err != nil {
				fmt.Fprintf(os.Stderr, "bedrock unavailable, rule-based only: %v\n", err)
			} else {
				model = client
			}
		}
		output = optimizer.New(cfg, model).SafeOptimize(context.Background(), subjectRes.Sanitized, bodyRes.Sanitized, recipient)
	} else {
		// An invalid draft gets a zeroed analysis; the sanitizer verdicts
		// carry the reasons.
		var analysis analyzer.ComprehensiveAnalysis
		if subjectRes.IsValid && bodyRes.IsValid {
			analysis = analyzer.AnalyzeComprehensive(subjectRes.Sanitized, bodyRes.Sanitized, recipient)
		}
		output = struct {
			Analysis analyzer.ComprehensiveAnalysis `json:"analysis"`
			Subject  sanitize.Result                `json:"subjectValidation"`
			Body     sanitize.Result                `json:"bodyValidation"`
		}{analysis, subjectRes, bodyRes}
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(output); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode output: %v\n", err)
		os.Exit(1)
	}
}

func readBody(inline, path string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
