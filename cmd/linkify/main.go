// Command linkify reads text from stdin and prints it as hyperlink chunks,
// one per line:
//
//	[link] https://example.com/a
//	[text] see
//	[newline]
//
// Input in any charset chardet can recognize is converted to UTF-8 first.
//
// Environment:
//
//	LINKIFY_PROTOCOLS  comma-separated schemes treated as links (default http,https)
//	LINKIFY_CHARSET    charset of the input; detected when unset or unknown
//
// With LOG_LEVEL=debug the time spent decoding and parsing is logged on exit.
// With OTEL_ENABLED=true the same timings are exported as spans, see package
// telemetry for the variables involved.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/amp-labs/amp-toolkit/envutil"
	"github.com/amp-labs/amp-toolkit/hyperlink"
	"github.com/amp-labs/amp-toolkit/logger"
	"github.com/amp-labs/amp-toolkit/perf"
	"github.com/amp-labs/amp-toolkit/telemetry"
)

type config struct {
	protocols hyperlink.StaticProtocols
	charset   string
}

func loadConfig() config {
	return config{
		protocols: hyperlink.StaticProtocols(envutil.StringList("LINKIFY_PROTOCOLS",
			envutil.Default([]string(hyperlink.HTTPProtocols))).ValueOrElse(hyperlink.HTTPProtocols)),
		charset: envutil.String("LINKIFY_CHARSET").ValueOrElse(""),
	}
}

func main() {
	logger.ConfigureLogging("linkify", logger.WithOutput(os.Stderr))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := execute(ctx); err != nil {
		logger.Get(ctx).Error("linkify failed", "error", err)
		os.Exit(1) //nolint:gocritic
	}
}

func execute(ctx context.Context) error {
	otelConfig, err := telemetry.LoadConfigFromEnv("linkify", envutil.String("ENVIRONMENT").ValueOrElse("local"))
	if err != nil {
		return err
	}

	provider, shutdown, err := telemetry.Initialize(ctx, otelConfig)
	if err != nil {
		return err
	}

	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Get(ctx).Warn("telemetry shutdown failed", "error", err)
		}
	}()

	analyzer := perf.NewAnalyzer(perf.WithTracer(provider.Tracer("linkify")))

	return run(ctx, loadConfig(), analyzer, os.Stdin, os.Stdout)
}

func run(ctx context.Context, cfg config, analyzer *perf.Analyzer, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	defer func() {
		logger.Get(ctx).Debug("linkify timings", "stats", analyzer.Statistics())
	}()

	analyzer.EnsureStart(ctx, "decode")

	text, detected, err := decode(data, cfg.charset)
	if err != nil {
		analyzer.EnsureStop("decode")

		return err
	}

	analyzer.Stop("decode", "decode")
	logger.Get(ctx).Debug("input decoded", "charset", detected, "bytes", len(data))

	parser := hyperlink.NewParser(hyperlink.NewValidator(cfg.protocols))

	analyzer.EnsureStart(ctx, "parse")
	chunks := parser.Parse(text)
	analyzer.Stop("parse", "parse")

	for _, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := fmt.Fprintln(out, format(chunk)); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	return nil
}

func format(chunk hyperlink.Chunk) string {
	switch {
	case chunk.IsNewLine:
		return "[newline]"
	case chunk.IsHyperlink:
		return "[link] " + chunk.Text
	default:
		return fmt.Sprintf("[text] %q", chunk.Text)
	}
}
