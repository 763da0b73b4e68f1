//
// Tinymark Markdown Processor
// Available at http://github.com/tinymark/tinymark
//
// Copyright © The Tinymark Authors.
// Distributed under the Simplified BSD License.
// See LICENSE for details.
//

//
//
// Front-end for command-line use
//
//

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/tinymark/tinymark"
	"github.com/tinymark/tinymark/internal/config"
	"github.com/tinymark/tinymark/internal/logger"
	"github.com/tinymark/tinymark/internal/server"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type output int

const (
	outputHTML output = iota
	outputDump
	outputJSON
	outputTokens
)

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// parse command-line options
	var (
		configPath string
		page       bool
		xhtml      bool
		headerIDs  bool
		toc        bool
		safelink   bool
		basic      bool
		css        string
		title      string
		dump       bool
		asJSON     bool
		tokens     bool
		serve      string
		debug      bool
	)

	flags := pflag.NewFlagSet("tinymark", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&configPath, "config", "c", "", "Configuration file (.toml, .yaml or .yml)")
	flags.BoolVar(&page, "page", false, "Generate a standalone HTML page")
	flags.BoolVar(&xhtml, "xhtml", false, "Use XHTML-style tags in HTML output")
	flags.BoolVar(&headerIDs, "header-ids", true, "Give every heading an id attribute")
	flags.BoolVar(&toc, "toc", false, "Generate a table of contents (implies --header-ids)")
	flags.BoolVar(&safelink, "safelink", true, "Only link to trusted protocols")
	flags.BoolVar(&basic, "basic", false, "Disable tables, strikethrough, images and horizontal rules")
	flags.StringVar(&css, "css", "", "Link to a CSS stylesheet (implies --page)")
	flags.StringVar(&title, "title", "", "Page title (defaults to the first heading)")
	flags.BoolVar(&dump, "ast", false, "Print the syntax tree instead of HTML")
	flags.BoolVar(&asJSON, "json", false, "Print the parse result as JSON instead of HTML")
	flags.BoolVar(&tokens, "tokens", false, "Print the scanned tokens as JSON instead of HTML")
	flags.StringVar(&serve, "serve", "", "Serve the HTTP API on this address instead of converting input")
	flags.BoolVarP(&debug, "debug", "d", false, "Trace scanning and parsing")
	flags.Usage = func() {
		fmt.Fprint(stderr, "Tinymark Markdown Processor v"+tinymark.Version+
			"\nAvailable at http://github.com/tinymark/tinymark\n\n"+
			"Copyright © The Tinymark Authors\n"+
			"Distributed under the Simplified BSD License\n"+
			"See LICENSE for details\n\n"+
			"Usage:\n"+
			"  tinymark [options] [inputfile [outputfile]]\n\n"+
			"Options:\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	// flags given on the command line win over the file
	changed := flags.Changed
	if changed("page") || css != "" {
		cfg.HTML.CompletePage = page || css != ""
	}
	if changed("xhtml") {
		cfg.HTML.XHTML = xhtml
	}
	if changed("header-ids") {
		cfg.HTML.HeaderIDs = headerIDs
	}
	if changed("toc") {
		cfg.HTML.TOC = toc
	}
	if changed("safelink") {
		cfg.HTML.Safelink = safelink
	}
	if css != "" {
		cfg.HTML.CSS = css
	}
	if title != "" {
		cfg.HTML.Title = title
	}
	if basic {
		cfg.Extensions = config.Extensions{}
	}
	if debug {
		cfg.LogLevel = "debug"
	}

	l := logger.New(stderr, cfg.Level())

	if serve != "" {
		cfg.Server.Addr = serve
		if err := listen(context.Background(), cfg, l); err != nil {
			l.Error("server error", "error", err)
			return 1
		}
		return 0
	}

	rest := flags.Args()
	if len(rest) > 2 {
		flags.Usage()
		return 2
	}

	// read the input
	var input []byte
	if len(rest) == 0 {
		input, err = io.ReadAll(stdin)
	} else {
		input, err = os.ReadFile(rest[0])
	}
	if err != nil {
		l.Error("failed to read input", "error", err)
		return 1
	}

	mode := outputHTML
	switch {
	case tokens:
		mode = outputTokens
	case asJSON:
		mode = outputJSON
	case dump:
		mode = outputDump
	}

	out, err := convert(string(input), cfg, l, mode)
	if err != nil {
		l.Error("conversion failed", "error", err)
		return 1
	}

	// output the result
	if len(rest) == 2 {
		if err := os.WriteFile(rest[1], out, 0644); err != nil {
			l.Error("failed to write output", "file", rest[1], "error", err)
			return 1
		}
		return 0
	}
	if _, err := stdout.Write(out); err != nil {
		l.Error("failed to write output", "error", err)
		return 1
	}
	return 0
}

// loadConfig reads the named file, or the default file when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		name = config.DefaultPath()
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, fmt.Errorf("config path %s: %w", name, err)
	}
	return config.Load(config.Dir(string(filepath.Separator)), filepath.ToSlash(abs))
}

func convert(input string, cfg *config.Config, l *log.Logger, mode output) ([]byte, error) {
	opts := cfg.Options(logger.Tracer(l))

	if mode == outputTokens {
		data, err := tinymark.TokensJSON(tinymark.NewScanner(input, opts).Tokenize())
		if err != nil {
			return nil, fmt.Errorf("encode tokens: %w", err)
		}
		return append(data, '\n'), nil
	}

	result := tinymark.ParseOptions(input, opts)
	for _, perr := range result.Errors {
		l.Warn("parse error", "line", perr.Position.Line, "column", perr.Position.Column, "error", perr.Message)
	}

	switch mode {
	case outputDump:
		return []byte(tinymark.Dump(result.AST)), nil
	case outputJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode parse result: %w", err)
		}
		return append(data, '\n'), nil
	}
	return []byte(cfg.Renderer().Render(result.AST)), nil
}

// listen serves the HTTP API until ctx is done or the process is
// interrupted, then shuts the server down gracefully.
func listen(ctx context.Context, cfg *config.Config, l *log.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.NewServer(cfg, l),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	done := make(chan struct{})
	defer close(done)
	shutdown := make(chan error, 1)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
			return
		}
		l.Info("shutting down...")

		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		shutdown <- httpServer.Shutdown(sctx)
	}()

	l.Info("starting tinymark", "addr", cfg.Server.Addr)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-shutdown
}
