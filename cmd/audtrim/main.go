// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ik5/audtrim"
	"github.com/ik5/audtrim/formats/mp3"
	"github.com/ik5/audtrim/internal/cli"
	"github.com/ik5/audtrim/internal/config"
	"github.com/ik5/audtrim/internal/metrics"
)

// version is set via ldflags at build time
var version = "dev"

type Globals struct {
	Config   string           `help:"YAML configuration file" short:"c" type:"path"`
	LogLevel string           `help:"Logging level (debug, info, warn, error)" name:"log-level"`
	FFmpeg   string           `help:"Path to the ffmpeg binary used for MP3 encoding" name:"ffmpeg"`
	Metrics  string           `help:"Write Prometheus metrics to this .prom file when done" name:"metrics-file" type:"path"`
	Version  kong.VersionFlag `help:"Show version information"`
}

type CLI struct {
	Globals

	Trim TrimCmd `cmd:"" help:"Cut a time range out of an audio file and export it"`
	Info InfoCmd `cmd:"" help:"Show the duration and format of an audio file"`
}

// stdoutName as an output path writes the export to standard output.
const stdoutName = "-"

// app is what every command runs against.
type app struct {
	ctx     context.Context
	cfg     *config.Config
	logger  *slog.Logger
	printer *cli.Printer
	metrics *metrics.Metrics
	stdout  io.Writer
	stderr  io.Writer
}

func (a *app) session() *audtrim.Session {
	return audtrim.NewSession(
		audtrim.WithLogger(a.logger),
		audtrim.WithRecorder(a.metrics),
	)
}

func (a *app) load(s *audtrim.Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return s.Load(a.ctx, filepath.Base(path), f)
}

type InfoCmd struct {
	Input string `arg:"" help:"Input audio file" type:"existingfile"`
}

func (c *InfoCmd) Run(a *app) error {
	s := a.session()
	if err := a.load(s, c.Input); err != nil {
		return err
	}

	a.printer.Status(s.Status())
	return nil
}

type TrimCmd struct {
	Input      string  `arg:"" help:"Input audio file" type:"existingfile"`
	Start      float64 `help:"Start of the range to keep, in seconds" short:"s" required:""`
	End        float64 `help:"End of the range to keep, in seconds" short:"e" required:""`
	Output     string  `help:"Output file, - for stdout (default from config)" short:"o"`
	Format     string  `help:"Output format: mp3 or wav" short:"f"`
	Bitrate    int     `help:"MP3 bitrate in kbps" short:"b"`
	Layout     string  `help:"Channel layout fed to the encoder: interleaved or sequential"`
	Mono       bool    `help:"Downmix to mono before encoding"`
	SampleRate int     `help:"Resample to this rate before encoding" name:"sample-rate"`
}

// apply copies the flags that were set over the configured export section.
func (c *TrimCmd) apply(e *config.ExportConfig) error {
	if c.Format != "" {
		e.Format = strings.ToLower(c.Format)
	}
	if c.Bitrate != 0 {
		e.Bitrate = c.Bitrate
	}
	if c.Layout != "" {
		e.Layout = c.Layout
	}
	if c.Mono {
		e.Mono = true
	}
	if c.SampleRate != 0 {
		e.SampleRate = c.SampleRate
	}

	if c.Output != "" {
		e.Output = c.Output
	} else if e.Format == audtrim.FormatWAV && e.Output == mp3.DefaultFilename {
		e.Output = strings.TrimSuffix(e.Output, ".mp3") + ".wav"
	}

	return e.Validate()
}

func (c *TrimCmd) Run(a *app) error {
	export := a.cfg.Export
	if err := c.apply(&export); err != nil {
		return err
	}
	layout, err := mp3.ParseLayout(export.Layout)
	if err != nil {
		return err
	}

	s := a.session()
	if err := a.load(s, c.Input); err != nil {
		return err
	}
	if _, err := s.Trim(c.Start, c.End); err != nil {
		return err
	}

	opts := audtrim.ExportOptions{
		Format:      export.Format,
		BitrateKbps: export.Bitrate,
		Layout:      layout,
		Mono:        export.Mono,
		SampleRate:  export.SampleRate,
		FFmpegPath:  a.cfg.FFmpeg.Path,
	}

	if export.Output == stdoutName {
		n, err := s.Export(a.ctx, a.stdout, opts)
		if err != nil {
			return err
		}

		// stdout carries the audio, so the summary goes to stderr
		p := cli.NewPrinter(a.stderr, a.stderr)
		p.Status(s.Status())
		p.Success(fmt.Sprintf("Wrote %s to stdout", cli.FormatBytes(n)))
		return nil
	}

	out, err := os.Create(export.Output)
	if err != nil {
		return err
	}

	n, err := s.Export(a.ctx, out, opts)
	closeErr := out.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(export.Output)
		return err
	}

	a.printer.Status(s.Status())
	a.printer.Success(fmt.Sprintf("Wrote %s (%s)", export.Output, cli.FormatBytes(n)))

	return nil
}

// run parses args and executes the selected command. exit is called by
// --help and --version.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, exit func(int)) error {
	var grammar CLI

	parser, err := kong.New(&grammar,
		kong.Name("audtrim"),
		kong.Description("Cut a time range out of an audio file and export it as MP3 or WAV."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(grammar.Config)
	if err != nil {
		return err
	}
	if grammar.LogLevel != "" {
		cfg.Logging.Level = strings.ToLower(grammar.LogLevel)
	}
	if grammar.FFmpeg != "" {
		cfg.FFmpeg.Path = grammar.FFmpeg
	}
	if grammar.Metrics != "" {
		cfg.Metrics.Textfile = grammar.Metrics
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a := &app{
		ctx:     ctx,
		cfg:     cfg,
		logger:  cfg.Logging.Logger(stderr),
		printer: cli.NewPrinter(stdout, stderr),
		metrics: metrics.New(),
		stdout:  stdout,
		stderr:  stderr,
	}

	err = kctx.Run(a)

	// failed runs are worth recording too
	if path := cfg.Metrics.Textfile; path != "" {
		if werr := a.metrics.WriteTextfile(path); werr != nil {
			a.logger.Warn("writing metrics", "file", path, "error", werr)
		}
	}

	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.Exit); err != nil {
		cli.NewPrinter(os.Stdout, os.Stderr).Error(err.Error())
		stop()
		os.Exit(1)
	}
}
