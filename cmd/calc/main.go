package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/internal/config"
)

const help = `
With no expression, calc reads expressions from standard input, one per line.

Operators: + - * / % ^
Functions: sin, cos, tan, ln, log, abs, fac
For trig functions prepend 'a' for arcus and append 'd' for degree.
Use 'pi' for an accurate value of the constant.
`

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var (
		postfix, debug           bool
		inname, cfgname, set, mf string
	)
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: calc [flags] [expression]\n\n")
		fs.PrintDefaults()
		fmt.Fprint(fs.Output(), help)
	}
	fs.BoolVar(&postfix, "p", false, "print expressions in postfix notation instead of evaluating them")
	fs.BoolVar(&debug, "debug", false, "enable debug logging")
	fs.StringVar(&inname, "in", "", "read expressions from a file instead of standard input")
	fs.StringVar(&cfgname, "config", "", "path to a YAML configuration file")
	fs.StringVar(&set, "set", "", "comma-separated key=value settings overriding the configuration file")
	fs.StringVar(&mf, "metrics", "", "write evaluation metrics to this file on exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(cfgname)
	if err != nil {
		return err
	}
	if err := cfg.Apply(set); err != nil {
		return err
	}
	cfg.Postfix = cfg.Postfix || postfix
	cfg.Debug = cfg.Debug || debug

	zapCfg := zap.NewProductionConfig()
	if cfg.Debug {
		// V(2) in logr is level -2 in zap, below zap's own debug level.
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-2))
	}
	zl, err := zapCfg.Build()
	if err != nil {
		return err
	}
	defer zl.Sync()
	logger := zapr.NewLogger(zl).WithValues("session", uuid.NewString())

	reg := prometheus.NewRegistry()
	ctx := calc.NewContext(calc.WithLogger(logger), calc.WithMetrics(calc.NewMetrics(reg)))
	s := session{ctx: ctx, cfg: cfg, out: stdout, log: logger}

	switch {
	case fs.NArg() > 0:
		s.do(strings.Join(fs.Args(), " "))
	case inname != "":
		f, err := os.Open(inname)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := s.loop(f, false); err != nil {
			return err
		}
	default:
		if err := s.loop(stdin, true); err != nil {
			return err
		}
	}

	if mf != "" {
		if err := prometheus.WriteToTextfile(mf, reg); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}

// session evaluates lines of input.
type session struct {
	ctx *calc.Context
	cfg config.Config
	out io.Writer
	log logr.Logger
}

// loop handles each line of in until EOF or a quit line. When interactive, it
// greets and prompts.
func (s *session) loop(in io.Reader, interactive bool) error {
	s.log.V(1).Info("reading expressions", "interactive", interactive)
	if interactive {
		fmt.Fprintln(s.out, "calc")
		if len(s.cfg.Quit) > 0 {
			fmt.Fprintf(s.out, "Input %s to quit\n", s.cfg.Quit[0])
		}
	}
	sc := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(s.out, s.cfg.Prompt)
		}
		if !sc.Scan() {
			if interactive {
				fmt.Fprintln(s.out)
			}
			return sc.Err()
		}
		line := strings.TrimSuffix(sc.Text(), "\r")
		if s.cfg.Quits(line) {
			return nil
		}
		s.do(line)
	}
}

// do evaluates or converts a single expression and prints the outcome.
// Errors in the expression are reported, not returned.
func (s *session) do(src string) {
	if s.cfg.Postfix {
		p, err := s.ctx.Convert(src)
		if err != nil {
			report(s.out, src, err)
			return
		}
		if p.Len() > 0 {
			fmt.Fprintln(s.out, p)
		}
		p.Release()
		return
	}
	r, err := s.ctx.Eval(src)
	if err != nil {
		report(s.out, src, err)
		return
	}
	fmt.Fprintln(s.out, calc.FormatNumber(r))
}

// report prints the input with a caret under the column of an error, followed
// by the error's class and message.
func report(w io.Writer, src string, err error) {
	var e *calc.Error
	if !errors.As(err, &e) {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "%s\n%s^\n%s: %s\n", src, strings.Repeat(" ", e.Col), e.Kind.Class(), e.Kind.Message())
}
