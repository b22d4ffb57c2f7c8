package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/amazon-ion/ion-go/ion"
	json "github.com/goccy/go-json"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	ku "github.com/reoring/kontrolluppgift"
	"github.com/reoring/kontrolluppgift/forms"
	"github.com/reoring/kontrolluppgift/internal/config"
	"github.com/reoring/kontrolluppgift/xsdimport"
)

func runValidate(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	if cmd.Args().Len() == 0 {
		return errors.New("no files to validate")
	}
	var failed error
	for _, path := range cmd.Args().Slice() {
		opt := env.parseOpt(path)
		if cmd.Bool("strict") {
			opt.Strictness.OnDuplicateField = ku.Error
		}
		doc, err := env.decodeFile(ctx, path, opt)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			env.log.Error("Invalid document", zap.String("file", path), zap.Error(err))
			failed = multierr.Append(failed, fmt.Errorf("%s: %w", path, err))
			continue
		}
		env.log.Debug("Decoded", zap.String("file", path), zap.Stringer("document", doc))
		fmt.Fprintf(env.out, "%s: %d entries\n", path, len(doc.Entries))
	}
	return failed
}

func runFormat(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	src := cmd.Args().Get(0)
	if src == "" {
		return errors.New("no input source has been specified")
	}
	doc, err := env.decodeFile(ctx, src, env.parseOpt(src))
	if err != nil {
		return err
	}
	// encode fully before touching the destination, it may be the source
	var buf bytes.Buffer
	if err := env.encode(ctx, &buf, doc); err != nil {
		return err
	}
	return env.write(cmd.Args().Get(1), buf.Bytes())
}

func runDump(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	src := cmd.Args().Get(0)
	if src == "" {
		return errors.New("no input source has been specified")
	}
	marshal, err := dumper(cmd.String("format"))
	if err != nil {
		return err
	}
	doc, err := env.decodeFile(ctx, src, env.parseOpt(src))
	if err != nil {
		return err
	}
	data, err := marshal(doc.AsMap())
	if err != nil {
		return fmt.Errorf("unable to dump %s: %w", src, err)
	}
	return env.write(cmd.String("out"), data)
}

func dumper(format string) (func(any) ([]byte, error), error) {
	switch strings.ToLower(format) {
	case "json":
		return func(v any) ([]byte, error) {
			b, err := json.MarshalIndent(v, "", "  ")
			return append(b, '\n'), err
		}, nil
	case "yaml":
		return yaml.Marshal, nil
	case "ion":
		return func(v any) ([]byte, error) {
			b, err := ion.MarshalText(v)
			return append(b, '\n'), err
		}, nil
	default:
		return nil, fmt.Errorf("unknown dump format %q", format)
	}
}

func runIngest(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	if cmd.Args().Len() == 0 {
		return errors.New("no schema documents have been specified")
	}
	cat, diag, err := xsdimport.ImportFiles(xsdimport.Options{
		Logger:       env.log,
		StrictOccurs: cmd.Bool("strict-occurs"),
	}, cmd.Args().Slice()...)
	if err != nil {
		return err
	}
	env.log.Debug("Schema ingested",
		zap.Int("records", len(cat.RecordNames())),
		zap.Int("scalars", len(cat.ScalarNames())),
		zap.Int("warnings", len(diag.Warnings())))

	if cmd.Bool("check") {
		return checkForms(env, cat)
	}

	var data []byte
	switch f := strings.ToLower(cmd.String("format")); f {
	case "json":
		data, err = cat.JSON()
	case "yaml":
		data, err = cat.YAML()
	case "go":
		data, err = cat.GoSource(cmd.String("package"))
	default:
		err = fmt.Errorf("unknown output format %q", f)
	}
	if err != nil {
		return err
	}
	return env.write(cmd.String("out"), data)
}

// checkForms reports where the built-in form tables disagree with the
// ingested records of the same name.
func checkForms(env *localEnv, cat *xsdimport.Catalog) error {
	schemas := forms.Schemas()
	var diffs int
	for _, name := range cat.RecordNames() {
		s, ok := schemas[name]
		if !ok {
			continue
		}
		for _, d := range cat.Diff(s) {
			fmt.Fprintln(env.out, d)
			diffs++
		}
	}
	if diffs > 0 {
		return fmt.Errorf("%d differences between built-in forms and schema", diffs)
	}
	fmt.Fprintln(env.out, "no differences")
	return nil
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	var (
		data []byte
		err  error
	)
	if cmd.Bool("default") {
		data = config.Default()
	} else if data, err = yaml.Marshal(env.cfg); err != nil {
		return fmt.Errorf("unable to marshal configuration: %w", err)
	}
	return env.write(cmd.Args().Get(0), data)
}

// write stores data in the named file, or on the command output when name
// is empty.
func (e *localEnv) write(name string, data []byte) error {
	if name == "" {
		_, err := e.out.Write(data)
		return err
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("unable to write '%s': %w", name, err)
	}
	e.log.Info("Written", zap.String("file", name))
	return nil
}
