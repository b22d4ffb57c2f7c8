package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	ku "github.com/reoring/kontrolluppgift"
	"github.com/reoring/kontrolluppgift/document"
	"github.com/reoring/kontrolluppgift/internal/config"
)

type envKey struct{}

// localEnv keeps everything the commands need in a single place.
type localEnv struct {
	cfg      *config.Config
	log      *zap.Logger
	closeLog func() error
	dec, enc ku.XMLDriver
	codec    *document.Codec

	out, errOut io.Writer

	start      time.Time
	errHandled bool
}

func envFromContext(ctx context.Context) *localEnv {
	if env, ok := ctx.Value(envKey{}).(*localEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func contextWithEnv(ctx context.Context, out, errOut io.Writer) context.Context {
	return context.WithValue(ctx, envKey{}, &localEnv{
		log:    zap.NewNop(),
		codec:  document.DefaultCodec(),
		out:    out,
		errOut: errOut,
		start:  time.Now(),
	})
}

// parseOpt returns decoder options; non-fatal issues are logged as
// warnings.
func (e *localEnv) parseOpt(file string) ku.ParseOpt {
	opt := e.cfg.ParseOpt(e.log)
	opt.IssueSink = func(it ku.Issue) {
		e.log.Warn("Document issue", zap.String("file", file), zap.String("code", it.Code), zap.String("path", it.Path), zap.String("message", it.Message))
	}
	return opt
}

func (e *localEnv) decodeFile(ctx context.Context, path string, opt ku.ParseOpt) (*document.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open source: %w", err)
	}
	defer f.Close()
	return e.codec.DecodeSource(ctx, ku.EnforceSource(e.dec.NewReader(f), opt), opt)
}

// encode writes doc to w using the configured encode driver.
func (e *localEnv) encode(ctx context.Context, w io.Writer, doc *document.Document) error {
	opt := e.cfg.EncodeOpt(e.log)
	sink := e.enc.NewSink(w, opt)
	if err := e.codec.EncodeSink(ctx, sink, doc, opt); err != nil {
		return err
	}
	return sink.Flush()
}
