package process

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/screengen/screengen/internal/config"
	"github.com/screengen/screengen/internal/diag"
	"github.com/screengen/screengen/internal/discover"
	"github.com/screengen/screengen/internal/emit"
)

// Batch runs generation over a directory, recursing when configured. Each
// directory is one round with its own discoverer and class-identity map.
func Batch(o *config.Options, log *charmlog.Logger) error {
	if o.Recursive {
		return batchRecursive(o.Dir, o, log)
	}
	return batchDir(o.Dir, o, log)
}

func batchRecursive(dir string, o *config.Options, log *charmlog.Logger) error {
	if err := batchDir(dir, o, log); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}
	for _, e := range entries {
		if !e.IsDir() || skipDir(e.Name()) {
			continue
		}
		if err := batchRecursive(filepath.Join(dir, e.Name()), o, log); err != nil {
			return err
		}
	}
	return nil
}

func batchDir(dir string, o *config.Options, log *charmlog.Logger) error {
	disc := discover.New(dir, o.Framework)
	sink := &diag.LogSink{Log: log}
	emitter := &emit.Emitter{
		Backend:   emit.DiskBackend{},
		Suffix:    o.Suffix,
		Framework: o.Framework,
		Log:       log,
	}
	p := New(disc, sink, emitter, log)
	if p.Run() {
		return fmt.Errorf("generation aborted in %s: screengen marker misuse", dir)
	}
	return nil
}

// skipDir filters directories no Go tool descends into.
func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") ||
		strings.HasPrefix(name, "_") ||
		name == "testdata" ||
		name == "vendor"
}
