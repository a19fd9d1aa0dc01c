package glgen

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/giongto35/gldispatch/pkg/logger"
	"github.com/giongto35/gldispatch/pkg/os"
)

type Config struct {
	// In is the XML registry.
	In string
	// ABI is the published offset list checked before writing.
	ABI string
	// Out is the module root the generated files are written under.
	Out    string
	Module string
	// UpdateABI appends new entry points to the ABI file after a
	// successful check.
	UpdateABI bool
}

type Generator struct {
	conf Config
	log  *logger.Logger
}

func New(conf Config, log *logger.Logger) *Generator {
	return &Generator{conf: conf, log: log.Extend(log.With().Str("m", "glgen"))}
}

// Run regenerates every output once and returns the paths it rewrote.
// Concurrent runs against the same output tree are serialized by a lock
// file in Out.
func (g *Generator) Run() ([]string, error) {
	reg, err := Load(g.conf.In)
	if err != nil {
		return nil, err
	}

	var published []Published
	if g.conf.ABI != "" {
		b, err := os.ReadFile(g.conf.ABI)
		switch {
		case errors.Is(err, os.ErrNotExist):
			g.log.Warn().Msgf("no ABI file at %v, offsets are unchecked", g.conf.ABI)
		case err != nil:
			return nil, err
		default:
			if published, err = ReadABI(bytes.NewReader(b)); err != nil {
				return nil, err
			}
			if err = reg.CheckABI(published); err != nil {
				return nil, err
			}
		}
	}

	files, err := Render(reg, g.conf.Module)
	if err != nil {
		return nil, err
	}

	lock, err := os.NewFileLock(filepath.Join(g.conf.Out, ".glgen.lock"))
	if err != nil {
		return nil, err
	}
	if err = lock.Lock(); err != nil {
		return nil, err
	}
	defer func() { _ = lock.Unlock() }()

	var changed []string
	for _, f := range files {
		path := filepath.Join(g.conf.Out, f.Path)
		written, err := os.WriteFileChanged(path, f.Data)
		if err != nil {
			return changed, err
		}
		if written {
			changed = append(changed, path)
			g.log.Info().Msgf("wrote %v", path)
		}
	}

	if g.conf.UpdateABI && g.conf.ABI != "" && len(published) < len(reg.Functions()) {
		var buf bytes.Buffer
		if err = reg.WriteABI(&buf); err != nil {
			return changed, err
		}
		if _, err = os.WriteFileChanged(g.conf.ABI, buf.Bytes()); err != nil {
			return changed, err
		}
		g.log.Info().Msgf("published %d new entry points", len(reg.Functions())-len(published))
	}
	return changed, nil
}

// Watch runs the generator and again on every change of the registry
// until ctx is done. Failed runs are logged and do not stop the watch.
func (g *Generator) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// editors replace files on save, watch the directory instead
	if err = watcher.Add(filepath.Dir(g.conf.In)); err != nil {
		return err
	}

	g.runLogged()

	// saves come in bursts
	const settle = 100 * time.Millisecond
	var pending <-chan time.Time
	target := filepath.Clean(g.conf.In)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				pending = time.After(settle)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			g.log.Error().Err(err).Msg("watch")
		case <-pending:
			pending = nil
			g.runLogged()
		}
	}
}

func (g *Generator) runLogged() {
	changed, err := g.Run()
	if err != nil {
		g.log.Error().Err(err).Msg("generate")
		return
	}
	if len(changed) == 0 {
		g.log.Debug().Msg("up to date")
	}
}
