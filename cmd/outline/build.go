package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/milk9111/cosmosraiders/collision"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

type options struct {
	Sheet  string
	Out    string
	Debug  string
	Layout collision.SheetLayout
}

// build runs the preprocessor once. The blob is only rewritten when its
// contents change, so an unchanged sheet leaves the artifact untouched.
func build(opts options) error {
	f, err := os.Open(opts.Sheet)
	if err != nil {
		return fmt.Errorf("open sheet: %w", err)
	}
	img, format, err := image.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("decode %s: %w", opts.Sheet, err)
	}

	blob, outlines, err := collision.Preprocess(img, opts.Layout)
	if err != nil {
		return err
	}

	if old, err := os.ReadFile(opts.Out); err == nil && bytes.Equal(old, blob) {
		log.Printf("outline: %s is up to date (%d bytes)", opts.Out, len(blob))
	} else {
		if err := os.WriteFile(opts.Out, blob, 0o644); err != nil {
			return fmt.Errorf("write blob: %w", err)
		}
		log.Printf("outline: wrote %d bytes to %s from %s sheet %s", len(blob), opts.Out, format, opts.Sheet)
	}

	if opts.Debug == "" {
		return nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, collision.DebugImage(outlines, opts.Layout)); err != nil {
		return fmt.Errorf("encode debug image: %w", err)
	}
	if err := os.WriteFile(opts.Debug, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write debug image: %w", err)
	}
	log.Printf("outline: wrote debug outlines to %s", opts.Debug)
	return nil
}

// watchSheet rebuilds on every change to the sheet until the watcher fails.
// Editors often write a file in several steps, so events are debounced.
func watchSheet(opts options) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory; some editors replace the file instead of writing it.
	if err := w.Add(filepath.Dir(opts.Sheet)); err != nil {
		return err
	}
	target := filepath.Clean(opts.Sheet)
	log.Printf("outline: watching %s", target)

	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(100 * time.Millisecond)
		case <-pending:
			pending = nil
			if err := build(opts); err != nil {
				log.Printf("outline: rebuild failed: %v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
