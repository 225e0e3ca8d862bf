package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/noteui/androidutil/filesystem"
	"github.com/noteui/androidutil/util/log"
)

// reloadOps are the operations on the config file which trigger a reload.
// Rename covers editors saving by renaming a temporary file over it.
const reloadOps = filesystem.WatchOpCreate | filesystem.WatchOpWrite | filesystem.WatchOpRename

// Watch reloads the config file whenever it is saved, and calls onChange
// with the result. A config which fails to load or validate is passed
// with its error. Watch blocks until ctx is done.
//
// The directory containing file is watched rather than file itself,
// so that a save replacing the file keeps being followed.
func Watch(ctx context.Context, file string, onChange func(*Config, error)) error {
	target, err := filesystem.ResolvePath(file)
	if err != nil {
		return fmt.Errorf("config.Watch: %w", err)
	}
	target = filepath.Clean(target)

	watcher, err := filesystem.OpenWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Watch(filepath.Dir(target)); err != nil {
		return fmt.Errorf("config.Watch: %w", err)
	}
	log.Debugf("config: watching %s", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&reloadOps == 0 {
				continue
			}
			// renamed away, not replaced.
			if !filesystem.Exist(file) {
				continue
			}
			conf, err := LoadConfig(file)
			if err == nil {
				err = conf.Validate()
			}
			log.Debugf("config: reloaded %s, err=%v", file, err)
			onChange(conf, err)
		case err, ok := <-watcher.Errors():
			if !ok {
				return nil
			}
			log.Infof("config: watch error: %v", err)
		}
	}
}
