package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"showdown-teambuilder/build"
	"showdown-teambuilder/calc"
	"showdown-teambuilder/data"
	"showdown-teambuilder/logger"
	"showdown-teambuilder/service"
	"showdown-teambuilder/store"
)

// loadDex reads the dex when the configured directory exists. Without one, builds must
// spell out types and move details themselves.
func loadDex(dir string) (*data.Dex, error) {
	if dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		logger.Debug("no dex directory, running without species data", "dir", dir)
		return nil, nil
	}
	dex, err := data.Load(dir)
	if err != nil {
		return nil, err
	}
	species, moves := dex.Len()
	logger.Debug("dex loaded", "dir", dir, "species", species, "moves", moves)
	return dex, nil
}

// openService wires the engine to the configured dex and vault. The returned close func
// releases the vault.
func openService() (*service.Service, func(), error) {
	dex, err := loadDex(settings.DexDir)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(settings.DBDriver, settings.DBPath)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := st.Close(); err != nil {
			logger.Warn("closing team vault", "error", err)
		}
	}
	return service.New(calc.New(), dex, st, settings.Generation), closeFn, nil
}

// teamRef reads a team argument: a build file when the path exists, a vault id when it
// carries a kind prefix, otherwise a share code.
func teamRef(arg string) (service.TeamRef, error) {
	if _, err := os.Stat(arg); err == nil {
		b, err := build.Load(arg)
		if err != nil {
			return service.TeamRef{}, err
		}
		return service.TeamRef{Build: b}, nil
	}
	for _, k := range []store.Kind{store.KindTeam, store.KindRival} {
		if strings.HasPrefix(arg, string(k)+"_") {
			return service.TeamRef{TeamID: arg}, nil
		}
	}
	return service.TeamRef{ShareCode: arg}, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
