package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/level"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "Work with dungeon map files",
}

var mapsValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check map files for problems",
	Long: `Parse and validate map files without playing them.

Examples:
  crawler maps validate ./cellar.yaml
  crawler maps validate ~/.crawler/maps/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMapsValidate,
}

func init() {
	mapsCmd.AddCommand(mapsValidateCmd)
}

// errMapsInvalid is returned when any checked map fails to load.
var errMapsInvalid = errors.New("maps: validation failed")

// mapCheck is the outcome of validating one file.
type mapCheck struct {
	path string
	lvl  *level.Level
	err  error
}

func runMapsValidate(_ *cobra.Command, args []string) error {
	checks, err := checkMaps(args)
	if err != nil {
		return err
	}

	failed := 0
	for _, c := range checks {
		if c.err == nil {
			fmt.Printf("ok    %s (%s, %d rooms, %d enemies)\n", c.path, c.lvl.ID, len(c.lvl.Rooms), c.lvl.EnemyCount())
			continue
		}

		failed++
		var verr *level.ValidationError
		if !errors.As(c.err, &verr) {
			fmt.Printf("FAIL  %s: %v\n", c.path, c.err)
			continue
		}
		fmt.Printf("FAIL  %s (%s)\n", c.path, verr.ID)
		for _, p := range verr.Problems {
			fmt.Printf("        - %s\n", p)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errMapsInvalid, failed, len(checks))
	}
	return nil
}

// checkMaps loads every file on a worker pool. Results keep argument order.
func checkMaps(paths []string) ([]mapCheck, error) {
	checks := make([]mapCheck, len(paths))

	pool, err := ants.NewPool(runtime.NumCPU(), ants.WithPanicHandler(func(p any) {
		fmt.Fprintf(os.Stderr, "map check panicked: %v\n", p)
	}))
	if err != nil {
		return nil, fmt.Errorf("maps: worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, path := range paths {
		checks[i].path = path
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			checks[i].lvl, checks[i].err = level.LoadFile(path)
		}); err != nil {
			wg.Done()
			checks[i].err = err
		}
	}
	wg.Wait()
	return checks, nil
}
