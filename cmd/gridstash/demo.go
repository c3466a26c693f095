package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitas-games/gridstash/internal/config"
	"github.com/gravitas-games/gridstash/internal/journal"
	"github.com/gravitas-games/gridstash/internal/spawner"
	"github.com/gravitas-games/gridstash/pkg/inventory"
	"github.com/gravitas-games/gridstash/pkg/models"
)

var (
	flagCount int
	flagSeed  int64
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Spawn loot and collect it into the player inventory and stash",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("count") {
			cfg.Spawner.Count = flagCount
		}
		if cmd.Flags().Changed("seed") {
			cfg.Spawner.Seed = flagSeed
		}
		return runDemo(cfg)
	},
}

func init() {
	demoCmd.Flags().IntVar(&flagCount, "count", 0, "number of items to spawn (default from config)")
	demoCmd.Flags().Int64Var(&flagSeed, "seed", 0, "spawner seed (default from config)")
}

// demoResult summarises a demo run.
type demoResult struct {
	Player *models.Player
	Ground []*inventory.Item
}

func runDemo(c *config.Config) error {
	reg, err := loadRegistry(c)
	if err != nil {
		return err
	}

	res, j, err := simulate(c, reg)
	if j != nil {
		if cerr := j.Close(); cerr != nil {
			log.Printf("Journal close error: %v", cerr)
		}
		if n := j.Errors(); n > 0 {
			log.Printf("Journal dropped %d events", n)
		}
	}
	if err != nil {
		return err
	}

	renderGrid(os.Stdout, res.Player.Main)
	fmt.Fprintln(os.Stdout)
	renderGrid(os.Stdout, res.Player.Stash)
	if len(res.Ground) > 0 {
		fmt.Fprintf(os.Stdout, "\n%d stacks left on the ground\n", len(res.Ground))
	}
	return nil
}

// simulate spawns items and collects each into the player's main inventory,
// spilling into the open stash and then the ground. The first main item is
// then carried to the stash by hand.
func simulate(c *config.Config, reg *inventory.Registry) (*demoResult, *journal.Journal, error) {
	p := models.NewPlayer("player", "demo",
		models.Grid{Width: c.Inventories.Player.Width, Height: c.Inventories.Player.Height},
		models.Grid{Width: c.Inventories.Stash.Width, Height: c.Inventories.Stash.Height},
		inventory.WithLogger(log.Default()),
	)
	p.SetStashOpen(true)
	res := &demoResult{Player: p}

	var j *journal.Journal
	if c.Journal.Dir != "" {
		j = journal.New(c.Journal.Dir, c.Journal.Prefix)
		j.Attach(p.Main)
		j.Attach(p.Stash)
		log.Printf("Recording inventory events to %s", c.Journal.Dir)
	}

	sp, err := spawner.New(reg, c.Spawner.Seed)
	if err != nil {
		return nil, j, err
	}

	for _, item := range sp.SpawnN(c.Spawner.Count) {
		if !p.Collect(item) {
			res.Ground = append(res.Ground, item)
		}
	}

	if items := p.Main.Items(); len(items) > 0 {
		origin, _ := p.Main.Origin(items[0])
		if p.PickUp(p.Main.ID, origin.X, origin.Y) {
			if resp := p.PutDown(p.Stash.ID, 0, 0); resp == inventory.Blocked {
				// put it back where it came from
				p.PutDown(p.Main.ID, origin.X, origin.Y)
			}
			// a swapped-out stash item goes back into the main inventory
			if held := p.DropHeld(); held != nil && !p.Collect(held) {
				res.Ground = append(res.Ground, held)
			}
		}
	}
	return res, j, nil
}
