// seed generates a dataset and writes it to stdout as JSON. Useful for
// inspecting what the shell starts from; pass RAND_SEED for a reproducible
// dataset.
package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"claimflow/internal/config"
	"claimflow/internal/export"
	"claimflow/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var src rand.Source
	if cfg.RandSeed != 0 {
		src = rand.NewPCG(cfg.RandSeed, cfg.RandSeed>>1)
	}
	gen := seed.New(src)
	gen.PolicyCount = cfg.SeedPolicyCount
	gen.ClaimCount = cfg.SeedClaimCount
	gen.ActivityCount = cfg.SeedActivityCount

	out, err := export.Dataset(gen.Generate(), time.Now().UTC())
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
}
