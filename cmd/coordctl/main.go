// Command coordctl resolves a single configuration value from the
// command line, demonstrating the Builder/Resolver wiring a real service
// would perform at startup.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/latticeconf/coordinate"
	"github.com/latticeconf/coordinate/arbiters"
	"github.com/latticeconf/coordinate/converters"
	"github.com/latticeconf/coordinate/providers"
	"github.com/latticeconf/coordinate/spi"
)

func main() {
	var (
		name       = flag.String("name", "", "configuration property name to resolve")
		manifest   = flag.String("manifest", "", "path to a TOML coordinate manifest; discovered automatically if unset")
		envPrefix  = flag.String("env-prefix", "", "prefix applied to environment variable lookups")
		coordsEnv  = flag.String("coordinates-env", "COORDCTL_COORDINATES", "environment variable holding process coordinates, as key=value pairs")
		defaultVal = flag.String("default", "", "value returned if resolution finds nothing")
		hasDefault = flag.Bool("has-default", false, "treat -default as set even if empty")
		listTypes  = flag.Bool("list-types", false, "print registered converter types and exit")
		strict     = flag.Bool("strict", false, "abort on the first malformed candidate instead of discarding it")
	)
	flag.Parse()

	b := coordinate.NewBuilder().
		WithCoordinatesEnvVar(*coordsEnv).
		WithStrictMalformed(*strict).
		WithProvider(providers.NewCoordinatesEnv(*coordsEnv, coordinate.ConfigurationCoordinatesName)).
		WithProvider(providers.NewEnvironment(*envPrefix)).
		WithArbiter(arbiters.FirstProviderWins{})

	coordinate.WithConverter[string](b, converters.String{})
	coordinate.WithConverter[bool](b, converters.Bool{})
	coordinate.WithConverter[int64](b, converters.Int64{})
	coordinate.WithConverter[float64](b, converters.Float64{})
	coordinate.WithConverter[spi.Coordinates](b, converters.MapStringString{})

	path := *manifest
	if path == "" {
		if discovered, ok := providers.DiscoverTOMLFile("coordctl", "COORDCTL_MANIFEST"); ok {
			path = discovered
		}
	}
	if path != "" {
		tf, err := providers.NewTOMLFile(path)
		if err != nil {
			log.Fatalf("coordctl: %v", err)
		}
		b.WithProvider(tf)
	}

	r, err := b.Build(context.Background())
	if err != nil {
		log.Fatalf("coordctl: bootstrap failed: %v", err)
	}

	if *listTypes {
		for _, t := range r.ConversionTypesRegistered() {
			fmt.Println(t)
		}
		return
	}

	if *name == "" {
		fmt.Fprintln(os.Stderr, "coordctl: -name is required")
		os.Exit(2)
	}

	var def *string
	if *hasDefault || *defaultVal != "" {
		def = defaultVal
	}

	value, err := r.GetValueWithDefault(context.Background(), *name, def)
	if err != nil {
		log.Fatalf("coordctl: resolving %q: %v", *name, err)
	}
	fmt.Println(value)
}
