package main

import (
	"os"

	"gopkg.in/yaml.v2"

	"katas-server/internal/config"
)

// writes the default configuration as YAML, suitable as a starting config.yaml
func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		panic(err)
	}
}
