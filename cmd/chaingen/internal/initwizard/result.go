package initwizard

import (
	"github.com/iancoleman/strcase"

	"github.com/relayerlabs/chaingen/cmd/chaingen/internal/config"
)

type Result struct {
	GeneratorBin   string
	GeneratorCrate string
	OutputPath     string
	MetadataPath   string
	FailOnDrift    bool
}

// DefaultResult derives wizard defaults from the project directory name,
// e.g. "my-chain" gets its bindings under generated/my_chain.
func DefaultResult(defaultIdent string) Result {
	return Result{
		GeneratorBin: "codegen",
		OutputPath:   "generated/" + strcase.ToSnake(defaultIdent) + "/src",
	}
}

// ToConfig turns the wizard answers into a config file, on top of the
// defaults for everything the wizard does not ask about.
func (r Result) ToConfig() config.Config {
	cfg := config.Default()
	cfg.Generator.Bin = r.GeneratorBin
	cfg.Generator.Crate = r.GeneratorCrate
	cfg.Generator.Path = r.OutputPath
	cfg.Generator.Metadata = r.MetadataPath
	cfg.Check.FailOnDrift = r.FailOnDrift
	return cfg
}
