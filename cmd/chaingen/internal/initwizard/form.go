package initwizard

import (
	"path"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"
)

type FormBuilder interface {
	Build(defaultIdent string, result *Result) *huh.Form
}

type formBuilder struct{}

func NewFormBuilder() FormBuilder {
	return &formBuilder{}
}

func (b *formBuilder) Build(defaultIdent string, result *Result) *huh.Form {
	*result = DefaultResult(defaultIdent)
	return huh.NewForm(
		huh.NewGroup(
			b.generatorBinInput(&result.GeneratorBin),
			b.generatorCrateInput(&result.GeneratorCrate),
			b.outputPathInput(&result.OutputPath),
			b.metadataPathInput(&result.MetadataPath),
			b.failOnDriftConfirm(&result.FailOnDrift),
		),
	)
}

func (b *formBuilder) generatorBinInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Generator binary").
		Description("Invoked as '<binary> --path <output>' to produce bindings from runtime metadata").
		Value(value).
		Validate(ValidateBinName)
}

func (b *formBuilder) generatorCrateInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Generator crate").
		Description("Cargo crate providing the binary, for 'chaingen tools install' (optional)").
		Value(value)
}

func (b *formBuilder) outputPathInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Output path").
		Description("Where generated sources are written, relative to the project root").
		Value(value).
		Validate(ValidateRelPath)
}

func (b *formBuilder) metadataPathInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Runtime metadata file").
		Description("Watched by 'chaingen dev watch' to trigger regeneration (optional)").
		Value(value).
		Validate(func(s string) error {
			if s == "" {
				return nil
			}
			return ValidateRelPath(s)
		})
}

func (b *formBuilder) failOnDriftConfirm(value *bool) *huh.Confirm {
	return huh.NewConfirm().
		Title("Fail on drift").
		Description("Make 'check drift' exit non-zero when bindings are outdated (strict CI mode)").
		Value(value)
}

func ValidateBinName(s string) error {
	if s == "" {
		return errors.New("generator binary is required")
	}
	if strings.ContainsAny(s, " \t") {
		return errors.New("binary name cannot contain whitespace; put flags in generator.args")
	}
	return nil
}

func ValidateRelPath(s string) error {
	if s == "" {
		return errors.New("path is required")
	}
	if path.IsAbs(s) || strings.HasPrefix(s, "~") {
		return errors.New("path must be relative to the project root")
	}
	for part := range strings.SplitSeq(path.Clean(s), "/") {
		if part == ".." {
			return errors.New("path cannot leave the project root")
		}
	}
	return nil
}
