package config

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/Layr-Labs/imt-go/pkg/layout"
)

// Environment variable names for the imtTool CLI
const (
	EnvIMTDepth      = "IMT_DEPTH"
	EnvIMTHashScheme = "IMT_HASH_SCHEME"
	EnvIMTVerbose    = "IMT_VERBOSE"
	EnvIMTDebug      = "IMT_DEBUG"
)

// HashScheme selects the two-to-one compression the tree commits with.
type HashScheme string

func (h HashScheme) String() string {
	return string(h)
}

const (
	HashSchemeUnknown HashScheme = "unknown"
	// HashSchemeMiMC is the default: ZK-friendly, cheap inside a circuit.
	HashSchemeMiMC HashScheme = "mimc"
	// HashSchemeKeccak matches what Solidity verifier contracts compute.
	HashSchemeKeccak HashScheme = "keccak256"
)

// ParseHashScheme maps a string to a HashScheme.
func ParseHashScheme(s string) (HashScheme, error) {
	switch s {
	case "mimc", "":
		return HashSchemeMiMC, nil
	case "keccak256", "keccak":
		return HashSchemeKeccak, nil
	default:
		return HashSchemeUnknown, fmt.Errorf("unsupported hash scheme: %s (supported: %s)", s, GetSupportedHashSchemesString())
	}
}

// GetSupportedHashSchemes returns all supported hash schemes.
func GetSupportedHashSchemes() []HashScheme {
	return []HashScheme{HashSchemeMiMC, HashSchemeKeccak}
}

// GetSupportedHashSchemesString returns the supported schemes for CLI help.
func GetSupportedHashSchemesString() string {
	return fmt.Sprintf("%s (default), %s", HashSchemeMiMC, HashSchemeKeccak)
}

// TreeToolConfig represents the complete configuration for the imtTool CLI.
type TreeToolConfig struct {
	// Tree shape
	Depth int `json:"depth"`

	// Hash scheme
	HashScheme HashScheme `json:"hash_scheme"`

	// Operational settings
	Debug   bool `json:"debug"`
	Verbose bool `json:"verbose"`
}

// Validate validates the tool configuration.
func (c *TreeToolConfig) Validate() error {
	var allErrors field.ErrorList
	if c.Depth < layout.MinDepth || c.Depth > layout.MaxDepth {
		allErrors = append(allErrors, field.Invalid(field.NewPath("depth"), c.Depth,
			fmt.Sprintf("depth must be in [%d, %d]", layout.MinDepth, layout.MaxDepth)))
	}
	if _, err := ParseHashScheme(c.HashScheme.String()); err != nil {
		allErrors = append(allErrors, field.NotSupported(field.NewPath("hashScheme"), c.HashScheme, []string{
			HashSchemeMiMC.String(), HashSchemeKeccak.String(),
		}))
	}
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}
