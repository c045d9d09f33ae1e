package main

import (
	"fmt"
	"log"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Layr-Labs/imt-go/pkg/config"
	"github.com/Layr-Labs/imt-go/pkg/hasher"
	"github.com/Layr-Labs/imt-go/pkg/imt"
	"github.com/Layr-Labs/imt-go/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "imt-tool",
		Usage: "Indexed merkle tree inspection tool",
		Description: `Builds an indexed merkle tree from a list of field values and prints the
resulting commitment.

The tool can additionally:
- extract and verify the hash path for any leaf index
- produce membership proofs for inserted values
- produce non-membership proofs for absent values

Values are decimal or 0x-prefixed hex scalars in the BN254 field.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "depth",
				Aliases: []string{"d"},
				Value:   8,
				Usage:   "tree depth; capacity is 2^depth leaves",
				EnvVars: []string{config.EnvIMTDepth},
			},
			&cli.StringFlag{
				Name:    "hash-scheme",
				Aliases: []string{"hash"},
				Value:   "mimc",
				Usage:   fmt.Sprintf("hash scheme: %s", config.GetSupportedHashSchemesString()),
				EnvVars: []string{config.EnvIMTHashScheme},
			},
			&cli.StringSliceFlag{
				Name:    "insert",
				Aliases: []string{"i"},
				Usage:   "value to insert; repeatable, inserted in order",
			},
			&cli.StringSliceFlag{
				Name:  "prove-member",
				Usage: "value to produce and check a membership proof for",
			},
			&cli.StringSliceFlag{
				Name:  "prove-absent",
				Usage: "value to produce and check a non-membership proof for",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print the full leaf preimage table",
				EnvVars: []string{config.EnvIMTVerbose},
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				EnvVars: []string{config.EnvIMTDebug},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("imt-tool failed: %v", err)
	}
}

func run(c *cli.Context) error {
	scheme, err := config.ParseHashScheme(c.String("hash-scheme"))
	if err != nil {
		return err
	}

	cfg := &config.TreeToolConfig{
		Depth:      c.Int("depth"),
		HashScheme: scheme,
		Debug:      c.Bool("debug"),
		Verbose:    c.Bool("verbose"),
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}
	defer func() { _ = l.Sync() }()

	runID := uuid.New().String()
	l = l.With(zap.String("runId", runID))

	compressor := compressorForScheme(cfg.HashScheme)
	tree, err := imt.New(&imt.Config{
		Depth:      cfg.Depth,
		Compressor: compressor,
		Logger:     l,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create tree")
	}

	for _, raw := range c.StringSlice("insert") {
		value, err := parseScalar(raw)
		if err != nil {
			return err
		}
		root, err := tree.Insert(value)
		if err != nil {
			return errors.Wrapf(err, "failed to insert %s", raw)
		}
		l.Info("inserted", zap.String("value", raw), zap.String("root", scalarHex(root)))
	}

	root := tree.Root()
	fmt.Printf("scheme:   %s\n", compressor.Scheme())
	fmt.Printf("depth:    %d\n", tree.Depth())
	fmt.Printf("capacity: %d leaves (%d occupied)\n", tree.Capacity(), tree.LeafCount())
	fmt.Printf("root:     %s\n", scalarHex(root))

	if cfg.Verbose {
		printLeaves(tree)
	}

	for _, raw := range c.StringSlice("prove-member") {
		if err := proveMember(tree, compressor, raw, root); err != nil {
			return err
		}
	}
	for _, raw := range c.StringSlice("prove-absent") {
		if err := proveAbsent(tree, compressor, raw, root); err != nil {
			return err
		}
	}

	return nil
}

func proveMember(tree *imt.Tree, c hasher.Compressor, raw string, root fr.Element) error {
	value, err := parseScalar(raw)
	if err != nil {
		return err
	}
	proof, err := tree.ProveMembership(value)
	if err != nil {
		return errors.Wrapf(err, "failed to prove membership of %s", raw)
	}
	if !imt.VerifyMembership(proof, value, root, c) {
		return fmt.Errorf("membership proof for %s did not verify", raw)
	}
	fmt.Printf("member:   %s at leaf %d (proof verified, %d levels)\n", raw, proof.LeafIndex, len(proof.Path))
	return nil
}

func proveAbsent(tree *imt.Tree, c hasher.Compressor, raw string, root fr.Element) error {
	value, err := parseScalar(raw)
	if err != nil {
		return err
	}
	proof, err := tree.ProveNonMembership(value)
	if err != nil {
		return errors.Wrapf(err, "failed to prove non-membership of %s", raw)
	}
	if !imt.VerifyNonMembership(proof, root, c) {
		return fmt.Errorf("non-membership proof for %s did not verify", raw)
	}
	fmt.Printf("absent:   %s, bracketed by low leaf %d (proof verified)\n", raw, proof.LowLeafIndex)
	return nil
}

func printLeaves(tree *imt.Tree) {
	fmt.Println("leaves:")
	for i, leaf := range tree.DumpLeaves() {
		if i >= int(tree.LeafCount()) {
			fmt.Printf("  [%d..%d] empty\n", i, tree.Capacity()-1)
			break
		}
		fmt.Printf("  [%d] value=%s nextIndex=%d nextValue=%s\n",
			i, leaf.Value.String(), leaf.NextIndex, leaf.NextValue.String())
	}
}

func compressorForScheme(scheme config.HashScheme) hasher.Compressor {
	if scheme == config.HashSchemeKeccak {
		return hasher.NewKeccak()
	}
	return hasher.NewMiMC()
}

func parseScalar(raw string) (fr.Element, error) {
	var value fr.Element
	if _, err := value.SetString(raw); err != nil {
		return fr.Element{}, errors.Wrapf(err, "invalid field value %q", raw)
	}
	return value, nil
}

func scalarHex(e fr.Element) string {
	b := e.Bytes()
	return hexutil.Encode(b[:])
}
