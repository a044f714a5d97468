package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yourorg/mmrhints/pkg/blocks"
	"github.com/yourorg/mmrhints/pkg/felt"
	"github.com/yourorg/mmrhints/pkg/hints"
	"github.com/yourorg/mmrhints/pkg/hints/testgen"
	"github.com/yourorg/mmrhints/pkg/mmr"
)

const (
	hasherKeccak    = "keccak"
	hasherPoseidon  = "poseidon"
	hasherPoseidon2 = "poseidon2"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Crit("mmr failed", "err", err)
	}
}

func newRootCmd() *cobra.Command {
	var (
		hasher    string
		verbosity int
	)

	rootCmd := &cobra.Command{
		Use:           "mmr",
		Short:         "Merkle Mountain Range accumulator and hint tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()
			log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(cmd.ErrOrStderr(), log.FromLegacyLevel(verbosity), false)))

			if !cmd.Flags().Changed("hasher") {
				if env := os.Getenv("MMR_HASHER"); env != "" {
					hasher = env
				}
			}
			hasher = strings.ToLower(hasher)
			switch hasher {
			case hasherKeccak, hasherPoseidon, hasherPoseidon2:
			default:
				return fmt.Errorf("unknown hasher %q, want %s, %s or %s", hasher, hasherKeccak, hasherPoseidon, hasherPoseidon2)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&hasher, "hasher", hasherKeccak, "Hash strategy: keccak, poseidon or poseidon2 (env MMR_HASHER)")
	rootCmd.PersistentFlags().IntVar(&verbosity, "verbosity", 3, "Log level (0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace)")

	rootCmd.AddCommand(
		newRootHashCmd(&hasher),
		newPeaksCmd(),
		newValidSizeCmd(),
		newBlocksCmd(),
		newHintsCmd(),
	)
	return rootCmd
}

/* ---------------- root ---------------- */

func newRootHashCmd(hasher *string) *cobra.Command {
	var input, path string

	cmd := &cobra.Command{
		Use:   "root [values...]",
		Short: "Append values to an empty MMR and print its root",
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := loadValues(args, input, path)
			if err != nil {
				return err
			}
			if len(vals) == 0 {
				return mmr.ErrEmpty
			}

			switch *hasher {
			case hasherPoseidon:
				leaves, err := parseFelts(vals)
				if err != nil {
					return err
				}
				return printAccumulator(cmd.OutOrStdout(), mmr.NewPoseidon(), leaves, func(v felt.Felt) string {
					return "0x" + felt.Big(v).Text(16)
				})
			case hasherPoseidon2:
				leaves, err := parseScalars(vals)
				if err != nil {
					return err
				}
				return printAccumulator(cmd.OutOrStdout(), mmr.NewPoseidon2(), leaves, func(v fr.Element) string {
					return "0x" + v.Text(16)
				})
			default:
				leaves, err := parseWords(vals)
				if err != nil {
					return err
				}
				return printAccumulator(cmd.OutOrStdout(), mmr.NewKeccak(), leaves, func(v uint256.Int) string {
					return v.Hex()
				})
			}
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "JSON file holding the values")
	cmd.Flags().StringVar(&path, "path", "", "gjson path of the value array inside --input")
	return cmd
}

func printAccumulator[T any](w io.Writer, acc *mmr.Accumulator[T], leaves []T, format func(T) string) error {
	for _, l := range leaves {
		acc.Append(l)
	}
	root, err := acc.Root()
	if err != nil {
		return err
	}
	log.Debug("Built accumulator", "leaves", acc.LeafCount(), "size", acc.Size())

	fmt.Fprintf(w, "size:  %d\n", acc.Size())
	fmt.Fprintf(w, "peaks: %v\n", acc.Peaks())
	fmt.Fprintf(w, "root:  %s\n", format(root))
	return nil
}

/* ---------------- size queries ---------------- */

func parseSize(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return n, nil
}

func newPeaksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "peaks <size>",
		Short: "Print the peak positions of an MMR of the given size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseSize(args[0])
			if err != nil {
				return err
			}
			peaks, err := mmr.PeakPositions(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), peaks)
			return nil
		},
	}
}

func newValidSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "valid-size <size>...",
		Short: "Report whether each size can be produced by appends",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				n, err := parseSize(a)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%v\n", n, mmr.IsValidSize(n))
			}
			return nil
		},
	}
}

/* ---------------- blocks ---------------- */

func newBlocksCmd() *cobra.Command {
	var (
		rpcURL   string
		from, to uint64
	)

	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "Accumulate a range of block hashes into a Keccak MMR",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rpcURL == "" {
				rpcURL = os.Getenv("ALCHEMY_URL")
				if rpcURL == "" {
					return fmt.Errorf("--rpc flag or ALCHEMY_URL env var is required")
				}
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cli, err := ethclient.DialContext(ctx, rpcURL)
			if err != nil {
				return err
			}
			defer cli.Close()

			acc := mmr.NewKeccak()
			size, err := blocks.Accumulate(ctx, cli, from, to, acc)
			if err != nil {
				return err
			}
			root, err := acc.Root()
			if err != nil {
				return err
			}
			log.Info("Accumulated block hashes", "from", from, "to", to, "size", size)
			fmt.Fprintf(cmd.OutOrStdout(), "size: %d\nroot: %s\n", size, root.Hex())
			return nil
		},
	}
	cmd.Flags().StringVar(&rpcURL, "rpc", "", "Archive RPC URL (env ALCHEMY_URL)")
	cmd.Flags().Uint64Var(&from, "from", 0, "First block number")
	cmd.Flags().Uint64Var(&to, "to", 0, "Last block number")
	return cmd
}

/* ---------------- hints ---------------- */

func newHintsCmd() *cobra.Command {
	var withTests bool

	cmd := &cobra.Command{
		Use:   "hints",
		Short: "List the hint texts the processor recognises",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalogs := []hints.Catalog{hints.Library()}
			if withTests {
				catalogs = append(catalogs, testgen.Catalog(testgen.NewRand()))
			}
			w := cmd.OutOrStdout()
			for _, c := range catalogs {
				for _, code := range c.Codes() {
					fmt.Fprintln(w, strings.ReplaceAll(code, "\n", `\n`))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withTests, "tests", false, "Include the test-vector generators")
	cmd.AddCommand(newHintsRunCmd())
	return cmd
}
