package main

import (
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"inclexgo/internal/util"
	"inclexgo/pkg/inclex"
)

// NewRootCommand builds the inclex command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "inclex <command> [arguments]",
		Short:         "inclex counts integers divisible by at least one divisor.",
		Long:          "inclex counts the integers in [1, N] divisible by at least one of a set of divisors, by inclusion-exclusion.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example:       "inclex count --divisors 2,3,6,7,8 --upper 20",
	}
	rootCmd.AddCommand(newCountCommand())
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

type countReport struct {
	Divisors    []int64 `json:"divisors"`
	UpperBound  int64   `json:"upper_bound"`
	Count       int64   `json:"count"`
	Strategy    string  `json:"strategy"`
	Subsets     uint64  `json:"subsets"`
	Pruned      uint64  `json:"pruned"`
	Fingerprint string  `json:"fingerprint"`
	Verified    bool    `json:"verified"`
	ElapsedUS   int64   `json:"elapsed_us"`
}

func newCountCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:     "count",
		Short:   "Count the integers in [1, upper] divisible by any divisor.",
		Example: "inclex count --divisors 2,3,6,7,8 --upper 20 --strategy pruned --verify",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.StringSlice("divisors", nil, "comma separated positive divisors")
	flags.Int64("upper", 0, "inclusive upper bound of the range")
	flags.String("strategy", "bitmask", "subset enumeration: bitmask or pruned")
	flags.Bool("dedup", false, "drop repeated divisors before counting")
	flags.Bool("verify", false, "cross-check against a direct scan of the range")
	flags.Bool("json", false, "print a JSON report")
	flags.Bool("verbose", false, "log progress to stderr")

	v.SetEnvPrefix("INCLEX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(flags)
	return cmd
}

func runCount(cmd *cobra.Command, v *viper.Viper) error {
	divisors, err := parseDivisors(v.GetStringSlice("divisors"))
	if err != nil {
		return err
	}
	upper := v.GetInt64("upper")

	cfg := inclex.DefaultConfig()
	if cfg.Strategy, err = inclex.ParseStrategy(v.GetString("strategy")); err != nil {
		return err
	}
	cfg.Deduplicate = v.GetBool("dedup")
	cfg.Verbose = v.GetBool("verbose")

	logger := util.NewLogger(cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	res, err := inclex.NewCounter(&cfg, logger).Count(divisors, upper)
	if err != nil {
		return err
	}

	verified := false
	if v.GetBool("verify") {
		want, err := inclex.CountBruteForce(divisors, upper)
		if err != nil {
			return err
		}
		if want != res.Count {
			return errors.Errorf("verification failed: counted %d, direct scan gives %d", res.Count, want)
		}
		verified = true
	}

	out := cmd.OutOrStdout()
	if !v.GetBool("json") {
		fmt.Fprintln(out, res.Count)
		return nil
	}
	report := countReport{
		Divisors:    divisors,
		UpperBound:  upper,
		Count:       res.Count,
		Strategy:    res.Strategy.String(),
		Subsets:     res.Subsets,
		Pruned:      res.Pruned,
		Fingerprint: fmt.Sprintf("%016x", res.Fingerprint),
		Verified:    verified,
		ElapsedUS:   res.Elapsed.Microseconds(),
	}
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(report, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode report")
	}
	fmt.Fprintln(out, string(data))
	return nil
}

// parseDivisors accepts items that may themselves hold comma or space
// separated values, as they arrive from either flags or the environment.
func parseDivisors(items []string) ([]int64, error) {
	var divisors []int64
	for _, item := range items {
		fields := strings.FieldsFunc(item, func(r rune) bool { return r == ',' || r == ' ' })
		for _, f := range fields {
			d, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "divisor %q", f)
			}
			divisors = append(divisors, d)
		}
	}
	return divisors, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "View process version information.",
		Example: "inclex version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s-%s %s\n", Version, CommitID, BuildTime)
		},
	}
}
