package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hasbyte1/pwgen/generator"
	"github.com/hasbyte1/pwgen/kdf"
	"github.com/hasbyte1/pwgen/policy"
)

// usageError marks caller-input problems detected at the CLI boundary, so
// they map to exit code 2 rather than 4.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// generateOptions holds the generate command's flag values. Shape-level
// validation happens here; policy invariants are enforced solely by
// policy.Validate.
type generateOptions struct {
	site     string
	username string
	version  uint32

	length    uint16
	lengthSet bool
	min       uint16
	max       uint16

	allow    []string
	force    []string
	noLower  bool
	noUpper  bool
	noDigit  bool
	noSymbol bool

	master       string
	masterStdin  bool
	masterPrompt bool

	jsonOut bool
	verbose bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a password",
		Long: `Generate derives the password for a site. The site identifier is trimmed
and lowercased, so "  EXAMPLE.COM  " and "example.com" are the same site.
Bump --version to rotate a password without changing any other input.

Exactly one of --master, --master-stdin, or --master-prompt must be given.
--master-stdin reads all of standard input and strips only a trailing
newline sequence; --master-prompt reads from the terminal without echo.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()

	f.StringVar(&opts.site, "site", "", "site identifier (trimmed and lowercased)")
	f.StringVar(&opts.username, "username", "", "optional username mixed into the derivation")
	f.Uint32Var(&opts.version, "version", 1, "rotation/version number")

	f.Uint16Var(&opts.length, "length", 0, "fixed length (overrides --min/--max)")
	f.Uint16Var(&opts.min, "min", 12, "minimum length")
	f.Uint16Var(&opts.max, "max", 16, "maximum length")

	f.StringSliceVar(&opts.allow, "allow", nil, "allowed charsets (lower,upper,digit,symbol; default all)")
	f.StringSliceVar(&opts.force, "force", nil, "charsets that must each appear at least once")
	f.BoolVar(&opts.noLower, "no-lower", false, "disallow lowercase letters")
	f.BoolVar(&opts.noUpper, "no-upper", false, "disallow uppercase letters")
	f.BoolVar(&opts.noDigit, "no-digit", false, "disallow digits")
	f.BoolVar(&opts.noSymbol, "no-symbol", false, "disallow symbols")

	f.StringVar(&opts.master, "master", "", "master secret given directly (visible in process lists; prefer --master-prompt)")
	f.BoolVar(&opts.masterStdin, "master-stdin", false, "read the master secret from standard input")
	f.BoolVar(&opts.masterPrompt, "master-prompt", false, "prompt for the master secret on the terminal")

	f.BoolVar(&opts.jsonOut, "json", false, "print a JSON object instead of the bare password")
	f.BoolVar(&opts.verbose, "verbose", false, "log derivation inputs (never the secret) to stderr")

	_ = cmd.MarkFlagRequired("site")
	cmd.MarkFlagsOneRequired("master", "master-stdin", "master-prompt")
	cmd.MarkFlagsMutuallyExclusive("master", "master-stdin", "master-prompt")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	opts.lengthSet = cmd.Flags().Changed("length")
	applyConfigDefaults(cmd, opts)

	site := kdf.NormalizeSite(opts.site)
	if site == "" {
		return usagef("--site must be nonempty after trimming")
	}

	pol, err := buildPolicy(*opts)
	if err != nil {
		return err
	}
	canonical, err := policy.Validate(pol)
	if err != nil {
		return err
	}

	master, err := resolveMaster(cmd, *opts)
	if err != nil {
		return err
	}
	if len(master) == 0 {
		return usagef("master secret must be nonempty")
	}

	if opts.verbose {
		logger := newLogger()
		defer func() { _ = logger.Sync() }()
		logger.Info("generating password",
			zap.String("site", site),
			zap.String("username", opts.username),
			zap.Uint32("version", opts.version),
			zap.String("policy", canonical.Encode()),
		)
	}

	password, err := generator.Generate(string(master), site, opts.username, canonical, opts.version)
	kdf.Wipe(master)
	if err != nil {
		return err
	}

	if opts.jsonOut {
		return writeJSON(cmd.OutOrStdout(), password, site, opts.username, opts.version, canonical)
	}
	fmt.Fprintln(cmd.OutOrStdout(), password)
	return nil
}

// applyConfigDefaults fills flag values the user did not set from viper's
// config/env layer.
func applyConfigDefaults(cmd *cobra.Command, opts *generateOptions) {
	flags := cmd.Flags()
	if !flags.Changed("username") && viper.IsSet("username") {
		opts.username = viper.GetString("username")
	}
	if !flags.Changed("min") && viper.IsSet("min") {
		opts.min = uint16(viper.GetUint("min"))
	}
	if !flags.Changed("max") && viper.IsSet("max") {
		opts.max = uint16(viper.GetUint("max"))
	}
	if !flags.Changed("allow") && viper.IsSet("allow") {
		opts.allow = viper.GetStringSlice("allow")
	}
}

// buildPolicy converts flag values into an unvalidated policy.Policy. Only
// input shape is checked here (values fit, names parse); the policy
// invariants belong to policy.Validate alone.
func buildPolicy(opts generateOptions) (policy.Policy, error) {
	min, max := opts.min, opts.max
	if opts.lengthSet {
		if opts.length < 1 || opts.length > 128 {
			return policy.Policy{}, usagef("--length must be within [1,128]")
		}
		min, max = opts.length, opts.length
	}
	if min < 1 || min > 128 {
		return policy.Policy{}, usagef("--min must be within [1,128]")
	}
	if max < 1 || max > 128 {
		return policy.Policy{}, usagef("--max must be within [1,128]")
	}
	if min > max {
		return policy.Policy{}, usagef("--min must not exceed --max")
	}

	allow := [policy.NumCharsets]bool{true, true, true, true}
	if len(opts.allow) > 0 {
		allow = [policy.NumCharsets]bool{}
		for _, name := range opts.allow {
			cs, ok := policy.ParseCharset(strings.TrimSpace(name))
			if !ok {
				return policy.Policy{}, usagef("unknown charset %q in --allow", name)
			}
			allow[cs] = true
		}
	}
	if opts.noLower {
		allow[policy.Lower] = false
	}
	if opts.noUpper {
		allow[policy.Upper] = false
	}
	if opts.noDigit {
		allow[policy.Digit] = false
	}
	if opts.noSymbol {
		allow[policy.Symbol] = false
	}

	var force [policy.NumCharsets]bool
	for _, name := range opts.force {
		cs, ok := policy.ParseCharset(strings.TrimSpace(name))
		if !ok {
			return policy.Policy{}, usagef("unknown charset %q in --force", name)
		}
		force[cs] = true
	}

	return policy.Policy{
		Min:   uint8(min),
		Max:   uint8(max),
		Allow: allow,
		Force: force,
	}, nil
}

// newLogger builds the --verbose stderr logger. Logging must never see the
// secret or the password; only derivation inputs are logged.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
