package flags

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// TestUniqueFlagNames checks that no flag name is registered twice.
func TestUniqueFlagNames(t *testing.T) {
	seen := map[string]struct{}{}
	for _, flag := range Flags {
		for _, name := range flag.Names() {
			_, ok := seen[name]
			assert.False(t, ok, "duplicate flag name %s", name)
			seen[name] = struct{}{}
		}
	}
}

func TestFlagEnvVarsPrefixed(t *testing.T) {
	for _, flag := range Flags {
		values := reflectEnvVars(t, flag)
		require.NotEmpty(t, values, "flag %s has no env var", flag.Names()[0])
		for _, v := range values {
			assert.True(t, strings.HasPrefix(v, EnvVarPrefix+"_"),
				"flag %s env var %s does not start with %s_", flag.Names()[0], v, EnvVarPrefix)
		}
	}
}

func reflectEnvVars(t *testing.T, flag cli.Flag) []string {
	t.Helper()
	switch f := flag.(type) {
	case *cli.StringFlag:
		return f.EnvVars
	case *cli.Uint64Flag:
		return f.EnvVars
	case *cli.PathFlag:
		return f.EnvVars
	case *cli.BoolFlag:
		return f.EnvVars
	default:
		t.Fatalf("unhandled flag type %T", flag)
		return nil
	}
}

func TestCheckRequired(t *testing.T) {
	app := cli.NewApp()
	app.Flags = Flags
	app.Action = func(ctx *cli.Context) error {
		return CheckRequired(ctx)
	}
	assert.NoError(t, app.Run([]string{"scunit"}))
}
