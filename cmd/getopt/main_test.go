package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressly/getopt"
)

func runArgs(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = run(args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("assignments and options", func(t *testing.T) {
		t.Parallel()
		stdout, stderr, err := runArgs(t,
			"-bool=-v,--verbose",
			"-string=-o,--output=out.txt",
			"-int=-n,--count=1",
			"--",
			"-v", "-o", "a b", "file.txt", "--count=3",
		)
		require.NoError(t, err)
		assert.Empty(t, stderr)
		assert.Equal(t, lines(
			"verbose=true",
			"count=3",
			"output='a b'",
			"set -- file.txt",
		), stdout)
	})
	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runArgs(t,
			"-bool=-q,--quiet",
			"-float=-r,--ratio=0.5",
			"-string=--dry-run-dir=/tmp",
			"--",
		)
		require.NoError(t, err)
		assert.Equal(t, lines(
			"quiet=false",
			"ratio=0.5",
			"dry_run_dir=/tmp",
			"set --",
		), stdout)
	})
	t.Run("quoting", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runArgs(t,
			"-string=-a",
			"-string=-b",
			"--",
			"-a", "''", "-b", "$HOME", "it's", "x y",
		)
		require.NoError(t, err)
		assert.Equal(t, lines(
			"a=''",
			`b=\$HOME`,
			`set -- it\'s 'x y'`,
		), stdout)
	})
	t.Run("bundle", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runArgs(t,
			"-bool=-v", "-bool=-x", "-string=-f,--file",
			"--",
			"-vxf", "out.tar", "src",
		)
		require.NoError(t, err)
		assert.Equal(t, lines(
			"v=true",
			"x=true",
			"file=out.tar",
			"set -- src",
		), stdout)
	})
	t.Run("list", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runArgs(t,
			"-list=-I,--include",
			"--",
			"-I", "a,b", "--include=c",
		)
		require.NoError(t, err)
		assert.Equal(t, lines(
			"include=a,b,c",
			"set --",
		), stdout)
	})
	t.Run("list default", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runArgs(t, "-list=--tag=x,y", "--")
		require.NoError(t, err)
		assert.Equal(t, lines("tag=x,y", "set --"), stdout)
	})
	t.Run("defaults use command line rules", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runArgs(t,
			"-bool=-q=0",
			"-int=-m='7'",
			`-string=-o="a b"`,
			"--",
		)
		require.NoError(t, err)
		assert.Equal(t, lines(
			"q=false",
			"m=7",
			"o='a b'",
			"set --",
		), stdout)
	})
	t.Run("enum", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runArgs(t,
			"-enum=-f,--format=json|yaml",
			"-enum=--color=auto|always|never",
			"--",
			"--format=YAML",
		)
		require.NoError(t, err)
		assert.Equal(t, lines(
			"format=yaml",
			"color=auto",
			"set --",
		), stdout)
	})
	t.Run("map", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runArgs(t,
			"-map=-l,--label=env=prod",
			"--",
			"-l", "tier=web", "--label=env=dev",
		)
		require.NoError(t, err)
		assert.Equal(t, lines("label=env=dev,tier=web", "set --"), stdout)
	})
	t.Run("terminator and lone dash", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runArgs(t,
			"-bool=-v",
			"--",
			"-", "--", "-v",
		)
		require.NoError(t, err)
		assert.Equal(t, lines("v=false", "set -- - -v"), stdout)
	})
	t.Run("permissive dialect", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runArgs(t,
			"-dialect=permissive",
			"-int=-n,--number",
			"--",
			"-n=5",
		)
		require.NoError(t, err)
		assert.Equal(t, lines("number=5", "set --"), stdout)
	})
	t.Run("skip first", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runArgs(t,
			"-skip-first",
			"-bool=-v",
			"--",
			"prog", "-v", "x",
		)
		require.NoError(t, err)
		assert.Equal(t, lines("v=true", "set -- x"), stdout)
	})
	t.Run("delimiter", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runArgs(t,
			"-delimiter=/",
			"-bool=/v,//verbose",
			"--",
			"/v", "-file",
		)
		require.NoError(t, err)
		assert.Equal(t, lines("verbose=true", "set -- -file"), stdout)
	})
	t.Run("line", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runArgs(t,
			"-bool=-v",
			`-line=-v 'a b' c`,
		)
		require.NoError(t, err)
		assert.Equal(t, lines("v=true", "set -- 'a b' c"), stdout)
	})
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	t.Run("invalid flag with suggestion", func(t *testing.T) {
		t.Parallel()
		stdout, stderr, err := runArgs(t,
			"-no-color",
			"-bool=-v,--verbose",
			"--",
			"--verbse",
		)
		require.ErrorIs(t, err, errReported)
		assert.Empty(t, stdout)
		assert.Equal(t, `getopt: invalid flag "--verbse", did you mean --verbose?`+"\n", stderr)
	})
	t.Run("missing value", func(t *testing.T) {
		t.Parallel()
		_, stderr, err := runArgs(t,
			"-no-color",
			"-string=-o,--output",
			"--",
			"--output",
		)
		require.ErrorIs(t, err, errReported)
		assert.Equal(t, `getopt: invalid flag "--output", missing or misplaced value`+"\n", stderr)
	})
	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runArgs(t, "-int=-n,--count", "--", "-n", "abc")
		var verr *getopt.ValueError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "-n", verr.Flag)
		assert.ErrorIs(t, err, getopt.ErrInvalidNumeric)
		assert.Empty(t, stdout)
	})
	t.Run("missing arguments", func(t *testing.T) {
		t.Parallel()
		_, _, err := runArgs(t, "-bool=-v")
		require.ErrorIs(t, err, getopt.ErrMissingArguments)
		assert.Contains(t, err.Error(), "pass them after -- or with -line")
	})
	t.Run("line and arguments", func(t *testing.T) {
		t.Parallel()
		_, _, err := runArgs(t, "-line=-v", "--", "-v")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})
	t.Run("unterminated line", func(t *testing.T) {
		t.Parallel()
		_, _, err := runArgs(t, `-line='abc`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "-line:")
	})
	t.Run("bad delimiter", func(t *testing.T) {
		t.Parallel()
		_, _, err := runArgs(t, "-delimiter=ab", "--")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "single character")
	})
	t.Run("bad dialect", func(t *testing.T) {
		t.Parallel()
		_, _, err := runArgs(t, "-dialect=loose", "--")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid dialect "loose"`)
	})
	t.Run("duplicate declaration", func(t *testing.T) {
		t.Parallel()
		_, _, err := runArgs(t, "-bool=-v", "-string=-v,--value", "--")
		require.ErrorIs(t, err, getopt.ErrDuplicateAlias)
		assert.Contains(t, err.Error(), `declaration "-v,--value"`)
	})
	t.Run("bad default", func(t *testing.T) {
		t.Parallel()
		for _, decl := range []string{"-int=-n=ten", "-int=-n=3abc", "-int=-n=0x10", "-float=-n=1.5x"} {
			stdout, _, err := runArgs(t, decl, "--")
			var verr *getopt.ValueError
			require.ErrorAs(t, err, &verr, decl)
			assert.Equal(t, "-n", verr.Flag)
			assert.ErrorIs(t, err, getopt.ErrInvalidNumeric)
			_, value, _ := strings.Cut(decl, "=")
			assert.Contains(t, err.Error(), "declaration "+strconv.Quote(value))
			assert.Empty(t, stdout)
		}
	})
	t.Run("bad enum", func(t *testing.T) {
		t.Parallel()
		_, _, err := runArgs(t, "-enum=-f=json||yaml", "--")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `empty choice in "json||yaml"`)

		_, _, err = runArgs(t, "-enum=-f=json|yaml", "--", "-f", "xml")
		var verr *getopt.ValueError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, getopt.ValueKind, verr.Kind)
		assert.Contains(t, err.Error(), `"xml" is not one of: json, yaml`)
	})
	t.Run("bad map default", func(t *testing.T) {
		t.Parallel()
		_, _, err := runArgs(t, "-map=--label=nope", "--")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `pair "nope" has no '='`)
	})
	t.Run("invalid variable name", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runArgs(t, "-bool=--a+b", "--")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"a+b" is not a valid shell variable name`)
		assert.Empty(t, stdout)
	})
	t.Run("variable declared twice", func(t *testing.T) {
		t.Parallel()
		_, _, err := runArgs(t, "-bool=--dry-run", "-string=--dry_run", "--")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `variable dry_run is already set by "--dry-run"`)
	})
	t.Run("stray argument", func(t *testing.T) {
		t.Parallel()
		_, _, err := runArgs(t, "-bool=-v", "stray", "--", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unexpected argument "stray"`)
	})
}

func TestVarName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "verbose", varName([]string{"-v", "--verbose"}, '-'))
	assert.Equal(t, "dry_run", varName([]string{"--dry-run", "-n"}, '-'))
	assert.Equal(t, "output", varName([]string{"/o", "//output"}, '/'))
	assert.Equal(t, "_", varName([]string{"--"}, '-'))
}
