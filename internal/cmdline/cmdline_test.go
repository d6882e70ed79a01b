package cmdline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianmcjilton/jqnav/internal/jvalue"
	"github.com/brianmcjilton/jqnav/internal/nav"
)

func TestParseSignature_RequiredOptionalAndFlagGroup(t *testing.T) {
	sig, err := ParseSignature(":sort [query] [keys|values] [asc|desc]")
	require.NoError(t, err)
	assert.Equal(t, "sort", sig.Command)
	require.Len(t, sig.Params, 3)
	assert.False(t, sig.Params[0].Required)
	assert.Equal(t, ParamString, sig.Params[0].Kind)
	assert.Equal(t, ParamFlag, sig.Params[1].Kind)
	assert.Equal(t, []string{"keys", "values"}, sig.Params[1].Names)
}

func TestParseSignature_RequiredFilePath(t *testing.T) {
	sig, err := ParseSignature(":open [--braceless] <file>")
	require.NoError(t, err)
	require.Len(t, sig.Params, 2)
	assert.Equal(t, ParamFlag, sig.Params[0].Kind)
	assert.True(t, sig.Params[1].Required)
	assert.Equal(t, ParamPath, sig.Params[1].Kind)
}

// TestSignature_RoundTrip is spec §8's argument-parser round-trip property:
// re-parsing a signature's own String() form yields an equal Signature.
func TestSignature_RoundTrip(t *testing.T) {
	texts := []string{
		":open [--braceless] <file>",
		":sort [query] [keys|values] [asc|desc]",
		":filter <expression>",
		":quit",
	}
	for _, text := range texts {
		sig, err := ParseSignature(text)
		require.NoError(t, err)
		again, err := ParseSignature(sig.String())
		require.NoError(t, err)
		assert.Equal(t, sig, again, "round trip of %q", text)
	}
}

func TestParseSignature_RejectsMissingColon(t *testing.T) {
	_, err := ParseSignature("open <file>")
	assert.Error(t, err)
}

func TestTokenize_QuotesAndBrackets(t *testing.T) {
	toks, err := Tokenize(`--braceless "a b" {foo: 1}`)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, "--braceless", toks[0].Text)
	assert.Equal(t, "a b", toks[1].Text)
	assert.Equal(t, "{foo: 1}", toks[2].Text)
}

func TestTokenize_BackslashEscapeInsideQuotes(t *testing.T) {
	toks, err := Tokenize(`"a\"b"`)
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, `a"b`, toks[0].Text)
}

func TestTokenize_UnterminatedQuoteErrors(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	assert.Error(t, err)
}

func TestParseArgs_FlagsAndTrailingString(t *testing.T) {
	sig, err := ParseSignature(":open [--braceless] <file>")
	require.NoError(t, err)
	args, err := ParseArgs(sig, "--braceless data.txt")
	require.NoError(t, err)
	assert.True(t, args.GetBool("braceless"))
	assert.Equal(t, "data.txt", args.GetString("file"))
}

func TestParseArgs_MissingRequiredErrors(t *testing.T) {
	sig, err := ParseSignature(":filter <expression>")
	require.NoError(t, err)
	_, err = ParseArgs(sig, "")
	assert.Error(t, err)
}

func TestParseArgs_FlagGroupTracksEachAlternativeIndependently(t *testing.T) {
	sig, err := ParseSignature(":sort [query] [keys|values] [asc|desc]")
	require.NoError(t, err)
	args, err := ParseArgs(sig, "values desc")
	require.NoError(t, err)
	assert.True(t, args.GetBool("values"))
	assert.False(t, args.GetBool("keys"))
	assert.True(t, args.GetBool("desc"))
	assert.False(t, args.GetBool("asc"))
}

func TestParseArgs_ExtraTokenErrors(t *testing.T) {
	sig, err := ParseSignature(":quit")
	require.NoError(t, err)
	_, err = ParseArgs(sig, "bogus")
	assert.Error(t, err)
}

func TestDispatch_UnknownCommandErrors(t *testing.T) {
	d := NewDispatcher()
	ctx := jvalue.NewContext()
	s := nav.NewState(ctx, ctx.NewObject(nil))
	_, err := d.Dispatch(s, ":bogus")
	assert.Error(t, err)
}

func TestDispatch_AliasResolvesToCanonicalCommand(t *testing.T) {
	d := NewDispatcher()
	ctx := jvalue.NewContext()
	s := nav.NewState(ctx, ctx.NewObject(nil))
	_, err := d.Dispatch(s, "q")
	require.NoError(t, err)
	assert.True(t, d.QuitAsked)
}

func TestDispatch_HelpListsCommands(t *testing.T) {
	d := NewDispatcher()
	ctx := jvalue.NewContext()
	s := nav.NewState(ctx, ctx.NewObject(nil))
	msg, err := d.Dispatch(s, ":help")
	require.NoError(t, err)
	assert.Contains(t, msg, "quit")
}
