package chatopt

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/napalu/chatopt/errs"
	"github.com/napalu/chatopt/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type actionRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *actionRecorder) action(name string) ActionFunc {
	return func(values ...string) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, fmt.Sprintf("%s%v", name, values))
		return nil
	}
}

func (r *actionRecorder) terminal() TerminalFunc {
	return func(positional ...string) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, fmt.Sprintf("terminal%v", positional))
		return nil
	}
}

func newTestParser(t *testing.T, configs ...ConfigureParserFunc) *Parser {
	t.Helper()
	p, err := NewParserWith(configs...)
	require.NoError(t, err)

	return p
}

func TestParser_CommandNameOnly(t *testing.T) {
	rec := &actionRecorder{}
	p := newTestParser(t,
		WithValued("f", "file", types.ArityOne, rec.action("f")),
		WithFlag("a", ""),
		WithTerminalAction(rec.terminal()))

	res, err := p.Parse([]string{"cmd"})
	require.NoError(t, err)
	assert.Empty(t, res.Positional())
	assert.Empty(t, res.Matched())
	assert.Equal(t, []string{"terminal[]"}, rec.calls)
}

func TestParser_EmptyTokens(t *testing.T) {
	rec := &actionRecorder{}
	p := newTestParser(t, WithTerminalAction(rec.terminal()))

	res, err := p.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Positional())
	assert.Equal(t, []string{"terminal[]"}, rec.calls)
}

func TestParser_GroupedFlags(t *testing.T) {
	p := newTestParser(t, WithFlag("a", ""), WithFlag("b", ""))

	res, err := p.Parse([]string{"cmd", "-ab"})
	require.NoError(t, err)

	set, found := res.Flag("a")
	assert.True(t, found)
	assert.True(t, set)
	set, found = res.Flag("b")
	assert.True(t, found)
	assert.True(t, set)
	assert.Empty(t, res.Positional())
	assert.Equal(t, []string{"a", "b"}, res.Matched())
}

func TestParser_OptionArgInMiddle(t *testing.T) {
	rec := &actionRecorder{}
	p := newTestParser(t,
		WithValued("f", "", types.ArityOne, rec.action("f")),
		WithFlag("b", ""),
		WithTerminalAction(rec.terminal()))

	res, err := p.Parse([]string{"cmd", "-fb"})
	assert.Nil(t, res)
	require.True(t, errors.Is(err, errs.ErrOptionArgInMiddle))

	var e *errs.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, []interface{}{"f", "-fb"}, e.Args())
	assert.Equal(t, "Option `-f` requires arguments, but is in the middle of the options: `-fb`.", err.Error())
	assert.Empty(t, rec.calls, "neither the option nor the terminal action should run")
}

func TestParser_OptionArgLastInGroup(t *testing.T) {
	rec := &actionRecorder{}
	p := newTestParser(t,
		WithValued("f", "", types.ArityOne, rec.action("f")),
		WithFlag("b", ""),
		WithTerminalAction(rec.terminal()))

	res, err := p.Parse([]string{"cmd", "-bf", "val", "rest"})
	require.NoError(t, err)
	assert.Equal(t, []string{"val"}, res.Values("f"))
	assert.Equal(t, []string{"rest"}, res.Positional())
	assert.Equal(t, []string{"f[val]", "terminal[rest]"}, rec.calls)
}

func TestParser_ArityOne(t *testing.T) {
	rec := &actionRecorder{}
	p := newTestParser(t,
		WithValued("f", "file", types.ArityOne, rec.action("f")),
		WithTerminalAction(rec.terminal()))

	res, err := p.Parse([]string{"cmd", "-f", "val"})
	require.NoError(t, err)
	assert.Equal(t, []string{"val"}, res.Values("f"))
	assert.Equal(t, "val", res.Value("file"))
	assert.Empty(t, res.Positional())
	assert.Equal(t, []string{"f[val]", "terminal[]"}, rec.calls)
}

func TestParser_ArityOneConsumesDashToken(t *testing.T) {
	p := newTestParser(t, WithValued("f", "", types.ArityOne, nil), WithFlag("x", ""))

	res, err := p.Parse([]string{"cmd", "-f", "-x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-x"}, res.Values("f"))
	set, _ := res.Flag("x")
	assert.False(t, set)
}

func TestParser_ArityOneMissingValue(t *testing.T) {
	rec := &actionRecorder{}
	p := newTestParser(t,
		WithValued("f", "file", types.ArityOne, rec.action("f")),
		WithTerminalAction(rec.terminal()))

	for _, tokens := range [][]string{{"cmd", "-f"}, {"cmd", "--file"}} {
		res, err := p.Parse(tokens)
		assert.Nil(t, res)
		assert.True(t, errors.Is(err, errs.ErrWrongArgNumber), "tokens %v", tokens)
	}
	assert.Empty(t, rec.calls)
}

func TestParser_ArityMany(t *testing.T) {
	rec := &actionRecorder{}
	p := newTestParser(t,
		WithValued("m", "", types.ArityMany, rec.action("m")),
		WithFlag("f", ""),
		WithTerminalAction(rec.terminal()))

	res, err := p.Parse([]string{"cmd", "-m", "x", "y", "-f"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, res.Values("m"))
	set, found := res.Flag("f")
	assert.True(t, found)
	assert.True(t, set)
	assert.Equal(t, []string{"m[x y]", "terminal[]"}, rec.calls)
}

func TestParser_ArityManyZeroValues(t *testing.T) {
	p := newTestParser(t, WithValued("m", "many", types.ArityMany, nil), WithFlag("f", ""))

	res, err := p.Parse([]string{"cmd", "--many", "-f"})
	require.NoError(t, err)
	assert.True(t, res.Has("m"))
	assert.Equal(t, []string{}, res.Values("m"))

	res, err = p.Parse([]string{"cmd", "-m"})
	require.NoError(t, err)
	assert.True(t, res.Has("many"))
	assert.Equal(t, []string{}, res.Values("many"))
}

func TestParser_ArityManyStopsAtLoneDash(t *testing.T) {
	p := newTestParser(t, WithValued("m", "", types.ArityMany, nil))

	res, err := p.Parse([]string{"cmd", "-m", "a", "-", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, res.Values("m"))
	assert.Equal(t, []string{"b"}, res.Positional(), "a lone '-' is an empty option group")
}

func TestParser_UnknownOptions(t *testing.T) {
	p := newTestParser(t, WithFlag("a", "all"))

	_, err := p.Parse([]string{"cmd", "-z"})
	require.True(t, errors.Is(err, errs.ErrUnknownShortOption))
	assert.Equal(t, "Unknown option `-z`.", err.Error())

	_, err = p.Parse([]string{"cmd", "-az"})
	require.True(t, errors.Is(err, errs.ErrUnknownShortOption))

	_, err = p.Parse([]string{"cmd", "--bogus"})
	require.True(t, errors.Is(err, errs.ErrUnknownLongOption))
	var e *errs.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, []interface{}{"bogus"}, e.Args())

	_, err = p.Parse([]string{"cmd", "--"})
	assert.True(t, errors.Is(err, errs.ErrUnknownLongOption))
}

func TestParser_ShortOnlyOptionIsNotMatchedByEmptyLong(t *testing.T) {
	p := newTestParser(t, WithFlag("a", ""))

	_, err := p.Parse([]string{"cmd", "--"})
	assert.True(t, errors.Is(err, errs.ErrUnknownLongOption))
}

func TestParser_FirstRegistrationWins(t *testing.T) {
	rec := &actionRecorder{}
	p := newTestParser(t,
		WithValued("x", "ex", types.ArityNone, rec.action("first")),
		WithValued("x", "ex", types.ArityNone, rec.action("second")))

	_, err := p.Parse([]string{"cmd", "-x", "--ex"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first[]", "first[]"}, rec.calls)
}

func TestParser_RepeatedOption(t *testing.T) {
	rec := &actionRecorder{}
	p := newTestParser(t,
		WithValued("f", "", types.ArityOne, rec.action("f")),
		WithFlag("v", ""))

	res, err := p.Parse([]string{"cmd", "-f", "one", "-v", "-f", "two", "-vv"})
	require.NoError(t, err)
	assert.Equal(t, []string{"f[one]", "f[two]"}, rec.calls)
	assert.Equal(t, [][]string{{"one"}, {"two"}}, res.Occurrences("f"))
	assert.Equal(t, []string{"two"}, res.Values("f"))
	assert.Len(t, res.Occurrences("v"), 3)
	set, _ := res.Flag("v")
	assert.True(t, set)
}

func TestParser_PositionalOrder(t *testing.T) {
	p := newTestParser(t,
		WithValued("f", "", types.ArityOne, nil),
		WithValued("m", "", types.ArityMany, nil),
		WithFlag("q", ""))

	res, err := p.Parse([]string{"cmd", "a", "-f", "x", "b", "-q", "c", "-m", "y", "z", "-q", "d"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, res.Positional())
}

func TestParser_EncounterOrder(t *testing.T) {
	rec := &actionRecorder{}
	p := newTestParser(t,
		WithValued("a", "", types.ArityNone, rec.action("a")),
		WithValued("b", "", types.ArityNone, rec.action("b")),
		WithValued("c", "cee", types.ArityMany, rec.action("c")),
		WithTerminalAction(rec.terminal()))

	_, err := p.Parse([]string{"cmd", "-ba", "p", "--cee", "1", "2", "-a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b[]", "a[]", "c[1 2]", "a[]", "terminal[p]"}, rec.calls)
}

func TestParser_TerminalActionError(t *testing.T) {
	p := newTestParser(t, WithTerminalAction(func(positional ...string) error {
		if len(positional) > 1 {
			return errs.WrongArgNumber()
		}
		return nil
	}))

	_, err := p.Parse([]string{"help", "a"})
	assert.NoError(t, err)

	res, err := p.Parse([]string{"help", "a", "b"})
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, errs.ErrWrongArgNumber))
}

func TestParser_ActionErrorPropagatesUnchanged(t *testing.T) {
	boom := errors.New("database unavailable")
	terminalCalled := false
	p := newTestParser(t,
		WithValued("x", "", types.ArityNone, func(values ...string) error { return boom }),
		WithTerminalAction(func(positional ...string) error {
			terminalCalled = true
			return nil
		}))

	_, err := p.Parse([]string{"cmd", "-x"})
	assert.Same(t, boom, err)
	assert.False(t, errs.IsUserError(err))
	assert.False(t, terminalCalled)
}

func TestParser_ErrorAbortsScan(t *testing.T) {
	rec := &actionRecorder{}
	p := newTestParser(t,
		WithValued("a", "", types.ArityNone, rec.action("a")),
		WithValued("b", "", types.ArityNone, rec.action("b")),
		WithTerminalAction(rec.terminal()))

	_, err := p.Parse([]string{"cmd", "-a", "--nope", "-b"})
	assert.True(t, errors.Is(err, errs.ErrUnknownLongOption))
	assert.Equal(t, []string{"a[]"}, rec.calls, "options before the error have already run, later ones never do")
}

func TestParser_Registration(t *testing.T) {
	p := NewParser()
	assert.True(t, errors.Is(p.AddOption(nil), errs.ErrInvalidOption))
	assert.True(t, errors.Is(p.AddOption(&Option{}), errs.ErrInvalidOption))
	assert.True(t, errors.Is(p.SetTerminalAction(nil), errs.ErrNilAction))

	_, err := p.CreateFlag("", "")
	assert.True(t, errors.Is(err, errs.ErrInvalidOption))
	_, err = p.CreateOption("", "", types.ArityOne, nil)
	assert.True(t, errors.Is(err, errs.ErrInvalidOption))
	assert.Empty(t, p.Options())

	f, err := p.CreateFlag("a", "")
	require.NoError(t, err)
	o, err := p.CreateOption("", "out", types.ArityOne, nil)
	require.NoError(t, err)
	assert.Equal(t, []*Option{f, o}, p.Options())

	_, err = NewParserWith(WithFlag("", ""))
	assert.True(t, errors.Is(err, errs.ErrInvalidOption))
	_, err = NewParserWith(WithTerminalAction(nil))
	assert.True(t, errors.Is(err, errs.ErrNilAction))
}

func TestParser_ResetFlags(t *testing.T) {
	var all, verbose bool
	p := newTestParser(t,
		WithBoundFlag(&all, "a", "all"),
		WithBoundFlag(&verbose, "v", ""),
		WithFlag("q", ""),
		WithValued("f", "", types.ArityOne, nil))

	_, err := p.Parse([]string{"cmd", "-av", "--all"})
	require.NoError(t, err)
	assert.True(t, all)
	assert.True(t, verbose)

	p.ResetFlags()
	assert.False(t, all)
	assert.False(t, verbose)
	p.ResetFlags()
	assert.False(t, all)
	assert.False(t, verbose)

	_, err = p.Parse([]string{"cmd", "-v", "-z"})
	require.Error(t, err)
	assert.True(t, verbose, "flags matched before a failure stay set until reset")
	p.ResetFlags()
	assert.False(t, verbose)

	_, err = NewParserWith(WithBoundFlag(nil, "x", ""))
	assert.True(t, errors.Is(err, errs.ErrNilAction))
}

func TestParser_ParseString(t *testing.T) {
	p := newTestParser(t, WithValued("m", "message", types.ArityOne, nil), WithFlag("l", ""))

	res, err := p.ParseString(`!say --message "hello world" -l`)
	require.NoError(t, err)
	assert.Equal(t, []string{`"hello`}, res.Values("m"))
	assert.Equal(t, []string{`world"`}, res.Positional())

	p.SetQuoting(true)
	res, err = p.ParseString(`!say --message "hello world" -l`)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello world"}, res.Values("m"))
	assert.Empty(t, res.Positional())

	_, err = p.ParseString(`!say "unterminated`)
	assert.True(t, errors.Is(err, errs.ErrIllegalArgument))

	q := newTestParser(t, WithQuoting(true))
	res, err = q.ParseString(`cmd 'a b' c`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a b", "c"}, res.Positional())
}

func TestParser_ResultsAreIndependent(t *testing.T) {
	p := newTestParser(t, WithFlag("a", ""), WithValued("f", "", types.ArityOne, nil))

	first, err := p.Parse([]string{"cmd", "-a", "-f", "1", "x"})
	require.NoError(t, err)
	second, err := p.Parse([]string{"cmd", "-f", "2"})
	require.NoError(t, err)

	type snapshot struct {
		A          bool
		F          []string
		Positional []string
	}
	take := func(r *Result) snapshot {
		a, _ := r.Flag("a")
		return snapshot{A: a, F: r.Values("f"), Positional: r.Positional()}
	}

	if diff := cmp.Diff(snapshot{A: true, F: []string{"1"}, Positional: []string{"x"}}, take(first)); diff != "" {
		t.Errorf("first result changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(snapshot{A: false, F: []string{"2"}, Positional: []string{}}, take(second)); diff != "" {
		t.Errorf("second result mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_ConcurrentParse(t *testing.T) {
	p := newTestParser(t,
		WithFlag("a", ""),
		WithFlag("b", ""),
		WithValued("m", "", types.ArityMany, nil))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens := []string{"cmd", "-m", fmt.Sprint(i), "pos"}
			if i%2 == 0 {
				tokens = []string{"cmd", "-a", "-m", fmt.Sprint(i)}
			}
			res, err := p.Parse(tokens)
			if !assert.NoError(t, err) {
				return
			}
			a, _ := res.Flag("a")
			assert.Equal(t, i%2 == 0, a)
			assert.Equal(t, []string{fmt.Sprint(i)}, res.Values("m"))
		}(i)
	}
	wg.Wait()
}
