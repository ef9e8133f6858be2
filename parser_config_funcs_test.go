package chatopt

import (
	"errors"
	"testing"

	"github.com/napalu/chatopt/errs"
	"github.com/napalu/chatopt/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParserWith(t *testing.T) {
	var dm bool
	mention, err := NewOpt(WithShort("m"), WithLong("mention"), WithArity(types.ArityMany))
	require.NoError(t, err)

	tests := []struct {
		name    string
		configs []ConfigureParserFunc
		wantErr error
		wantLen int
	}{
		{
			name:    "no configuration",
			wantLen: 0,
		},
		{
			name: "every option kind",
			configs: []ConfigureParserFunc{
				WithFlag("l", "long"),
				WithBoundFlag(&dm, "d", "dm"),
				WithOption(mention),
				WithValued("", "topic", types.ArityOne, nil),
				WithTerminalAction(func(positional ...string) error { return nil }),
				WithQuoting(true),
			},
			wantLen: 4,
		},
		{
			name:    "invalid short identity",
			configs: []ConfigureParserFunc{WithFlag("lo", "")},
			wantErr: errs.ErrInvalidShortOption,
		},
		{
			name:    "invalid long identity",
			configs: []ConfigureParserFunc{WithValued("", "--long", types.ArityOne, nil)},
			wantErr: errs.ErrInvalidLongOption,
		},
		{
			name:    "single character long identity",
			configs: []ConfigureParserFunc{WithFlag("", "x"), WithValued("v", "val", types.ArityOne, nil)},
			wantErr: errs.ErrInvalidLongOption,
		},
		{
			name:    "invalid arity",
			configs: []ConfigureParserFunc{WithValued("x", "", types.Arity(7), nil)},
			wantErr: errs.ErrInvalidArity,
		},
		{
			name:    "nil option",
			configs: []ConfigureParserFunc{WithOption(nil)},
			wantErr: errs.ErrInvalidOption,
		},
		{
			name: "stops at first error",
			configs: []ConfigureParserFunc{
				WithFlag("", ""),
				WithTerminalAction(nil),
			},
			wantErr: errs.ErrInvalidOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParserWith(tt.configs...)
			if tt.wantErr != nil {
				assert.Nil(t, p)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, p.Options(), tt.wantLen)
		})
	}
}
