package declarations_test

import (
	"sync"
	"testing"

	"github.com/arthur-debert/consolecss/pkg/declarations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		css  string
		want []declarations.Declaration
	}{
		{
			name: "tag selector is lowercased",
			css:  "B { color: red; }",
			want: []declarations.Declaration{
				{Type: declarations.TypeTag, Entity: "b", Rules: []string{"color: red"}},
			},
		},
		{
			name: "class selector keeps case and drops the dot",
			css:  ".Block { padding: 2px 4px }",
			want: []declarations.Declaration{
				{Type: declarations.TypeClass, Entity: "Block", Rules: []string{"padding: 2px 4px"}},
			},
		},
		{
			name: "multiple blocks across lines",
			css: `
				b { color: red; }
				.block {
					color: blue;
					padding:   2px 4px;
					font-size: 12px;
				}
			`,
			want: []declarations.Declaration{
				{Type: declarations.TypeTag, Entity: "b", Rules: []string{"color: red"}},
				{Type: declarations.TypeClass, Entity: "block", Rules: []string{"color: blue", "padding: 2px 4px", "font-size: 12px"}},
			},
		},
		{
			name: "rules deduplicated within a block",
			css:  ".x { color: red; color: red; ; font-weight: bold; color: red }",
			want: []declarations.Declaration{
				{Type: declarations.TypeClass, Entity: "x", Rules: []string{"color: red", "font-weight: bold"}},
			},
		},
		{
			name: "empty body skipped",
			css:  ".x {   } b { color: red; }",
			want: []declarations.Declaration{
				{Type: declarations.TypeTag, Entity: "b", Rules: []string{"color: red"}},
			},
		},
		{
			name: "whitespace before the brace is required",
			css:  "b{color: red}",
			want: []declarations.Declaration{},
		},
		{
			name: "no blocks at all",
			css:  "just text",
			want: []declarations.Declaration{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := declarations.NewStore()
			s.Add(tt.css)
			assert.Equal(t, tt.want, s.All())
		})
	}
}

func TestAddMergesAcrossCalls(t *testing.T) {
	s := declarations.NewStore()
	s.Add(".x { color: red; }")
	s.Add(".x { color: blue; }")

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, "x", all[0].Entity)
	assert.Equal(t, []string{"color: red", "color: blue"}, all[0].Rules)

	// a rule repeated in a later call is appended again
	s.Add(".x { color: red; }")
	assert.Equal(t, []string{"color: red", "color: blue", "color: red"}, s.All()[0].Rules)
}

func TestAddKeepsTagAndClassApart(t *testing.T) {
	s := declarations.NewStore()
	s.Add("x { color: red; } .x { color: blue; }")
	assert.Equal(t, 2, s.Len())
}

func TestReset(t *testing.T) {
	for _, css := range []string{"", "b { color: red; }", ".a { x: 1 } .b { y: 2 } i { z: 3 }"} {
		s := declarations.NewStore()
		s.Add(css)
		s.Reset()
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.All())
		assert.Nil(t, s.Resolve("b", []string{"a", "b"}))
	}
}

func TestAllReturnsCopies(t *testing.T) {
	s := declarations.NewStore()
	s.Add("b { color: red; }")

	all := s.All()
	all[0].Rules[0] = "mutated"

	assert.Equal(t, []string{"color: red"}, s.All()[0].Rules)
}

func TestResolve(t *testing.T) {
	s := declarations.NewStore()
	s.Add(`
		.warn { color: orange; }
		span { padding: 0 2px; }
		.big { font-size: 20px; }
		SPAN { font-weight: bold; }
	`)

	tests := []struct {
		name    string
		tag     string
		classes []string
		want    []string
	}{
		{"tag only", "span", nil, []string{"padding: 0 2px", "font-weight: bold"}},
		{"tag compare ignores case", "SPAN", nil, []string{"padding: 0 2px", "font-weight: bold"}},
		{"tag rules before class rules", "span", []string{"big", "warn"}, []string{"padding: 0 2px", "font-weight: bold", "color: orange", "font-size: 20px"}},
		{"class only", "div", []string{"big"}, []string{"font-size: 20px"}},
		{"class compare is case sensitive", "div", []string{"Big"}, nil},
		{"nothing matches", "b", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Resolve(tt.tag, tt.classes))
		})
	}
}

func TestConcurrentUse(t *testing.T) {
	s := declarations.NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Add(".x { color: red; }")
		}()
		go func() {
			defer wg.Done()
			_ = s.Resolve("span", []string{"x"})
		}()
	}
	wg.Wait()

	require.Equal(t, 1, s.Len())
	assert.Len(t, s.All()[0].Rules, 8)
}
