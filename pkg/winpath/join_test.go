package winpath_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/winpath/pkg/winpath"
)

func TestJoin(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		lhs  string
		rhs  string
		want string
	}{
		"inserts separator":    {lhs: `C:\foo`, rhs: `bar`, want: `C:\foo\bar`},
		"lhs trailing":         {lhs: `C:\foo\`, rhs: `bar`, want: `C:\foo\bar`},
		"rhs leading":          {lhs: `C:\foo`, rhs: `\bar`, want: `C:\foo\bar`},
		"both":                 {lhs: `C:\foo\`, rhs: `\bar`, want: `C:\foo\bar`},
		"junction runs":        {lhs: `a\\\`, rhs: `\\b`, want: `a\b`},
		"keeps lhs separator":  {lhs: `C:/foo/`, rhs: `bar`, want: `C:/foo/bar`},
		"keeps rhs separator":  {lhs: `a`, rhs: `/b`, want: `a/b`},
		"default separator":    {lhs: `C:/foo`, rhs: `bar`, want: `C:/foo\bar`},
		"empty lhs":            {lhs: ``, rhs: `bar`, want: `bar`},
		"empty rhs":            {lhs: `foo`, rhs: ``, want: `foo`},
		"empty rhs trailing":   {lhs: `foo\`, rhs: ``, want: `foo\`},
		"both empty":           {lhs: ``, rhs: ``, want: ``},
		"root lhs":             {lhs: `\`, rhs: `foo`, want: `\foo`},
		"drive root lhs":       {lhs: `C:\`, rhs: `foo`, want: `C:\foo`},
		"drive lhs":            {lhs: `C:`, rhs: `foo`, want: `C:\foo`},
		"absolute rhs appends": {lhs: `C:\a`, rhs: `D:\b`, want: `C:\a\D:\b`},
		"separator rhs":        {lhs: `a`, rhs: `\`, want: `a\`},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, winpath.Join(tc.lhs, tc.rhs))
		})
	}
}

func TestJoinConfiguredSeparator(t *testing.T) {
	t.Parallel()

	p := winpath.New(winpath.WithSeparator('/'))
	assert.Equal(t, "a/b", p.Join("a", "b"))
	assert.Equal(t, `a\b`, p.Join(`a\`, "b"))
}

func TestJoinOverCapacity(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 2*winpath.DefaultPathLimit)
	short := strings.Repeat("b", winpath.DefaultPathLimit-10)

	tcs := map[string]struct {
		lhs string
		rhs string
	}{
		"long lhs":              {lhs: long, rhs: "tail"},
		"long lhs trailing run": {lhs: "x" + strings.Repeat(`\`, 2*winpath.DefaultPathLimit), rhs: "tail"},
		"long rhs":              {lhs: short, rhs: long},
		"long rhs leading run":  {lhs: short, rhs: strings.Repeat(`\`, 2*winpath.DefaultPathLimit) + long},
		"lhs one short":         {lhs: long[:winpath.DefaultPathLimit-1], rhs: long},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			head := strings.TrimRight(tc.lhs, `\/`)
			tail := strings.TrimLeft(tc.rhs, `\/`)

			want := head + `\` + tail
			want = want[:min(len(want), winpath.DefaultPathLimit)]

			got := winpath.Join(tc.lhs, tc.rhs)
			assert.Equal(t, want, got)
			assert.LessOrEqual(t, len(got), winpath.DefaultPathLimit)
		})
	}
}

//nolint:paralleltest // Measures allocations.
func TestJoinAllocationIsBounded(t *testing.T) {
	lhs := strings.Repeat("a", 1<<20)
	rhs := strings.Repeat("b", 1<<20)

	res := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()

		for b.Loop() {
			winpath.Join(lhs, rhs)
		}
	})

	require.Positive(t, res.N)
	assert.LessOrEqual(t, res.AllocedBytesPerOp(), int64(2*winpath.DefaultPathLimit))
}

func TestJoinRoundTrip(t *testing.T) {
	t.Parallel()

	for _, path := range []string{
		`C:\foo\bar.txt`,
		`C:/a/b/c`,
		`\\srv\share\x`,
		`C:\foo`,
		`\foo`,
		`rel\name`,
		`name`,
	} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			dir, _ := winpath.GetDirectory(path)
			got := winpath.Join(dir, winpath.GetBaseName(path))
			assert.Equal(t, winpath.Clean(path), winpath.Clean(got))
		})
	}
}

func FuzzJoin(f *testing.F) {
	f.Add(`C:\foo`, `bar`)
	f.Add(`a\\`, `//b`)
	f.Add(``, `x`)

	f.Fuzz(func(t *testing.T, lhs, rhs string) {
		if lhs == "" || rhs == "" || len(lhs)+len(rhs)+1 > winpath.DefaultPathLimit {
			t.Skip()
		}

		for _, s := range []string{lhs, rhs} {
			for i := range len(s) {
				if s[i] == 0 {
					t.Skip()
				}
			}
		}

		got := winpath.Clean(winpath.Join(lhs, rhs))
		want := winpath.Clean(lhs + `\` + rhs)
		if got != want {
			t.Fatalf("Join(%q, %q) cleans to %q, want %q", lhs, rhs, got, want)
		}
	})
}

func BenchmarkJoin(b *testing.B) {
	for b.Loop() {
		winpath.Join(`C:\Program Files\`, `\Common Files`)
	}
}
