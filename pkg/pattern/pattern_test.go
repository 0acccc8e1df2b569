package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteral(t *testing.T) {
	m := Literal("plugins {")

	end, ok := m.Match("plugins {\n}", 0)
	require.True(t, ok)
	assert.Equal(t, 9, end)

	_, ok = m.Match("plugin {", 0)
	assert.False(t, ok)

	// Not enough input left.
	_, ok = m.Match("plugins", 0)
	assert.False(t, ok)
}

func TestLiteral_AtOffset(t *testing.T) {
	m := Literal("id ")

	end, ok := m.Match("  id 'x'", 2)
	require.True(t, ok)
	assert.Equal(t, 5, end)
}

func TestRune(t *testing.T) {
	m := Rune('\n')

	end, ok := m.Match("\nabc", 0)
	require.True(t, ok)
	assert.Equal(t, 1, end)

	_, ok = m.Match("abc", 0)
	assert.False(t, ok)

	_, ok = m.Match("", 0)
	assert.False(t, ok)
}

func TestAnyOf(t *testing.T) {
	m := AnyOf(`'"`)

	tests := []struct {
		input string
		want  bool
	}{
		{`'x`, true},
		{`"x`, true},
		{`x`, false},
		{``, false},
	}
	for _, tt := range tests {
		_, ok := m.Match(tt.input, 0)
		assert.Equal(t, tt.want, ok, "input %q", tt.input)
	}
}

func TestNoneOf(t *testing.T) {
	m := NoneOf("\n")

	end, ok := m.Match("a\n", 0)
	require.True(t, ok)
	assert.Equal(t, 1, end)

	_, ok = m.Match("\n", 0)
	assert.False(t, ok)

	// Multi-byte runes are consumed whole.
	end, ok = m.Match("über", 0)
	require.True(t, ok)
	assert.Equal(t, 2, end)
}

func TestSeq(t *testing.T) {
	m := Seq(Literal("id "), AnyOf(`'"`), Plus(NoneOf(`'"`)), AnyOf(`'"`))

	end, ok := m.Match(`id 'com.android.application'`, 0)
	require.True(t, ok)
	assert.Equal(t, 28, end)

	// A failing element fails the whole sequence.
	_, ok = m.Match(`id ''`, 0)
	assert.False(t, ok)
}

func TestAlt_FirstSuccessWins(t *testing.T) {
	m := Alt(Literal("ab"), Literal("abc"))

	end, ok := m.Match("abcdef", 0)
	require.True(t, ok)
	assert.Equal(t, 2, end, "earlier alternative wins even when a later one matches more")

	_, ok = m.Match("xyz", 0)
	assert.False(t, ok)
}

func TestStar(t *testing.T) {
	m := Star(Rune(' '))

	end, ok := m.Match("   //", 0)
	require.True(t, ok)
	assert.Equal(t, 3, end)

	// Zero repetitions still succeed.
	end, ok = m.Match("//", 0)
	require.True(t, ok)
	assert.Equal(t, 0, end)
}

func TestStar_ZeroWidthInnerTerminates(t *testing.T) {
	m := Star(Optional(Rune('x')))

	end, ok := m.Match("yyy", 0)
	require.True(t, ok)
	assert.Equal(t, 0, end)
}

func TestPlus(t *testing.T) {
	m := Plus(Rune('\n'))

	end, ok := m.Match("\n\n\nabc", 0)
	require.True(t, ok)
	assert.Equal(t, 3, end)

	_, ok = m.Match("abc", 0)
	assert.False(t, ok)
}

func TestOptional(t *testing.T) {
	m := Seq(Literal("throw"), Optional(Literal(" new")), Literal(" "))

	end, ok := m.Match("throw new GradleException", 0)
	require.True(t, ok)
	assert.Equal(t, 10, end)

	end, ok = m.Match("throw GradleException", 0)
	require.True(t, ok)
	assert.Equal(t, 6, end)
}

func TestMatchers_NoConsumptionBeyondPattern(t *testing.T) {
	// A matcher reports exactly the span its grammar describes; trailing
	// input is untouched.
	m := Seq(Literal("}"), Rune('\n'))

	end, ok := m.Match("}\nandroid {", 0)
	require.True(t, ok)
	assert.Equal(t, 2, end)
}
